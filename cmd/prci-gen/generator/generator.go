package generator

// Generator writes the register packages described by a device into a
// directory tree rooted at out.
type Generator interface {
	Generate(out string) error
}
