package peripheral

// Driver is the lifecycle every hardware block is driven through by the
// firmware that owns it. Pread and Pwrite move raw bytes at an offset and
// report how many units were consumed.
type Driver interface {
	Init()
	Pread(data []byte, offset int) (int, error)
	Pwrite(data []byte, offset int) (int, error)
	Shutdown()
}
