// Package fu540 wires the SiFive Freedom U540-C000 register packages into the
// firmware drivers of a board.
package fu540

// HFCLK is the rate, in Hz, of the crystal reference the PLLs multiply.
const HFCLK = 33_330_000

// Board answers environment queries for the firmware build it is compiled
// into.
type Board struct{}

// Emulated reports whether the firmware was built for an emulator that does
// not model the PRCI.
func (Board) Emulated() bool {
	return emulated
}
