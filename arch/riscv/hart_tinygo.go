//go:build tinygo && riscv

package riscv

import "device/riscv"

// Hart is the executing RISC-V hart.
type Hart struct{}

// Fence orders all prior memory and I/O accesses before any later ones.
func (Hart) Fence() {
	riscv.Asm("fence")
}

// Nop burns one instruction slot.
func (Hart) Nop() {
	riscv.Asm("nop")
}
