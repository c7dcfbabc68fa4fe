// Package riscv exposes the RISC-V hart instructions the bring-up code needs:
// a memory fence and a no-op for counted delays. The implementation requires
// TinyGo; on other toolchains the package is empty.
package riscv
