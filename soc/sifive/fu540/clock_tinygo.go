//go:build tinygo && fu540

package fu540

import (
	"omibyte.io/prci/arch/riscv"
	"omibyte.io/prci/mmio"
	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
	"omibyte.io/prci/soc/sifive/fu540/uart"
)

var (
	PRCI  = prci.New(mmio.Direct, prci.BaseAddress)
	UART0 = uart.NewDevice(uart.New(mmio.Direct, uart.BaseAddressUART0))
	UART1 = uart.NewDevice(uart.New(mmio.Direct, uart.BaseAddressUART1))
)

// NewClock returns the PRCI driver for this board. Both UARTs follow the
// reference rate through the bring-up.
func NewClock() *clock.Clock {
	return clock.New(PRCI, riscv.Hart{}, Board{}, UART0, UART1)
}
