package uart

import (
	"fmt"

	"omibyte.io/prci/peripheral"
)

const DefaultBaudRate = 115200

type Config struct {
	BaudRate        uint32
	NumStopBits     uint8
	ReceiveEnabled  bool
	TransmitEnabled bool
}

// Device is a polled driver for one UART instance. It follows its input clock:
// every SetClockRate recomputes the baud divisor for the configured rate.
type Device struct {
	Registers *RegisterBlock
	baudRate  uint32
	clockRate uint64
}

func NewDevice(regs *RegisterBlock) *Device {
	return &Device{Registers: regs}
}

func (d *Device) Configure(config Config) error {
	if config.BaudRate == 0 {
		return fmt.Errorf("baud rate must be non-zero: %w", peripheral.ErrInvalidConfig)
	}
	if config.NumStopBits > 2 {
		return fmt.Errorf("%d stop bits: %w", config.NumStopBits, peripheral.ErrInvalidConfig)
	}

	d.baudRate = config.BaudRate
	d.Registers.TXCTRL.Set(TXCTRL(0).
		WithTXEN(config.TransmitEnabled).
		WithNSTOP(config.NumStopBits == 2))
	d.Registers.RXCTRL.Set(RXCTRL(0).WithRXEN(config.ReceiveEnabled))

	if d.clockRate != 0 {
		d.updateDivisor()
	}
	return nil
}

// SetClockRate reprograms the baud divisor for an input clock of hz. A zero
// rate is ignored.
func (d *Device) SetClockRate(hz uint64) {
	if hz == 0 {
		return
	}
	d.clockRate = hz
	if d.baudRate != 0 {
		d.updateDivisor()
	}
}

func (d *Device) updateDivisor() {
	d.Registers.DIV.Set(DIV(0).WithDIV(Divisor(d.clockRate, d.baudRate)))
}

// Divisor returns the DIV value that brings hz closest to baud. The result
// saturates at the width of the field.
func Divisor(hz uint64, baud uint32) uint16 {
	if baud == 0 {
		return 0
	}
	div := (hz + uint64(baud)/2) / uint64(baud)
	if div == 0 {
		return 0
	}
	div--
	if div > DIVDIVMsk {
		return DIVDIVMsk
	}
	return uint16(div)
}

func (d *Device) WriteByte(b byte) error {
	for d.Registers.TXDATA.GetFULL() {
	}
	d.Registers.TXDATA.Set(TXDATA(0).WithDATA(b))
	return nil
}

func (d *Device) Write(p []byte) (n int, err error) {
	for _, b := range p {
		if err = d.WriteByte(b); err != nil {
			return
		}
		n++
	}
	return
}

func (d *Device) WriteString(s string) (n int, err error) {
	return d.Write([]byte(s))
}

// Receive returns the next received byte, or false when the receive FIFO is
// empty.
func (d *Device) Receive() (byte, bool) {
	v := d.Registers.RXDATA.Get()
	if v.GetEMPTY() {
		return 0, false
	}
	return v.GetDATA(), true
}
