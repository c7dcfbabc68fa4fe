package clock

import (
	"bytes"

	"omibyte.io/prci/peripheral"
)

var _ peripheral.Driver = (*Clock)(nil)

// powerOn is the payload that triggers the bring-up sequence.
var powerOn = []byte("on")

func (c *Clock) Init() {}

func (c *Clock) Pread(data []byte, offset int) (int, error) {
	return 0, peripheral.ErrNotImplemented
}

// Pwrite runs Initialize when data is exactly "on" and reports one unit
// written. Any other payload is ignored.
func (c *Clock) Pwrite(data []byte, offset int) (int, error) {
	if !bytes.Equal(data, powerOn) {
		return 0, nil
	}
	c.Initialize()
	return 1, nil
}

func (c *Clock) Shutdown() {}
