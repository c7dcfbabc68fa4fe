// Package mmio provides 32-bit memory-mapped register access over a
// replaceable bus, so register models can run against real hardware, a
// /dev/mem window or a simulator.
package mmio

// Bus performs whole-word accesses at physical addresses. Implementations must
// not cache: every load observes the current device state.
type Bus interface {
	LoadUint32(addr uintptr) uint32
	StoreUint32(addr uintptr, value uint32)
}

// Register32 is a handle to one 32-bit register on a bus.
type Register32 struct {
	Bus  Bus
	Addr uintptr
}

// Get returns the current contents of the register.
func (r Register32) Get() uint32 {
	return r.Bus.LoadUint32(r.Addr)
}

// Set writes the whole register.
func (r Register32) Set(value uint32) {
	r.Bus.StoreUint32(r.Addr, value)
}

// HasBits reports whether any of the bits in value are set.
func (r Register32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// SetBits sets the bits in value with a read-modify-write.
func (r Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits clears the bits in value with a read-modify-write.
func (r Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// ReplaceBits replaces the field described by mask at bit position pos with
// value. Bits of value outside mask are discarded.
func (r Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}
