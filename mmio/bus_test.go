package mmio

import (
	"errors"
	"testing"
)

func TestRegister32(t *testing.T) {
	tests := []struct {
		name     string
		initial  uint32
		op       func(r Register32)
		expected uint32
	}{
		{"set", 0xFFFFFFFF, func(r Register32) { r.Set(0x12345678) }, 0x12345678},
		{"setBits", 0x00000F00, func(r Register32) { r.SetBits(0x3) }, 0x00000F03},
		{"clearBits", 0x00000F0F, func(r Register32) { r.ClearBits(0xF) }, 0x00000F00},
		{"replaceBits", 0xFFFFFFFF, func(r Register32) { r.ReplaceBits(0, 0x1FF, 6) }, 0xFFFF803F},
		{"replaceBitsMasksValue", 0, func(r Register32) { r.ReplaceBits(0xFF, 0x7, 15) }, 0x7 << 15},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := Memory{0x1000: test.initial}
			r := Register32{Bus: mem, Addr: 0x1000}
			test.op(r)
			if got := mem[0x1000]; got != test.expected {
				t.Errorf("expected %#08x, got %#08x", test.expected, got)
			}
		})
	}
}

func TestHasBits(t *testing.T) {
	r := Register32{Bus: Memory{0x10: 1 << 31}, Addr: 0x10}
	if !r.HasBits(1 << 31) {
		t.Error("bit 31 should be reported as set")
	}
	if r.HasBits(1 << 24) {
		t.Error("bit 24 should not be reported as set")
	}
}

func TestMemoryUnaligned(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrUnaligned) {
			t.Errorf("expected ErrUnaligned panic, got %v", err)
		}
	}()
	Memory{}.LoadUint32(0x1002)
}
