//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Direct accesses physical addresses with volatile loads and stores.
var Direct Bus = direct{}

type direct struct{}

func (direct) LoadUint32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (direct) StoreUint32(addr uintptr, value uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), value)
}
