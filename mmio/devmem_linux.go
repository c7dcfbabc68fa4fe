//go:build linux && !tinygo

package mmio

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is a Bus over a window of physical memory mapped through /dev/mem.
// Addresses passed to it are physical addresses inside the window.
type DevMem struct {
	base     uintptr
	mem      []byte
	writable bool
}

// OpenDevMem maps size bytes of physical memory starting at base. base must be
// page aligned. The mapping is read-only unless writable is set.
func OpenDevMem(path string, base uintptr, size int, writable bool) (*DevMem, error) {
	flags, prot := os.O_RDONLY, unix.PROT_READ
	if writable {
		flags, prot = os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE
	}

	f, err := os.OpenFile(path, flags|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pageSize := uintptr(os.Getpagesize())
	if base%pageSize != 0 {
		return nil, fmt.Errorf("base %#x is not page aligned: %w", base, ErrUnaligned)
	}

	length := (uintptr(size) + pageSize - 1) &^ (pageSize - 1)
	mem, err := unix.Mmap(int(f.Fd()), int64(base), int(length), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s at %#x: %w", path, base, err)
	}

	return &DevMem{
		base:     base,
		mem:      mem,
		writable: writable,
	}, nil
}

func (d *DevMem) word(addr uintptr) *uint32 {
	mustAlign(addr)
	if addr < d.base || addr+4 > d.base+uintptr(len(d.mem)) {
		panic(fmt.Errorf("%#x: %w", addr, ErrOutOfRange))
	}
	return (*uint32)(unsafe.Pointer(&d.mem[addr-d.base]))
}

func (d *DevMem) LoadUint32(addr uintptr) uint32 {
	return atomic.LoadUint32(d.word(addr))
}

func (d *DevMem) StoreUint32(addr uintptr, value uint32) {
	if !d.writable {
		panic(fmt.Errorf("%#x: %w", addr, ErrReadOnly))
	}
	atomic.StoreUint32(d.word(addr), value)
}

// Close unmaps the window.
func (d *DevMem) Close() error {
	if d.mem == nil {
		return nil
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	return err
}
