package mmio

// Memory is a Bus backed by ordinary memory. Unwritten words read as zero.
type Memory map[uintptr]uint32

func (m Memory) LoadUint32(addr uintptr) uint32 {
	mustAlign(addr)
	return m[addr]
}

func (m Memory) StoreUint32(addr uintptr, value uint32) {
	mustAlign(addr)
	m[addr] = value
}

func mustAlign(addr uintptr) {
	if addr&3 != 0 {
		panic(ErrUnaligned)
	}
}
