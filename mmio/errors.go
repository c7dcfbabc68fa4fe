package mmio

import "errors"

var (
	ErrUnaligned  = errors.New("unaligned register access")
	ErrOutOfRange = errors.New("address outside of mapped window")
	ErrReadOnly   = errors.New("write to read-only mapping")
)
