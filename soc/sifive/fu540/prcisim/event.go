package prcisim

import (
	"fmt"

	"omibyte.io/prci/soc/sifive/fu540/prci"
)

type EventKind int

const (
	Load EventKind = iota
	Store
	Fence
	Nop
	Notify
)

func (k EventKind) String() string {
	switch k {
	case Load:
		return "load"
	case Store:
		return "store"
	case Fence:
		return "fence"
	case Nop:
		return "nop"
	case Notify:
		return "notify"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

func (k EventKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Event is one observable action of the software under test.
type Event struct {
	Seq      int       `yaml:"seq"`
	Kind     EventKind `yaml:"kind"`
	Addr     uintptr   `yaml:"addr,omitempty"`
	Register string    `yaml:"register,omitempty"`
	Value    uint32    `yaml:"value,omitempty"`
	Consumer string    `yaml:"consumer,omitempty"`
	Rate     uint64    `yaml:"rate,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case Load, Store:
		name := e.Register
		if len(name) == 0 {
			name = fmt.Sprintf("%#x", e.Addr)
		}
		return fmt.Sprintf("%6d %-6s %-16s %#08x", e.Seq, e.Kind, name, e.Value)
	case Notify:
		return fmt.Sprintf("%6d %-6s %-16s %d Hz", e.Seq, e.Kind, e.Consumer, e.Rate)
	default:
		return fmt.Sprintf("%6d %s", e.Seq, e.Kind)
	}
}

var registerNames = map[uintptr]string{
	prci.OffsetHFXOSCCFG:       "HFXOSCCFG",
	prci.OffsetCOREPLLCFG0:     "COREPLLCFG0",
	prci.OffsetDDRPLLCFG0:      "DDRPLLCFG0",
	prci.OffsetDDRPLLCFG1:      "DDRPLLCFG1",
	prci.OffsetGEMGXLPLLCFG0:   "GEMGXLPLLCFG0",
	prci.OffsetGEMGXLPLLCFG1:   "GEMGXLPLLCFG1",
	prci.OffsetCORECLKSEL:      "CORECLKSEL",
	prci.OffsetDEVICESRESETREG: "DEVICESRESETREG",
}
