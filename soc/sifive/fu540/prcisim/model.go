// Package prcisim models the FU540 PRCI block at register level so the clock
// bring-up can run on a host. The model records every access in a trace and
// Check validates a trace against the bring-up rules.
package prcisim

import (
	"omibyte.io/prci/mmio"
	"omibyte.io/prci/soc/sifive/fu540/prci"
)

type PLL int

const (
	CorePLL PLL = iota
	DDRPLL
	GEMGXLPLL
)

var PLLs = []PLL{CorePLL, DDRPLL, GEMGXLPLL}

func (p PLL) String() string {
	switch p {
	case CorePLL:
		return "core"
	case DDRPLL:
		return "ddr"
	case GEMGXLPLL:
		return "gemgxl"
	default:
		return "unknown"
	}
}

const (
	lockBit  = prci.PLLCFG0LOCKMsk << prci.PLLCFG0LOCKPos
	readyBit = prci.HFXOSCCFGREADYMsk << prci.HFXOSCCFGREADYPos
)

var pllOffsets = map[uintptr]PLL{
	prci.OffsetCOREPLLCFG0:   CorePLL,
	prci.OffsetDDRPLLCFG0:    DDRPLL,
	prci.OffsetGEMGXLPLLCFG0: GEMGXLPLL,
}

// stall is the panic value used to unwind a run that used up its step budget.
type stall struct{}

// Model is a PRCI block at prci.BaseAddress. Addresses outside of the block
// behave as plain memory. Model also stands in for the CPU and the emulation
// query of the clock driver.
type Model struct {
	config   Config
	mem      mmio.Memory
	pending  [3]int
	steps    int
	maxSteps int
	trace    []Event
}

func New(config Config) *Model {
	m := &Model{
		config:   config,
		maxSteps: config.MaxSteps,
	}
	if m.maxSteps == 0 {
		m.maxSteps = DefaultMaxSteps
	}
	m.Reset()
	return m
}

// Reset puts every register back to its reset value and clears the trace.
func (m *Model) Reset() {
	m.mem = mmio.Memory{
		prci.BaseAddress + prci.OffsetHFXOSCCFG:       prci.ResetHFXOSCCFG,
		prci.BaseAddress + prci.OffsetCOREPLLCFG0:     prci.ResetCOREPLLCFG0,
		prci.BaseAddress + prci.OffsetDDRPLLCFG0:      prci.ResetDDRPLLCFG0,
		prci.BaseAddress + prci.OffsetDDRPLLCFG1:      prci.ResetDDRPLLCFG1,
		prci.BaseAddress + prci.OffsetGEMGXLPLLCFG0:   prci.ResetGEMGXLPLLCFG0,
		prci.BaseAddress + prci.OffsetGEMGXLPLLCFG1:   prci.ResetGEMGXLPLLCFG1,
		prci.BaseAddress + prci.OffsetCORECLKSEL:      prci.ResetCORECLKSEL,
		prci.BaseAddress + prci.OffsetDEVICESRESETREG: prci.ResetDEVICESRESETREG,
	}
	for i := range m.pending {
		m.pending[i] = Never
	}
	m.steps = 0
	m.trace = nil
}

// Registers returns the register block as software sees it through the model.
func (m *Model) Registers() *prci.RegisterBlock {
	return prci.New(m, prci.BaseAddress)
}

func (m *Model) Config() Config {
	return m.config
}

// Trace returns the events recorded since the last Reset.
func (m *Model) Trace() []Event {
	return m.trace
}

func (m *Model) Steps() int {
	return m.steps
}

// Peek reads a register without recording an access or advancing the model.
func (m *Model) Peek(offset uintptr) uint32 {
	return m.mem[prci.BaseAddress+offset]
}

func (m *Model) LoadUint32(addr uintptr) uint32 {
	m.step()
	if pll, ok := m.pllAt(addr); ok {
		m.advanceLock(pll, addr)
	}
	value := m.mem.LoadUint32(addr)
	m.record(Event{Kind: Load, Addr: addr, Value: value})
	return value
}

func (m *Model) StoreUint32(addr uintptr, value uint32) {
	m.step()
	m.record(Event{Kind: Store, Addr: addr, Value: value})

	if pll, ok := m.pllAt(addr); ok {
		// Reprogramming drops lock; software cannot set it
		value &^= lockBit
		m.pending[pll] = m.config.LockAfter.For(pll)
	} else if addr == prci.BaseAddress+prci.OffsetHFXOSCCFG {
		value = value&^readyBit | m.mem[addr]&readyBit
	}
	m.mem.StoreUint32(addr, value)
}

func (m *Model) Fence() {
	m.step()
	m.record(Event{Kind: Fence})
}

func (m *Model) Nop() {
	m.step()
	m.record(Event{Kind: Nop})
}

func (m *Model) Emulated() bool {
	return m.config.Emulated
}

// Run calls fn and reports whether it was cut short by the step budget. Any
// other panic is passed on.
func (m *Model) Run(fn func()) (stalled bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stall); !ok {
				panic(r)
			}
			stalled = true
		}
	}()
	fn()
	return false
}

func (m *Model) step() {
	m.steps++
	if m.steps > m.maxSteps {
		panic(stall{})
	}
}

func (m *Model) record(e Event) {
	e.Seq = len(m.trace)
	if e.Kind == Load || e.Kind == Store {
		e.Register = registerNames[e.Addr-prci.BaseAddress]
	}
	m.trace = append(m.trace, e)
}

func (m *Model) pllAt(addr uintptr) (PLL, bool) {
	if addr < prci.BaseAddress {
		return 0, false
	}
	pll, ok := pllOffsets[addr-prci.BaseAddress]
	return pll, ok
}

func (m *Model) advanceLock(pll PLL, addr uintptr) {
	switch {
	case m.pending[pll] > 0:
		m.pending[pll]--
	case m.pending[pll] == 0:
		m.mem[addr] |= lockBit
		m.pending[pll] = Never
	}
}

// Consumer is a clock consumer that records its notifications in the trace
// of the model it belongs to.
type Consumer struct {
	Name  string
	Rates []uint64
	model *Model
}

func (m *Model) NewConsumer(name string) *Consumer {
	return &Consumer{Name: name, model: m}
}

func (c *Consumer) SetClockRate(hz uint64) {
	c.Rates = append(c.Rates, hz)
	c.model.record(Event{Kind: Notify, Consumer: c.Name, Rate: hz})
}
