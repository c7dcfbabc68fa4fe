package prcisim

import (
	"errors"
	"strings"
	"testing"

	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
)

func TestResetValues(t *testing.T) {
	m := New(Config{})
	tests := []struct {
		offset   uintptr
		expected uint32
	}{
		{prci.OffsetHFXOSCCFG, 0x60000000},
		{prci.OffsetCOREPLLCFG0, 0x01000000},
		{prci.OffsetCORECLKSEL, 1},
		{prci.OffsetDEVICESRESETREG, 0},
	}
	for _, test := range tests {
		if got := m.Peek(test.offset); got != test.expected {
			t.Errorf("%s: expected %#08x, got %#08x", registerNames[test.offset], test.expected, got)
		}
	}
	if len(m.Trace()) != 0 || m.Steps() != 0 {
		t.Error("peeking must not be recorded")
	}
}

func TestLockLatency(t *testing.T) {
	tests := []struct {
		name    string
		latency int
		polls   []bool
	}{
		{"immediate", 0, []bool{true, true}},
		{"two", 2, []bool{false, false, true, true}},
		{"never", Never, []bool{false, false, false, false, false}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := New(Config{LockAfter: Latency{DDR: test.latency}})
			regs := m.Registers()
			regs.DDRPLLCFG0.Set(clock.DDRPLL)
			for i, expected := range test.polls {
				if got := regs.DDRPLLCFG0.GetLOCK(); got != expected {
					t.Errorf("poll %d: expected lock %v, got %v", i, expected, got)
				}
			}
		})
	}
}

func TestRelockOnWrite(t *testing.T) {
	m := New(Config{LockAfter: Latency{Core: 1}})
	regs := m.Registers()

	regs.COREPLLCFG0.Set(clock.CorePLL)
	regs.COREPLLCFG0.GetLOCK()
	if !regs.COREPLLCFG0.GetLOCK() {
		t.Fatal("expected lock on the second poll")
	}

	regs.COREPLLCFG0.SetDIVQ(3)
	if regs.COREPLLCFG0.GetLOCK() {
		t.Error("reprogramming must drop lock")
	}
	if got := regs.COREPLLCFG0.GetDIVQ(); got != 3 {
		t.Errorf("expected DIVQ 3, got %d", got)
	}
}

func TestReadOnlyBits(t *testing.T) {
	m := New(Config{LockAfter: Latency{GEMGXL: Never}})
	regs := m.Registers()
	cfg0 := prci.BaseAddress + uintptr(prci.OffsetGEMGXLPLLCFG0)

	// The handle never puts read-only bits on the bus
	regs.GEMGXLPLLCFG0.Set(clock.GEMGXLPLL | 1<<prci.PLLCFG0LOCKPos)
	if got := m.Trace()[0]; got.Kind != Store || got.Value != uint32(clock.GEMGXLPLL) {
		t.Errorf("unexpected trace entry %v", got)
	}

	// A raw store keeps what software wrote in the trace, the device drops it
	m.StoreUint32(cfg0, uint32(clock.GEMGXLPLL)|1<<31)
	if got := m.Peek(prci.OffsetGEMGXLPLLCFG0); got != uint32(clock.GEMGXLPLL) {
		t.Errorf("lock bit written by software: %#08x", got)
	}
	if got := m.Trace()[1]; got.Value != uint32(clock.GEMGXLPLL)|1<<31 {
		t.Errorf("unexpected trace entry %v", got)
	}

	regs.HFXOSCCFG.Set(0)
	if !regs.HFXOSCCFG.GetREADY() {
		t.Error("ready bit cleared by software")
	}
	if regs.HFXOSCCFG.GetENABLE() {
		t.Error("enable bit not cleared")
	}
}

func TestRun(t *testing.T) {
	m := New(Config{MaxSteps: 10})
	if m.Run(func() {
		for i := 0; i < 10; i++ {
			m.Nop()
		}
	}) {
		t.Error("run within the budget reported a stall")
	}
	if !m.Run(func() { m.Fence() }) {
		t.Error("run past the budget did not report a stall")
	}

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected the original panic, got %v", r)
		}
	}()
	New(Config{}).Run(func() { panic("boom") })
}

func TestTraceRecordsRegisters(t *testing.T) {
	m := New(Config{})
	c := m.NewConsumer("uart0")
	c.SetClockRate(42)
	m.Registers().CORECLKSEL.Set(prci.CORECLKSEL(0).WithSEL(prci.CORECLKSELSourceHFCLK))
	m.LoadUint32(0x80000000)

	trace := m.Trace()
	if len(trace) != 3 {
		t.Fatalf("expected 3 events, got %d", len(trace))
	}
	if trace[0].Kind != Notify || trace[0].Consumer != "uart0" || trace[0].Rate != 42 {
		t.Errorf("unexpected notification %v", trace[0])
	}
	if trace[1].Register != "CORECLKSEL" || trace[1].Seq != 1 {
		t.Errorf("unexpected store %v", trace[1])
	}
	if trace[2].Register != "" || !strings.Contains(trace[2].String(), "0x80000000") {
		t.Errorf("unexpected load %v", trace[2])
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Config
		err      bool
	}{
		{"empty", "", Config{}, false},
		{
			"full",
			"emulated: false\nmax_steps: 500\nlock_after:\n  core: 3\n  ddr: -1\n  gemgxl: 2\nconsumers: [uart0, uart1]\n",
			Config{MaxSteps: 500, LockAfter: Latency{Core: 3, DDR: Never, GEMGXL: 2}, Consumers: []string{"uart0", "uart1"}},
			false,
		},
		{"unknownKey", "lock_latency: 3\n", Config{}, true},
		{"badLatency", "lock_after:\n  core: -2\n", Config{}, true},
		{"badSteps", "max_steps: -1\n", Config{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := LoadConfig(strings.NewReader(test.input))
			if test.err {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if config.MaxSteps != test.expected.MaxSteps || config.LockAfter != test.expected.LockAfter ||
				strings.Join(config.Consumers, ",") != strings.Join(test.expected.Consumers, ",") {
				t.Errorf("expected %+v, got %+v", test.expected, config)
			}
		})
	}

	if _, err := LoadConfig(strings.NewReader("lock_after:\n  core: -2\n")); !errors.Is(err, ErrBadConfig) {
		t.Errorf("expected ErrBadConfig, got %v", err)
	}
}
