package clock_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"omibyte.io/prci/peripheral"
	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
	"omibyte.io/prci/soc/sifive/fu540/prcisim"
)

type fixture struct {
	model     *prcisim.Model
	clock     *clock.Clock
	consumers []*prcisim.Consumer
}

func newFixture(t *testing.T, config prcisim.Config) *fixture {
	t.Helper()
	f := &fixture{model: prcisim.New(config)}
	var nodes []peripheral.ClockNode
	for _, name := range []string{"uart0", "uart1"} {
		c := f.model.NewConsumer(name)
		f.consumers = append(f.consumers, c)
		nodes = append(nodes, c)
	}
	f.clock = clock.New(f.model.Registers(), f.model, f.model, nodes...)
	return f
}

func (f *fixture) run(t *testing.T) {
	t.Helper()
	if f.model.Run(f.clock.Initialize) {
		t.Fatalf("bring-up stalled after %d steps", f.model.Steps())
	}
}

func stores(trace []prcisim.Event, offset uintptr) (values []uint32) {
	for _, e := range trace {
		if e.Kind == prcisim.Store && e.Addr == prci.BaseAddress+offset {
			values = append(values, e.Value)
		}
	}
	return
}

func firstIndex(trace []prcisim.Event, pred func(e prcisim.Event) bool) int {
	return slices.IndexFunc(trace, pred)
}

func TestInitializeEmulated(t *testing.T) {
	f := newFixture(t, prcisim.Config{Emulated: true, LockAfter: prcisim.Latency{Core: prcisim.Never}})
	f.run(t)

	if trace := f.model.Trace(); len(trace) != 0 {
		t.Errorf("expected no activity under emulation, got %d events starting with %v", len(trace), trace[0])
	}
	for _, c := range f.consumers {
		if len(c.Rates) != 0 {
			t.Errorf("%s notified under emulation", c.Name)
		}
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		latency prcisim.Latency
	}{
		{"immediate", prcisim.Latency{}},
		{"slow", prcisim.Latency{Core: 5, DDR: 10, GEMGXL: 3}},
		{"slowCore", prcisim.Latency{Core: 1000, DDR: 1, GEMGXL: 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t, prcisim.Config{LockAfter: test.latency})
			f.run(t)

			trace := f.model.Trace()
			if err := prcisim.Check(trace); err != nil {
				t.Fatal(err)
			}

			// Each PLL is polled until the read that reports lock
			for _, pll := range []struct {
				offset uintptr
				reads  int
			}{
				{prci.OffsetCOREPLLCFG0, test.latency.Core + 1},
				{prci.OffsetDDRPLLCFG0, test.latency.DDR + 1},
				{prci.OffsetGEMGXLPLLCFG0, test.latency.GEMGXL + 1},
			} {
				reads := 0
				for _, e := range trace {
					if e.Kind == prcisim.Load && e.Addr == prci.BaseAddress+pll.offset {
						reads++
					}
				}
				if reads != pll.reads {
					t.Errorf("%#x: expected %d lock polls, got %d", pll.offset, pll.reads, reads)
				}
			}
		})
	}
}

func TestInitializeFinalState(t *testing.T) {
	f := newFixture(t, prcisim.Config{})
	f.run(t)

	lock := uint32(1 << prci.PLLCFG0LOCKPos)
	tests := []struct {
		name     string
		offset   uintptr
		expected uint32
	}{
		{"coreclksel", prci.OffsetCORECLKSEL, 0},
		{"corepll", prci.OffsetCOREPLLCFG0, 0x02110EC0 | lock},
		{"ddrpll", prci.OffsetDDRPLLCFG0, 0x02110DC0 | lock},
		{"ddroutput", prci.OffsetDDRPLLCFG1, 1 << 31},
		{"gemgxlpll", prci.OffsetGEMGXLPLLCFG0, 0x02128EC0 | lock},
		{"gemgxloutput", prci.OffsetGEMGXLPLLCFG1, 1 << 24},
		{"reset", prci.OffsetDEVICESRESETREG, 0x2F},
		{"crystal", prci.OffsetHFXOSCCFG, prci.ResetHFXOSCCFG},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := f.model.Peek(test.offset); got != test.expected {
				t.Errorf("expected %#08x, got %#08x", test.expected, got)
			}
		})
	}
}

func TestConsumersNotifiedFirst(t *testing.T) {
	f := newFixture(t, prcisim.Config{})
	f.run(t)
	trace := f.model.Trace()

	for _, c := range f.consumers {
		if !slices.Equal(c.Rates, []uint64{clock.TargetRate}) {
			t.Errorf("%s: expected one %d Hz notification, got %v", c.Name, uint64(clock.TargetRate), c.Rates)
		}
	}

	lastNotify := -1
	for i, e := range trace {
		if e.Kind == prcisim.Notify {
			lastNotify = i
		}
	}
	firstAccess := firstIndex(trace, func(e prcisim.Event) bool {
		return e.Kind == prcisim.Load || e.Kind == prcisim.Store
	})
	if lastNotify < 0 || firstAccess < lastNotify {
		t.Errorf("register access at event %d precedes notification at event %d", firstAccess, lastNotify)
	}
}

func TestCoreClockSelect(t *testing.T) {
	f := newFixture(t, prcisim.Config{LockAfter: prcisim.Latency{Core: 3}})
	f.run(t)
	trace := f.model.Trace()

	sel := stores(trace, prci.OffsetCORECLKSEL)
	expected := []uint32{uint32(prci.CORECLKSELSourceHFCLK), uint32(prci.CORECLKSELSourceCOREPLL)}
	if !slices.Equal(sel, expected) {
		t.Fatalf("expected CORECLKSEL writes %v, got %v", expected, sel)
	}

	isSel := func(source prci.CORECLKSELSource) func(e prcisim.Event) bool {
		return func(e prcisim.Event) bool {
			return e.Kind == prcisim.Store && e.Addr == prci.BaseAddress+prci.OffsetCORECLKSEL && e.Value == uint32(source)
		}
	}
	toCrystal := firstIndex(trace, isSel(prci.CORECLKSELSourceHFCLK))
	toPLL := firstIndex(trace, isSel(prci.CORECLKSELSourceCOREPLL))

	for i, e := range trace {
		if e.Kind == prcisim.Store && e.Addr == prci.BaseAddress+prci.OffsetCOREPLLCFG0 && (i < toCrystal || i > toPLL) {
			t.Errorf("core PLL reconfigured at event %d while it drives the core", i)
		}
	}

	locked := firstIndex(trace, func(e prcisim.Event) bool {
		return e.Kind == prcisim.Load && e.Addr == prci.BaseAddress+prci.OffsetCOREPLLCFG0 && prci.PLLCFG0(e.Value).GetLOCK()
	})
	if locked < 0 || locked > toPLL {
		t.Errorf("core PLL selected at event %d before lock at event %d", toPLL, locked)
	}
}

func TestResetRelease(t *testing.T) {
	f := newFixture(t, prcisim.Config{})
	f.run(t)

	masks := stores(f.model.Trace(), prci.OffsetDEVICESRESETREG)
	expected := []uint32{0x00, 0x01, 0x0F, 0x2F}
	if !slices.Equal(masks, expected) {
		t.Fatalf("expected reset writes %#v, got %#v", expected, masks)
	}

	// Released sets only ever grow
	for i := 1; i < len(masks); i++ {
		if masks[i]&masks[i-1] != masks[i-1] {
			t.Errorf("write %d (%#02x) puts a block back into reset", i, masks[i])
		}
	}
}

func TestDDROutputEnableWord(t *testing.T) {
	f := newFixture(t, prcisim.Config{})
	f.run(t)

	writes := stores(f.model.Trace(), prci.OffsetDDRPLLCFG1)
	expected := []uint32{0, 1 << 31}
	if !slices.Equal(writes, expected) {
		t.Errorf("expected DDRPLLCFG1 writes %#v, got %#v", expected, writes)
	}
}

func TestPLLNeverLocks(t *testing.T) {
	tests := []struct {
		name    string
		latency prcisim.Latency
		offset  uintptr
	}{
		{"core", prcisim.Latency{Core: prcisim.Never}, prci.OffsetCORECLKSEL},
		{"ddr", prcisim.Latency{DDR: prcisim.Never}, prci.OffsetDDRPLLCFG1},
		{"gemgxl", prcisim.Latency{GEMGXL: prcisim.Never}, prci.OffsetGEMGXLPLLCFG1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t, prcisim.Config{LockAfter: test.latency, MaxSteps: 5000})
			if !f.model.Run(f.clock.Initialize) {
				t.Fatal("bring-up completed although the PLL never locked")
			}

			// Only the write that started the wait may have reached the
			// output control register
			if writes := stores(f.model.Trace(), test.offset); len(writes) > 1 {
				t.Errorf("output switched after a PLL that never locked: %#v", writes)
			}
			if got := f.model.Peek(prci.OffsetDEVICESRESETREG); got == 0x2F {
				t.Error("blocks released from reset although bring-up stalled")
			}
		})
	}
}

func TestDriver(t *testing.T) {
	f := newFixture(t, prcisim.Config{})

	if _, err := f.clock.Pread(make([]byte, 4), 0); !errors.Is(err, peripheral.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}

	for _, payload := range []string{"", "off", "on\n", "ON", "onn"} {
		n, err := f.clock.Pwrite([]byte(payload), 0)
		if n != 0 || err != nil {
			t.Errorf("%q: expected (0, nil), got (%d, %v)", payload, n, err)
		}
	}
	if len(f.model.Trace()) != 0 {
		t.Fatal("unrecognized payload started the bring-up")
	}

	var n int
	var err error
	if f.model.Run(func() { n, err = f.clock.Pwrite([]byte("on"), 0) }) {
		t.Fatal("bring-up stalled")
	}
	if n != 1 || err != nil {
		t.Errorf("expected (1, nil), got (%d, %v)", n, err)
	}
	if err := prcisim.Check(f.model.Trace()); err != nil {
		t.Error(err)
	}

	f.clock.Init()
	f.clock.Shutdown()
}
