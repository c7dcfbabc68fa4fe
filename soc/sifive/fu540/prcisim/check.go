package prcisim

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
)

// milestone is one step of the bring-up that can be located in a trace.
type milestone struct {
	name string
	// after names the milestone the search starts from
	after string
	// last selects the final matching event instead of the first
	last  bool
	match func(e Event) bool
}

var milestones = []milestone{
	{name: "notify", last: true, match: func(e Event) bool { return e.Kind == Notify }},
	{name: "coreclk-hfclk", match: storeOf(prci.OffsetCORECLKSEL, func(v uint32) bool {
		return prci.CORECLKSEL(v).GetSEL() == prci.CORECLKSELSourceHFCLK
	})},
	{name: "core-config", match: storeOf(prci.OffsetCOREPLLCFG0, nil)},
	{name: "core-lock", after: "core-config", match: lockedLoadOf(prci.OffsetCOREPLLCFG0)},
	{name: "coreclk-corepll", match: storeOf(prci.OffsetCORECLKSEL, func(v uint32) bool {
		return prci.CORECLKSEL(v).GetSEL() == prci.CORECLKSELSourceCOREPLL
	})},
	{name: "hold-reset", match: storeOf(prci.OffsetDEVICESRESETREG, resetIs(clock.ResetMask()))},
	{name: "ddr-disable", match: storeOf(prci.OffsetDDRPLLCFG1, outputDisabled)},
	{name: "ddr-config", match: storeOf(prci.OffsetDDRPLLCFG0, nil)},
	{name: "ddr-lock", after: "ddr-config", match: lockedLoadOf(prci.OffsetDDRPLLCFG0)},
	{name: "ddr-enable", match: storeOf(prci.OffsetDDRPLLCFG1, not(outputDisabled))},
	{name: "release-ddrctrl", match: storeOf(prci.OffsetDEVICESRESETREG, resetIs(clock.ResetMask(clock.DDRController)))},
	{name: "fence-ddrctrl", after: "release-ddrctrl", match: kindOf(Fence)},
	{name: "release-ddr", match: storeOf(prci.OffsetDEVICESRESETREG, resetIs(clock.ResetMask(clock.DDRController, clock.DDRAXI, clock.DDRAHB, clock.DDRPHY)))},
	{name: "fence-ddr", after: "release-ddr", match: kindOf(Fence)},
	{name: "gemgxl-disable", match: storeOf(prci.OffsetGEMGXLPLLCFG1, outputDisabled)},
	{name: "gemgxl-config", match: storeOf(prci.OffsetGEMGXLPLLCFG0, nil)},
	{name: "gemgxl-lock", after: "gemgxl-config", match: lockedLoadOf(prci.OffsetGEMGXLPLLCFG0)},
	{name: "gemgxl-enable", match: storeOf(prci.OffsetGEMGXLPLLCFG1, not(outputDisabled))},
	{name: "release-all", match: storeOf(prci.OffsetDEVICESRESETREG, resetIs(clock.ResetMask(clock.Domains...)))},
	{name: "fence-all", after: "release-all", match: kindOf(Fence)},
}

// precedes lists the ordering the bring-up must respect. Each milestone's
// after relation is added on top of these.
var precedes = [][2]string{
	{"notify", "coreclk-hfclk"},
	{"coreclk-hfclk", "core-config"},
	{"core-lock", "coreclk-corepll"},
	{"coreclk-corepll", "hold-reset"},
	{"hold-reset", "ddr-disable"},
	{"ddr-disable", "ddr-config"},
	{"ddr-lock", "ddr-enable"},
	{"ddr-enable", "release-ddrctrl"},
	{"fence-ddrctrl", "release-ddr"},
	{"fence-ddr", "gemgxl-disable"},
	{"gemgxl-disable", "gemgxl-config"},
	{"gemgxl-lock", "gemgxl-enable"},
	{"gemgxl-enable", "release-all"},
}

// Expected number of stores to each register during one bring-up.
var storeCounts = map[uintptr]int{
	prci.OffsetHFXOSCCFG:       0,
	prci.OffsetCOREPLLCFG0:     1,
	prci.OffsetDDRPLLCFG0:      1,
	prci.OffsetDDRPLLCFG1:      2,
	prci.OffsetGEMGXLPLLCFG0:   1,
	prci.OffsetGEMGXLPLLCFG1:   2,
	prci.OffsetCORECLKSEL:      2,
	prci.OffsetDEVICESRESETREG: 4,
}

// ddrOutputEnable is the word the DDR PLL output is switched on with.
const ddrOutputEnable = 1 << 31

// Check validates the trace of one complete bring-up. It reports every rule
// the trace breaks.
func Check(trace []Event) error {
	order, edges, err := ruleOrder()
	if err != nil {
		return err
	}

	// Locate milestones in dependency order so every search start is known
	byName := map[string]milestone{}
	for _, m := range milestones {
		byName[m.name] = m
	}

	var errs []error
	pos := map[string]int{}
	for _, name := range order {
		m := byName[name]
		from := 0
		if len(m.after) > 0 {
			p, ok := pos[m.after]
			if !ok {
				continue
			}
			from = p + 1
		}
		if p, ok := find(trace, from, m); ok {
			pos[name] = p
		} else if name != "notify" {
			errs = append(errs, fmt.Errorf("%s: %w", name, ErrMissing))
		}
	}
	if _, ok := pos["notify"]; !ok {
		pos["notify"] = -1
	}

	for _, e := range edges {
		p, okP := pos[e[0]]
		q, okQ := pos[e[1]]
		if okP && okQ && p >= q {
			errs = append(errs, fmt.Errorf("%s (event %d) must precede %s (event %d): %w", e[0], p, e[1], q, ErrOrder))
		}
	}

	errs = append(errs, checkValues(trace, pos)...)
	return errors.Join(errs...)
}

// ruleOrder sorts the milestones so each one comes after everything it
// depends on, and returns the full edge set.
func ruleOrder() ([]string, [][2]string, error) {
	g := simple.NewDirectedGraph()
	for i := range milestones {
		g.AddNode(simple.Node(i))
	}

	id := func(name string) int64 {
		return int64(slices.IndexFunc(milestones, func(m milestone) bool { return m.name == name }))
	}

	edges := slices.Clone(precedes)
	for _, m := range milestones {
		if len(m.after) > 0 {
			edges = append(edges, [2]string{m.after, m.name})
		}
	}
	for _, e := range edges {
		from, to := id(e[0]), id(e[1])
		if from < 0 || to < 0 {
			return nil, nil, fmt.Errorf("rule %s -> %s names an unknown milestone: %w", e[0], e[1], ErrRules)
		}
		g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(to)))
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, ErrRules)
	}

	order := make([]string, 0, len(sorted))
	for _, n := range sorted {
		order = append(order, milestones[n.ID()].name)
	}
	return order, edges, nil
}

func find(trace []Event, from int, m milestone) (int, bool) {
	found := -1
	for i := from; i < len(trace); i++ {
		if m.match(trace[i]) {
			found = i
			if !m.last {
				break
			}
		}
	}
	return found, found >= 0
}

func checkValues(trace []Event, pos map[string]int) (errs []error) {
	stores := map[uintptr][]uint32{}
	notified := map[string]int{}
	for _, e := range trace {
		switch e.Kind {
		case Store:
			if e.Addr >= prci.BaseAddress {
				stores[e.Addr-prci.BaseAddress] = append(stores[e.Addr-prci.BaseAddress], e.Value)
			}
		case Notify:
			notified[e.Consumer]++
			if e.Rate != clock.TargetRate {
				errs = append(errs, fmt.Errorf("%s notified with %d Hz: %w", e.Consumer, e.Rate, ErrValue))
			}
		}
	}

	for name, n := range notified {
		if n != 1 {
			errs = append(errs, fmt.Errorf("%s notified %d times: %w", name, n, ErrCount))
		}
	}

	for offset, expected := range storeCounts {
		if n := len(stores[offset]); n != expected {
			errs = append(errs, fmt.Errorf("%s written %d times, expected %d: %w", registerNames[offset], n, expected, ErrCount))
		}
	}

	presets := []struct {
		offset uintptr
		value  prci.PLLCFG0
	}{
		{prci.OffsetCOREPLLCFG0, clock.CorePLL},
		{prci.OffsetDDRPLLCFG0, clock.DDRPLL},
		{prci.OffsetGEMGXLPLLCFG0, clock.GEMGXLPLL},
	}
	for _, p := range presets {
		for _, v := range stores[p.offset] {
			if v != uint32(p.value) {
				errs = append(errs, fmt.Errorf("%s written with %#08x, expected %#08x: %w", registerNames[p.offset], v, uint32(p.value), ErrValue))
			}
		}
	}

	if p, ok := pos["ddr-enable"]; ok && trace[p].Value != ddrOutputEnable {
		errs = append(errs, fmt.Errorf("DDR PLL output enabled with %#08x, expected %#08x: %w", trace[p].Value, uint32(ddrOutputEnable), ErrValue))
	}

	if p, ok := pos["gemgxl-enable"]; ok && trace[p].Value != uint32(prci.PLLCFG1(0).WithCKE(prci.PLLCFG1OutputENABLE)) {
		errs = append(errs, fmt.Errorf("GEMGXL PLL output enabled with %#08x: %w", trace[p].Value, ErrValue))
	}

	// The DDR blocks need time to leave reset before the next PLL is touched
	p, okP := pos["fence-ddr"]
	q, okQ := pos["gemgxl-disable"]
	if okP && okQ && p < q {
		nops := 0
		for _, e := range trace[p:q] {
			if e.Kind == Nop {
				nops++
			}
		}
		if nops < settleCycles {
			errs = append(errs, fmt.Errorf("%d no-ops between DDR release and GEMGXL setup, expected %d: %w", nops, settleCycles, ErrCount))
		}
	}

	return errs
}

const settleCycles = 256

func storeOf(offset uintptr, pred func(uint32) bool) func(Event) bool {
	return func(e Event) bool {
		return e.Kind == Store && e.Addr == prci.BaseAddress+offset && (pred == nil || pred(e.Value))
	}
}

func lockedLoadOf(offset uintptr) func(Event) bool {
	return func(e Event) bool {
		return e.Kind == Load && e.Addr == prci.BaseAddress+offset && prci.PLLCFG0(e.Value).GetLOCK()
	}
}

func kindOf(kind EventKind) func(Event) bool {
	return func(e Event) bool {
		return e.Kind == kind
	}
}

func resetIs(mask prci.DEVICESRESETREG) func(uint32) bool {
	return func(v uint32) bool {
		return v == uint32(mask)
	}
}

func outputDisabled(v uint32) bool {
	return v == uint32(prci.PLLCFG1(0).WithCKE(prci.PLLCFG1OutputDISABLE))
}

func not(pred func(uint32) bool) func(uint32) bool {
	return func(v uint32) bool {
		return !pred(v)
	}
}
