package main

import (
	"fmt"
	"io"
	"strings"

	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
)

// RegisterDump is the decoded state of one PRCI register.
type RegisterDump struct {
	Name   string            `yaml:"name"`
	Offset uintptr           `yaml:"offset"`
	Value  uint32            `yaml:"value"`
	Fields map[string]string `yaml:"fields"`
	Order  []string          `yaml:"-"`
	Rate   uint64            `yaml:"rate,omitempty"`
}

func (d *RegisterDump) set(name string, value interface{}) {
	if d.Fields == nil {
		d.Fields = map[string]string{}
	}
	d.Fields[name] = fmt.Sprint(value)
	d.Order = append(d.Order, name)
}

var outputNames = map[prci.PLLCFG1Output]string{
	prci.PLLCFG1OutputDISABLE: "disable",
	prci.PLLCFG1OutputENABLE:  "enable",
}

var sourceNames = map[prci.CORECLKSELSource]string{
	prci.CORECLKSELSourceCOREPLL: "corepll",
	prci.CORECLKSELSourceHFCLK:   "hfclk",
}

// readRegisters reads every register of the block once. PLL output rates are
// derived from hfclk.
func readRegisters(regs *prci.RegisterBlock, hfclk uint64) []RegisterDump {
	var dumps []RegisterDump

	osc := regs.HFXOSCCFG.Get()
	d := RegisterDump{Name: "HFXOSCCFG", Offset: prci.OffsetHFXOSCCFG, Value: uint32(osc)}
	d.set("enable", osc.GetENABLE())
	d.set("ready", osc.GetREADY())
	dumps = append(dumps, d)

	pll0 := func(name string, offset uintptr, r prci.PLLCFG0Register) RegisterDump {
		v := r.Get()
		config := clock.Decode(v)
		d := RegisterDump{Name: name, Offset: offset, Value: uint32(v), Rate: config.Frequency(hfclk)}
		d.set("divr", config.DivR)
		d.set("divf", config.DivF)
		d.set("divq", config.DivQ)
		d.set("range", config.Range)
		d.set("bypass", config.Bypass)
		d.set("fse", config.FSE)
		d.set("lock", v.GetLOCK())
		return d
	}
	pll1 := func(name string, offset uintptr, r prci.PLLCFG1Register) RegisterDump {
		v := r.Get()
		d := RegisterDump{Name: name, Offset: offset, Value: uint32(v)}
		d.set("cke", outputNames[v.GetCKE()])
		return d
	}

	dumps = append(dumps,
		pll0("COREPLLCFG0", prci.OffsetCOREPLLCFG0, regs.COREPLLCFG0),
		pll0("DDRPLLCFG0", prci.OffsetDDRPLLCFG0, regs.DDRPLLCFG0),
		pll1("DDRPLLCFG1", prci.OffsetDDRPLLCFG1, regs.DDRPLLCFG1),
		pll0("GEMGXLPLLCFG0", prci.OffsetGEMGXLPLLCFG0, regs.GEMGXLPLLCFG0),
		pll1("GEMGXLPLLCFG1", prci.OffsetGEMGXLPLLCFG1, regs.GEMGXLPLLCFG1),
	)

	sel := regs.CORECLKSEL.Get()
	d = RegisterDump{Name: "CORECLKSEL", Offset: prci.OffsetCORECLKSEL, Value: uint32(sel)}
	d.set("sel", sourceNames[sel.GetSEL()])
	dumps = append(dumps, d)

	reset := regs.DEVICESRESETREG.Get()
	d = RegisterDump{Name: "DEVICESRESETREG", Offset: prci.OffsetDEVICESRESETREG, Value: uint32(reset)}
	var released []string
	for _, domain := range clock.Released(reset) {
		released = append(released, domain.String())
	}
	d.set("released", "["+strings.Join(released, " ")+"]")
	dumps = append(dumps, d)

	return dumps
}

func writeRegisters(w io.Writer, dumps []RegisterDump) {
	for _, d := range dumps {
		var fields []string
		for _, name := range d.Order {
			fields = append(fields, name+"="+d.Fields[name])
		}
		fmt.Fprintf(w, "%-16s %#04x  %#08x  %s", d.Name, d.Offset, d.Value, strings.Join(fields, " "))
		if d.Rate != 0 {
			fmt.Fprintf(w, "  %.3f MHz", float64(d.Rate)/1e6)
		}
		fmt.Fprintln(w)
	}
}
