// Package clock brings the FU540 PRCI from its post-reset state, with
// everything running from the 33.33 MHz crystal, to its operating state: the
// core, DDR and Gigabit Ethernet PLLs locked at their target rates and the DDR
// and Ethernet blocks released from reset.
package clock

import (
	"omibyte.io/prci/peripheral"
	"omibyte.io/prci/soc/sifive/fu540/prci"
)

// TargetRate is the rate, in Hz, clock consumers are told to expect before
// the PLLs are reprogrammed.
const TargetRate = 1_000_000_000

const (
	// resetSettleCycles is how long the DDR blocks are given to come out of
	// reset before anything else touches them.
	resetSettleCycles = 256

	// The DDR PLL output is enabled through bit 31, not CKE at bit 24 as
	// documented for PLLCFG1. The DDR bring-up depends on this value.
	ddrPLLOutputEnable prci.PLLCFG1 = 1 << 31
)

// CPU provides the memory-ordering and delay primitives the sequence needs.
type CPU interface {
	Fence()
	Nop()
}

// Environment reports whether the firmware runs under an emulator that does
// not model the PRCI.
type Environment interface {
	Emulated() bool
}

type Clock struct {
	regs      *prci.RegisterBlock
	cpu       CPU
	env       Environment
	consumers []peripheral.ClockNode
}

// New returns the clock driver for the PRCI block at regs. consumers are told
// about the new reference rate before any PLL is touched.
func New(regs *prci.RegisterBlock, cpu CPU, env Environment, consumers ...peripheral.ClockNode) *Clock {
	return &Clock{
		regs:      regs,
		cpu:       cpu,
		env:       env,
		consumers: consumers,
	}
}

// Initialize runs the bring-up sequence. It blocks until each PLL reports lock
// and never times out. Under emulation it returns without touching the
// hardware.
func (c *Clock) Initialize() {
	if c.env.Emulated() {
		return
	}

	for _, consumer := range c.consumers {
		consumer.SetClockRate(TargetRate)
	}

	c.initCorePLL()

	// Hold DDR and Ethernet in reset while their PLLs change
	c.regs.DEVICESRESETREG.Set(ResetMask())

	c.initDDRPLL()

	// Each release needs one full controller clock cycle before the next
	c.regs.DEVICESRESETREG.Set(ResetMask(DDRController))
	c.cpu.Fence()
	c.regs.DEVICESRESETREG.Set(ResetMask(DDRController, DDRAXI, DDRAHB, DDRPHY))
	c.cpu.Fence()

	for i := 0; i < resetSettleCycles; i++ {
		c.cpu.Nop()
	}

	c.initGEMGXLPLL()

	c.regs.DEVICESRESETREG.Set(ResetMask(Domains...))
	c.cpu.Fence()
}

func (c *Clock) initCorePLL() {
	// Run the core from the crystal while its PLL relocks
	c.regs.CORECLKSEL.Set(prci.CORECLKSEL(0).WithSEL(prci.CORECLKSELSourceHFCLK))
	c.regs.COREPLLCFG0.Set(CorePLL)
	for !c.regs.COREPLLCFG0.GetLOCK() {
	}
	c.regs.CORECLKSEL.Set(prci.CORECLKSEL(0).WithSEL(prci.CORECLKSELSourceCOREPLL))
}

func (c *Clock) initDDRPLL() {
	c.regs.DDRPLLCFG1.Set(prci.PLLCFG1(0).WithCKE(prci.PLLCFG1OutputDISABLE))
	c.regs.DDRPLLCFG0.Set(DDRPLL)
	for !c.regs.DDRPLLCFG0.GetLOCK() {
	}
	c.regs.DDRPLLCFG1.Set(ddrPLLOutputEnable)
}

func (c *Clock) initGEMGXLPLL() {
	c.regs.GEMGXLPLLCFG1.Set(prci.PLLCFG1(0).WithCKE(prci.PLLCFG1OutputDISABLE))
	c.regs.GEMGXLPLLCFG0.Set(GEMGXLPLL)
	for !c.regs.GEMGXLPLLCFG0.GetLOCK() {
	}
	c.regs.GEMGXLPLLCFG1.Set(prci.PLLCFG1(0).WithCKE(prci.PLLCFG1OutputENABLE))
}
