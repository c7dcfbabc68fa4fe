package clock

import "omibyte.io/prci/soc/sifive/fu540/prci"

// PLL settings for a 33.33 MHz reference.
const (
	// CorePLL runs the core complex at 999.9 MHz.
	CorePLL prci.PLLCFG0 = 0<<prci.PLLCFG0DIVRPos |
		59<<prci.PLLCFG0DIVFPos |
		2<<prci.PLLCFG0DIVQPos |
		4<<prci.PLLCFG0RANGEPos |
		1<<prci.PLLCFG0FSEPos

	// DDRPLL runs the DDR controller at 933.24 MHz.
	DDRPLL prci.PLLCFG0 = 0<<prci.PLLCFG0DIVRPos |
		55<<prci.PLLCFG0DIVFPos |
		2<<prci.PLLCFG0DIVQPos |
		4<<prci.PLLCFG0RANGEPos |
		1<<prci.PLLCFG0FSEPos

	// GEMGXLPLL runs the Ethernet MAC at 124.99 MHz.
	GEMGXLPLL prci.PLLCFG0 = 0<<prci.PLLCFG0DIVRPos |
		59<<prci.PLLCFG0DIVFPos |
		5<<prci.PLLCFG0DIVQPos |
		4<<prci.PLLCFG0RANGEPos |
		1<<prci.PLLCFG0FSEPos
)

// PLLConfig is the field-by-field form of a PLLCFG0 word.
type PLLConfig struct {
	DivR   uint8  `yaml:"divr"`
	DivF   uint16 `yaml:"divf"`
	DivQ   uint8  `yaml:"divq"`
	Range  uint8  `yaml:"range"`
	Bypass bool   `yaml:"bypass"`
	FSE    bool   `yaml:"fse"`
}

func Decode(v prci.PLLCFG0) PLLConfig {
	return PLLConfig{
		DivR:   v.GetDIVR(),
		DivF:   v.GetDIVF(),
		DivQ:   v.GetDIVQ(),
		Range:  v.GetRANGE(),
		Bypass: v.GetBYPASS(),
		FSE:    v.GetFSE(),
	}
}

// Encode packs c into a PLLCFG0 word. Out of range fields are truncated to
// their width.
func (c PLLConfig) Encode() prci.PLLCFG0 {
	return prci.PLLCFG0(0).
		WithDIVR(c.DivR).
		WithDIVF(c.DivF).
		WithDIVQ(c.DivQ).
		WithRANGE(c.Range).
		WithBYPASS(c.Bypass).
		WithFSE(c.FSE)
}

// Frequency returns the output rate in Hz for a reference of ref Hz:
// ref / (DIVR+1) * 2(DIVF+1) / 2^DIVQ.
func (c PLLConfig) Frequency(ref uint64) uint64 {
	if c.Bypass {
		return ref
	}
	return ref * 2 * (uint64(c.DivF) + 1) / (uint64(c.DivR) + 1) >> c.DivQ
}

// Preset names one of the fixed PLL settings.
type Preset struct {
	Name   string
	Config prci.PLLCFG0
}

// Presets lists the PLL settings in the order they are brought up.
var Presets = []Preset{
	{"core", CorePLL},
	{"ddr", DDRPLL},
	{"gemgxl", GEMGXLPLL},
}
