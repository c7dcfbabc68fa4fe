package clock

import "omibyte.io/prci/soc/sifive/fu540/prci"

// Domain is a sub-block with its own reset line in DEVICESRESETREG.
type Domain uint8

const (
	DDRController Domain = prci.DEVICESRESETREGDDRCTRLPos
	DDRAXI        Domain = prci.DEVICESRESETREGDDRAXIPos
	DDRAHB        Domain = prci.DEVICESRESETREGDDRAHBPos
	DDRPHY        Domain = prci.DEVICESRESETREGDDRPHYPos
	GEMGXL        Domain = prci.DEVICESRESETREGGEMGXLPos
)

// Domains lists every reset domain in bit order.
var Domains = []Domain{DDRController, DDRAXI, DDRAHB, DDRPHY, GEMGXL}

func (d Domain) String() string {
	switch d {
	case DDRController:
		return "ddrctrl"
	case DDRAXI:
		return "ddraxi"
	case DDRAHB:
		return "ddrahb"
	case DDRPHY:
		return "ddrphy"
	case GEMGXL:
		return "gemgxl"
	default:
		return "unknown"
	}
}

// ResetMask returns the DEVICESRESETREG word that releases the given domains
// and holds every other domain in reset. With no arguments every domain is
// held.
func ResetMask(release ...Domain) prci.DEVICESRESETREG {
	var v prci.DEVICESRESETREG
	for _, d := range release {
		v |= 1 << d
	}
	return v
}

// Released returns the domains that v lets out of reset.
func Released(v prci.DEVICESRESETREG) (released []Domain) {
	for _, d := range Domains {
		if v&(1<<d) != 0 {
			released = append(released, d)
		}
	}
	return
}
