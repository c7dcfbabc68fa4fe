//go:build !fu540_qemu

package fu540

import (
	"testing"

	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
	"omibyte.io/prci/soc/sifive/fu540/prcisim"
)

func TestBoardNotEmulated(t *testing.T) {
	if (Board{}).Emulated() {
		t.Error("hardware build reports emulation")
	}
}

func TestCorePLLFromCrystal(t *testing.T) {
	if got := clock.Decode(clock.CorePLL).Frequency(HFCLK); got < 999_000_000 || got > 1_000_000_000 {
		t.Errorf("core PLL runs at %d Hz from the board crystal", got)
	}
}

func TestBoardDrivesBringUp(t *testing.T) {
	m := prcisim.New(prcisim.Config{})
	c := clock.New(m.Registers(), m, Board{})
	if m.Run(c.Initialize) {
		t.Fatal("bring-up stalled")
	}
	if got := m.Peek(prci.OffsetDEVICESRESETREG); got != uint32(clock.ResetMask(clock.Domains...)) {
		t.Errorf("expected every block released, got %#02x", got)
	}
}
