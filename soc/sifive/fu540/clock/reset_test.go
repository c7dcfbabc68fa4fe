package clock

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestResetMask(t *testing.T) {
	tests := []struct {
		name     string
		release  []Domain
		expected uint32
	}{
		{"holdAll", nil, 0x00},
		{"controller", []Domain{DDRController}, 0x01},
		{"ddr", []Domain{DDRController, DDRAXI, DDRAHB, DDRPHY}, 0x0F},
		{"all", Domains, 0x2F},
		{"gemgxlOnly", []Domain{GEMGXL}, 0x20},
		{"repeated", []Domain{DDRAXI, DDRAXI}, 0x02},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mask := ResetMask(test.release...)
			if uint32(mask) != test.expected {
				t.Errorf("expected %#02x, got %#02x", test.expected, uint32(mask))
			}
		})
	}
}

func TestReleased(t *testing.T) {
	if got := Released(ResetMask()); len(got) != 0 {
		t.Errorf("expected nothing released, got %v", got)
	}
	if got := Released(0x2F); !slices.Equal(got, Domains) {
		t.Errorf("expected %v, got %v", Domains, got)
	}
	if got := Released(0x21); !slices.Equal(got, []Domain{DDRController, GEMGXL}) {
		t.Errorf("expected [ddrctrl gemgxl], got %v", got)
	}
}

func TestDomainString(t *testing.T) {
	names := []string{"ddrctrl", "ddraxi", "ddrahb", "ddrphy", "gemgxl"}
	for i, d := range Domains {
		if d.String() != names[i] {
			t.Errorf("expected %s, got %s", names[i], d)
		}
	}
}
