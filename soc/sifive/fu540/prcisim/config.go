package prcisim

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Never is a lock latency for a PLL that never reports lock.
const Never = -1

// DefaultMaxSteps bounds a run when the scenario does not.
const DefaultMaxSteps = 100_000

// Latency is the number of reads of each PLL configuration register that
// still report the PLL unlocked after it is reprogrammed.
type Latency struct {
	Core   int `yaml:"core"`
	DDR    int `yaml:"ddr"`
	GEMGXL int `yaml:"gemgxl"`
}

func (l Latency) For(pll PLL) int {
	switch pll {
	case CorePLL:
		return l.Core
	case DDRPLL:
		return l.DDR
	default:
		return l.GEMGXL
	}
}

// Config describes one simulated board.
type Config struct {
	Emulated  bool     `yaml:"emulated"`
	LockAfter Latency  `yaml:"lock_after"`
	MaxSteps  int      `yaml:"max_steps"`
	Consumers []string `yaml:"consumers"`
}

func (c Config) Validate() error {
	for _, pll := range PLLs {
		if n := c.LockAfter.For(pll); n < Never {
			return fmt.Errorf("%s lock latency %d: %w", pll, n, ErrBadConfig)
		}
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps %d: %w", c.MaxSteps, ErrBadConfig)
	}
	return nil
}

// LoadConfig decodes a YAML scenario. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var config Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
