package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var ErrTargetNotFound = errors.New("target not found")

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Name        string    `yaml:"name"`
	SoC         string    `yaml:"soc"`
	Description string    `yaml:"description"`
	HFClk       uint64    `yaml:"hfclk"`
	PRCIBase    uintptr   `yaml:"prciBase"`
	UARTs       []uintptr `yaml:"uarts"`
	Baud        uint32    `yaml:"baud"`
	Tags        []string  `yaml:"tags"`
	Emulated    bool      `yaml:"emulated"`
}

// BuildTags returns the tags the firmware for t is compiled with.
func (t TargetInfo) BuildTags() string {
	return strings.Join(t.Tags, ",")
}

func (t Targets) Names() []string {
	names := make([]string, 0, len(t))
	for _, target := range t {
		names = append(names, target.Name)
	}
	slices.Sort(names)
	return names
}

func (t Targets) FindByName(name string) (TargetInfo, error) {
	i := slices.IndexFunc(t, func(target TargetInfo) bool {
		return target.Name == strings.ToLower(name)
	})
	if i < 0 {
		return TargetInfo{}, fmt.Errorf("%s: %w", name, ErrTargetNotFound)
	}
	return t[i], nil
}

func (t Targets) FindBySoC(soc string) (result Targets) {
	for _, target := range t {
		if target.SoC == strings.ToLower(soc) {
			result = append(result, target)
		}
	}
	return
}

func init() {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.Unmarshal(rawTargets, &t); err != nil {
		panic(err)
	}

	targets = t.Elements
}
