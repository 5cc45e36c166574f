// internal/config/config.go

// Package config loads the optional YAML tuning profile. Profile values fill
// in flags the user did not set explicitly; built-in defaults fill the rest.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"guniq-core/filter"
	"guniq/internal/cli"
)

// Bloom mirrors filter.Config in YAML form.
type Bloom struct {
	Capacity        uint    `yaml:"capacity"`
	Rate            float64 `yaml:"rate"`
	GrowthFactor    uint    `yaml:"growth_factor"`
	TighteningRatio float64 `yaml:"tightening_ratio"`
}

// Profile is the schema of a guniq tuning profile file.
type Profile struct {
	Filter string `yaml:"filter"`
	Invert bool   `yaml:"invert"`
	Bloom  Bloom  `yaml:"bloom"`
}

// Load reads and validates a profile file.
func Load(path string) (Profile, error) {
	var p Profile
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	if p.Filter != "" {
		if _, err := filter.ParseKind(p.Filter); err != nil {
			return p, fmt.Errorf("%s: %w", path, err)
		}
	}
	if p.Bloom.Rate < 0 || p.Bloom.Rate >= 1 {
		return p, fmt.Errorf("%s: bloom rate must be in (0, 1)", path)
	}
	if p.Bloom.TighteningRatio < 0 || p.Bloom.TighteningRatio >= 1 {
		return p, fmt.Errorf("%s: bloom tightening_ratio must be in (0, 1)", path)
	}
	if p.Bloom.GrowthFactor == 1 {
		return p, fmt.Errorf("%s: bloom growth_factor must be >= 2", path)
	}
	return p, nil
}

// Merge fills Options fields the user did not set on the command line.
// Flags beat the profile; the profile beats built-in defaults.
func Merge(o *cli.Options, p Profile) {
	if p.Filter != "" && !o.Explicit["filter"] && !o.Explicit["f"] {
		o.Filter = p.Filter
	}
	if p.Invert && !o.Explicit["invert"] && !o.Explicit["i"] {
		o.Invert = true
	}
	if p.Bloom.Capacity != 0 && !o.Explicit["bloom-capacity"] {
		o.BloomCapacity = p.Bloom.Capacity
	}
	if p.Bloom.Rate != 0 && !o.Explicit["bloom-rate"] {
		o.BloomRate = p.Bloom.Rate
	}
	if p.Bloom.GrowthFactor != 0 && !o.Explicit["bloom-growth"] {
		o.BloomGrowth = p.Bloom.GrowthFactor
	}
	if p.Bloom.TighteningRatio != 0 {
		o.BloomTightening = p.Bloom.TighteningRatio
	}
}
