package config

import (
	"fmt"
	"sort"
)

// presets are ready-made run descriptions for the CLI.
var presets = map[string]func() *Config{
	"standing-wave": Default,
	"plucked-string": func() *Config {
		c := Default()
		c.Initial = ProfileSpec{Name: ProfilePluck, Amplitude: 0.5, Center: 3.14, Width: 1.5}
		c.Velocity = ProfileSpec{Name: ProfileZero}
		return c
	},
	"driven-end": func() *Config {
		c := Default()
		c.Initial = ProfileSpec{Name: ProfileZero}
		c.Velocity = ProfileSpec{Name: ProfileZero}
		c.Left = ProfileSpec{Name: ProfileSine, Amplitude: 0.3, Frequency: 4}
		return c
	},
	"heat-pulse": func() *Config {
		c := Default()
		c.Equation = EquationDiffusion
		c.Time = GridSpec{Start: 0, End: 0.5, Points: 100}
		c.Space = GridSpec{Start: 0, End: 3.14, Points: 60}
		c.Initial = ProfileSpec{Name: ProfileGauss, Amplitude: 1, Center: 1.57, Width: 0.4}
		return c
	},
	"cooling-rod": func() *Config {
		c := Default()
		c.Equation = EquationDiffusion
		c.Time = GridSpec{Start: 0, End: 1, Points: 150}
		c.Space = GridSpec{Start: 0, End: 3.14, Points: 60}
		c.Initial = ProfileSpec{Name: ProfileSine, Amplitude: 1}
		return c
	},
}

// Preset returns a fresh copy of a named preset.
func Preset(name string) (*Config, error) {
	f, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have: %v)", name, PresetNames())
	}
	return f(), nil
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
