package config

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/pde"
)

// Built-in profile names for initial and boundary conditions.
const (
	ProfileZero  = "zero"
	ProfileConst = "const"
	ProfileSine  = "sine"
	ProfileGauss = "gauss"
	ProfilePluck = "pluck"
)

// ProfileSpec names a built-in condition function and its parameters. An
// empty Name means zero.
type ProfileSpec struct {
	Name      string  `yaml:"name" toml:"name"`
	Amplitude float64 `yaml:"amplitude" toml:"amplitude"`
	Center    float64 `yaml:"center" toml:"center"`
	Width     float64 `yaml:"width" toml:"width"`
	Frequency float64 `yaml:"frequency" toml:"frequency"`
	Value     float64 `yaml:"value" toml:"value"`
}

// Func resolves the spec into a condition function.
func (p ProfileSpec) Func() (pde.Func, error) {
	amp := p.Amplitude
	if amp == 0 {
		amp = 1
	}
	freq := p.Frequency
	if freq == 0 {
		freq = 1
	}

	switch p.Name {
	case ProfileZero, "":
		return func(float64) float64 { return 0 }, nil
	case ProfileConst:
		v := p.Value
		return func(float64) float64 { return v }, nil
	case ProfileSine:
		return func(x float64) float64 { return amp * math.Sin(freq*x) }, nil
	case ProfileGauss:
		w := p.Width
		if w <= 0 {
			w = 1
		}
		c := p.Center
		return func(x float64) float64 {
			d := (x - c) / w
			return amp * math.Exp(-d*d)
		}, nil
	case ProfilePluck:
		w := p.Width
		if w <= 0 {
			w = 1
		}
		c := p.Center
		return func(x float64) float64 {
			v := 1 - math.Abs(x-c)/w
			if v < 0 {
				return 0
			}
			return amp * v
		}, nil
	default:
		return nil, fmt.Errorf("unknown profile %q", p.Name)
	}
}
