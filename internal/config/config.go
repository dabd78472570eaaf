// Package config describes solver runs: which equation, on which grids,
// with which initial and boundary profiles. Configs load from YAML or TOML
// files, with named presets for common setups.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/numlab/internal/grid"
)

const (
	EquationWave      = "wave"
	EquationDiffusion = "diffusion"
)

const (
	DefaultTimePoints  = 200
	DefaultSpacePoints = 120
	DefaultSigma       = 1.0
)

// GridSpec describes a uniform 1D grid. Step takes precedence over Points
// when both are set.
type GridSpec struct {
	Start  float64 `yaml:"start" toml:"start"`
	End    float64 `yaml:"end" toml:"end"`
	Points int     `yaml:"points" toml:"points"`
	Step   float64 `yaml:"step" toml:"step"`
}

// Build materializes the grid.
func (g GridSpec) Build() ([]float64, error) {
	if g.End <= g.Start {
		return nil, fmt.Errorf("%w: end %g not above start %g", grid.ErrInvalidGrid, g.End, g.Start)
	}
	if g.Step > 0 {
		return grid.Uniform(g.Start, g.End, g.Step)
	}
	if g.Points < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", grid.ErrInvalidGrid, g.Points)
	}
	return grid.Linspace(g.Start, g.End, g.Points), nil
}

// Config is a full run description.
type Config struct {
	Equation string   `yaml:"equation" toml:"equation"`
	Time     GridSpec `yaml:"time" toml:"time"`
	Space    GridSpec `yaml:"space" toml:"space"`
	// Sigma is the diffusion scheme weight; ignored by the wave equation.
	Sigma float64 `yaml:"sigma" toml:"sigma"`

	Initial  ProfileSpec `yaml:"initial" toml:"initial"`   // u(t0, x)
	Velocity ProfileSpec `yaml:"velocity" toml:"velocity"` // du/dt(t0, x), wave only
	Left     ProfileSpec `yaml:"left" toml:"left"`         // u(t, a)
	Right    ProfileSpec `yaml:"right" toml:"right"`       // u(t, b)

	DataDir string `yaml:"data_dir" toml:"data_dir"`
}

// Default returns the documentation example setup: zero displacement, a
// localized initial velocity kick, pinned ends.
func Default() *Config {
	return &Config{
		Equation: EquationWave,
		Time:     GridSpec{Start: 0, End: 4, Points: DefaultTimePoints},
		Space:    GridSpec{Start: 0, End: 6.28, Points: DefaultSpacePoints},
		Sigma:    DefaultSigma,
		Initial:  ProfileSpec{Name: ProfileZero},
		Velocity: ProfileSpec{Name: ProfileGauss, Amplitude: 1, Center: 1, Width: 1},
		Left:     ProfileSpec{Name: ProfileZero},
		Right:    ProfileSpec{Name: ProfileZero},
		DataDir:  ".numlab",
	}
}

// Validate checks the parts Build and the profile registry do not.
func (c *Config) Validate() error {
	switch c.Equation {
	case EquationWave, EquationDiffusion:
	default:
		return fmt.Errorf("unknown equation %q", c.Equation)
	}
	if c.Sigma < 0 || c.Sigma > 1 {
		return fmt.Errorf("sigma must be in [0,1], got %g", c.Sigma)
	}
	for _, p := range []ProfileSpec{c.Initial, c.Velocity, c.Left, c.Right} {
		if _, err := p.Func(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a config from a YAML or TOML file, chosen by extension, on top
// of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
