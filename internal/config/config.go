package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/coldwave/internal/dispersion"
	"github.com/san-kum/coldwave/internal/plasma"
)

const (
	DefaultBField = 8.3e-9 // T
	DefaultOmega  = 1e-3   // rad/s
	DefaultSteps  = 91
)

// Config describes one dispersion scenario. Angles are degrees in the
// file and on the CLI; everything else is SI.
type Config struct {
	BField   float64     `yaml:"b_field"`
	Omega    []float64   `yaml:"omega"`
	Ions     []string    `yaml:"ions"`
	Density  []float64   `yaml:"density"`
	ThetaDeg []float64   `yaml:"theta_deg"`
	Sweep    SweepConfig `yaml:"sweep"`
}

// SweepConfig generates an evenly spaced angle range when no explicit
// theta_deg list is given.
type SweepConfig struct {
	StartDeg float64 `yaml:"start_deg"`
	StopDeg  float64 `yaml:"stop_deg"`
	Steps    int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		BField:  DefaultBField,
		Omega:   []float64{DefaultOmega},
		Ions:    []string{"H+", "He+"},
		Density: []float64{4e5, 2e5},
		Sweep:   SweepConfig{StartDeg: 0, StopDeg: 90, Steps: DefaultSteps},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Thetas returns the propagation angles in radians, either the explicit
// theta_deg list or the sweep range.
func (c *Config) Thetas() []float64 {
	if len(c.ThetaDeg) > 0 {
		thetas := make([]float64, len(c.ThetaDeg))
		for i, deg := range c.ThetaDeg {
			thetas[i] = deg * math.Pi / 180
		}
		return thetas
	}

	steps := c.Sweep.Steps
	if steps < 2 {
		steps = 2
	}
	thetas := make([]float64, steps)
	span := c.Sweep.StopDeg - c.Sweep.StartDeg
	for i := range thetas {
		deg := c.Sweep.StartDeg + span*float64(i)/float64(steps-1)
		thetas[i] = deg * math.Pi / 180
	}
	return thetas
}

// Input resolves the scenario into a solver input.
func (c *Config) Input() (dispersion.Input, error) {
	ions := make([]plasma.Species, 0, len(c.Ions))
	for _, symbol := range c.Ions {
		sp, err := plasma.Lookup(symbol)
		if err != nil {
			return dispersion.Input{}, fmt.Errorf("resolving ion %q: %w", symbol, err)
		}
		ions = append(ions, sp)
	}

	return dispersion.Input{
		B:         c.BField,
		Omegas:    c.Omega,
		Ions:      ions,
		Densities: c.Density,
		Thetas:    c.Thetas(),
	}, nil
}
