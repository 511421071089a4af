package config

// Presets are ready-made plasma scenarios, keyed by name.
var Presets = map[string]*Config{
	"reference": {
		BField:  8.3e-9,
		Omega:   []float64{1e-3},
		Ions:    []string{"H+", "He+"},
		Density: []float64{4e5, 2e5},
		Sweep:   SweepConfig{StartDeg: 0, StopDeg: 90, Steps: 91},
	},
	"solar_wind": {
		BField:  5e-9,
		Omega:   []float64{0.1, 1.0, 10.0},
		Ions:    []string{"p", "alpha"},
		Density: []float64{7e6, 3e5},
		Sweep:   SweepConfig{StartDeg: 0, StopDeg: 90, Steps: 46},
	},
	"magnetosheath": {
		BField:  2e-8,
		Omega:   []float64{0.5, 5.0},
		Ions:    []string{"p"},
		Density: []float64{2e7},
		Sweep:   SweepConfig{StartDeg: 0, StopDeg: 90, Steps: 46},
	},
	"ionosphere": {
		BField:  5e-5,
		Omega:   []float64{1e3},
		Ions:    []string{"O 1+"},
		Density: []float64{1e11},
		Sweep:   SweepConfig{StartDeg: 0, StopDeg: 90, Steps: 91},
	},
	"tokamak_edge": {
		BField:  2.0,
		Omega:   []float64{1e8},
		Ions:    []string{"D+"},
		Density: []float64{1e19},
		Sweep:   SweepConfig{StartDeg: 0, StopDeg: 90, Steps: 91},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
