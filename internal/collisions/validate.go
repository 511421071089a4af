package collisions

import (
	"fmt"

	"github.com/san-kum/coldwave/internal/plasma"
)

// Free validation helpers, shared by the variant entry points. All
// failures are returned immediately; nothing is evaluated on invalid
// input.

func validateTemperature(name string, t float64) error {
	if !(t > 0) {
		return fmt.Errorf("%w: %s = %g K", ErrSign, name, t)
	}
	return nil
}

func validateDensity(n float64) error {
	if !(n > 0) {
		return fmt.Errorf("%w: n = %g m^-3", ErrSign, n)
	}
	return nil
}

// validateIonPair requires exactly two charged ions.
func validateIonPair(ions []plasma.Species) ([2]plasma.Species, error) {
	var pair [2]plasma.Species
	if len(ions) != 2 {
		return pair, fmt.Errorf("%w: got %d species", ErrInvalidSpecies, len(ions))
	}
	for i, sp := range ions {
		if !sp.IsIon() {
			return pair, fmt.Errorf("%w: %q", ErrInvalidSpecies, sp.Symbol)
		}
		pair[i] = sp
	}
	return pair, nil
}

// validateSpeeds requires exactly two positive speeds.
func validateSpeeds(name string, speeds []float64) ([2]float64, error) {
	var pair [2]float64
	if len(speeds) != 2 {
		return pair, fmt.Errorf("%w: %s needs 2 entries, got %d", ErrShape, name, len(speeds))
	}
	for i, v := range speeds {
		if !(v > 0) {
			return pair, fmt.Errorf("%w: %s[%d] = %g m/s", ErrSign, name, i, v)
		}
		pair[i] = v
	}
	return pair, nil
}

func validateTemperaturePair(name string, temps []float64) ([2]float64, error) {
	var pair [2]float64
	if len(temps) != 2 {
		return pair, fmt.Errorf("%w: %s needs 2 entries, got %d", ErrShape, name, len(temps))
	}
	for i, t := range temps {
		if err := validateTemperature(fmt.Sprintf("%s[%d]", name, i), t); err != nil {
			return pair, err
		}
		pair[i] = t
	}
	return pair, nil
}
