package dispersion

import (
	"fmt"
	"math"

	"github.com/san-kum/coldwave/internal/plasma"
)

// Input describes one dispersion problem. Angles are radians; all other
// quantities are SI.
type Input struct {
	B         float64          // magnetic field magnitude, T
	Omegas    []float64        // wave angular frequencies, rad/s, all > 0
	Ions      []plasma.Species // positively charged ion species
	Densities []float64        // per-ion number densities, m^-3; length 1 broadcasts
	Thetas    []float64        // propagation angles, rad
}

// Solution holds the four complex wavenumber roots for one
// (frequency, angle) pair, sorted by real then imaginary part.
type Solution struct {
	Omega float64
	Theta float64
	K     [4]complex128 // m^-1
}

// Finite reports whether all four roots are finite.
func (s Solution) Finite() bool {
	for _, k := range s.K {
		if math.IsNaN(real(k)) || math.IsNaN(imag(k)) ||
			math.IsInf(real(k), 0) || math.IsInf(imag(k), 0) {
			return false
		}
	}
	return true
}

// Result is the solved frequency x angle grid. Solutions are stored
// frequency-major in input order; duplicate angles each keep their own
// entry, so entries are addressed by index rather than by float angle
// value.
type Result struct {
	Omegas    []float64
	Thetas    []float64
	Solutions []Solution
}

// At returns the solution for the i-th frequency and j-th angle.
func (r *Result) At(i, j int) Solution {
	return r.Solutions[i*len(r.Thetas)+j]
}

// Solve validates the input and computes the Stix dispersion roots for
// every (frequency, angle) pair. An electron population is appended to
// the ion list with density set by quasineutrality, sum of n_i * Z_i.
func Solve(in Input) (*Result, error) {
	densities, err := validate(in)
	if err != nil {
		return nil, err
	}

	species := make([]plasma.Species, 0, len(in.Ions)+1)
	species = append(species, in.Ions...)
	species = append(species, plasma.Electron())

	ne := 0.0
	for i, ion := range in.Ions {
		ne += densities[i] * float64(ion.ChargeNumber)
	}
	densities = append(densities, ne)

	wps := make([]float64, len(species))
	wcs := make([]float64, len(species))
	for i, sp := range species {
		wps[i] = plasma.PlasmaFrequency(densities[i], sp)
		wcs[i] = plasma.Gyrofrequency(in.B, sp, false)
	}

	res := &Result{
		Omegas:    in.Omegas,
		Thetas:    in.Thetas,
		Solutions: make([]Solution, 0, len(in.Omegas)*len(in.Thetas)),
	}

	for _, w := range in.Omegas {
		p := buildParams(wps, wcs, w)
		for _, theta := range in.Thetas {
			sin, cos := math.Sin(theta), math.Cos(theta)
			a, b, c := p.coefficients(sin*sin, cos*cos)

			// Roots in the refractive index x = c k / w, converted
			// back to wavenumber. Positive real scaling preserves
			// the sort order.
			roots := solveBiquadratic(complex(a, 0), complex(b, 0), complex(c, 0))
			scale := complex(w/plasma.SpeedOfLight, 0)
			for i := range roots {
				roots[i] *= scale
			}

			res.Solutions = append(res.Solutions, Solution{Omega: w, Theta: theta, K: roots})
		}
	}

	return res, nil
}

// validate checks the input contract and returns the per-ion density
// slice with a scalar density broadcast to every ion.
func validate(in Input) ([]float64, error) {
	if in.B < 0 {
		return nil, fmt.Errorf("%w: B = %g T", ErrSign, in.B)
	}
	if len(in.Omegas) == 0 {
		return nil, fmt.Errorf("%w: no wave frequencies", ErrShape)
	}
	for _, w := range in.Omegas {
		if w <= 0 {
			return nil, fmt.Errorf("%w: omega = %g rad/s", ErrSign, w)
		}
	}
	if len(in.Ions) == 0 {
		return nil, fmt.Errorf("%w: no ion species", ErrShape)
	}
	for _, ion := range in.Ions {
		if !ion.IsIon() || ion.ChargeNumber <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSpecies, ion.Symbol)
		}
	}
	if len(in.Thetas) == 0 {
		return nil, fmt.Errorf("%w: no propagation angles", ErrShape)
	}

	var densities []float64
	switch len(in.Densities) {
	case 1:
		densities = make([]float64, len(in.Ions))
		for i := range densities {
			densities[i] = in.Densities[0]
		}
	case len(in.Ions):
		densities = append([]float64(nil), in.Densities...)
	default:
		return nil, fmt.Errorf("%w: %d densities for %d ions",
			ErrShape, len(in.Densities), len(in.Ions))
	}
	for _, n := range densities {
		if n <= 0 {
			return nil, fmt.Errorf("%w: density = %g m^-3", ErrSign, n)
		}
	}

	return densities, nil
}
