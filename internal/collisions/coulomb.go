package collisions

import (
	"fmt"
	"math"

	"github.com/san-kum/coldwave/internal/plasma"
)

// CoulombLogarithm evaluates ln(Lambda) for a pair of charged species
// at temperature T (K) and density n (m^-3).
//
// The impact-parameter bounds are the Debye length for bmax and, for
// bmin, the larger of the distance of closest approach and the
// de Broglie wavelength of the reduced mass. Supported methods:
//
//	"classical", "ls"              ln(bmax/bmin)
//	"ls_min_interp", "GMS-1"       0.5 ln(1 + bmax^2/bmin^2)
//	"ls_clamp_mininterp", "GMS-3"  max(ln(bmax/bmin), 2)
//
// An empty method selects "classical".
func CoulombLogarithm(T, n float64, pair [2]plasma.Species, method string) (float64, error) {
	if T <= 0 {
		return 0, fmt.Errorf("%w: T = %g K", ErrSign, T)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: n = %g m^-3", ErrSign, n)
	}
	for _, sp := range pair {
		if sp.ChargeNumber == 0 {
			return 0, fmt.Errorf("%w: %q is neutral", ErrInvalidSpecies, sp.Symbol)
		}
	}

	bmax := math.Sqrt(plasma.VacuumPermittivity * plasma.BoltzmannConstant * T /
		(n * plasma.ElementaryCharge * plasma.ElementaryCharge))

	mu := pair[0].Mass * pair[1].Mass / (pair[0].Mass + pair[1].Mass)
	v2 := 3 * plasma.BoltzmannConstant * T / mu
	bPerp := math.Abs(pair[0].Charge()*pair[1].Charge()) /
		(4 * math.Pi * plasma.VacuumPermittivity * mu * v2)
	bDeBroglie := plasma.ReducedPlanck / (2 * mu * math.Sqrt(v2))

	bmin := math.Max(bPerp, bDeBroglie)

	switch method {
	case "", "classical", "ls":
		return math.Log(bmax / bmin), nil
	case "ls_min_interp", "GMS-1":
		return 0.5 * math.Log(1+(bmax/bmin)*(bmax/bmin)), nil
	case "ls_clamp_mininterp", "GMS-3":
		return math.Max(math.Log(bmax/bmin), 2), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMethod, method)
	}
}
