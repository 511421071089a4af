package collisions

import (
	"fmt"
	"math"

	"github.com/san-kum/coldwave/internal/plasma"
)

// Variant selects one of the published collision-frequency
// parameterizations.
type Variant int

const (
	Hellinger2009 Variant = iota
	Hellinger2010
	Hellinger2016
)

func (v Variant) String() string {
	switch v {
	case Hellinger2009:
		return "hellinger-2009"
	case Hellinger2010:
		return "hellinger-2010"
	case Hellinger2016:
		return "hellinger-2016"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps the publication year to its Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "2009":
		return Hellinger2009, nil
	case "2010":
		return Hellinger2010, nil
	case "2016":
		return Hellinger2016, nil
	}
	return 0, fmt.Errorf("%w: %q (supported: 2009, 2010, 2016)", ErrVariant, s)
}

// Params collects the superset of inputs the three variants draw from.
// Slices are validated for pair length at the dispatch boundary.
type Params struct {
	T          float64   // isotropic temperature, K (2009)
	TPar       float64   // parallel temperature, K (2010)
	TPerp      float64   // perpendicular temperature, K (2010)
	TPars      []float64 // per-species parallel temperatures, K (2016)
	TPerps     []float64 // per-species perpendicular temperatures, K (2016)
	N          float64   // density of the species of interest, m^-3
	Species    []plasma.Species
	ParSpeeds  []float64 // parallel thermal speeds, m/s
	PerpSpeeds []float64 // perpendicular thermal speeds, m/s (2016)
	Method     string    // Coulomb logarithm method
}

// Frequency dispatches to the requested variant and returns the
// collision frequency of the first species on the second, in 1/s.
func Frequency(v Variant, p Params) (float64, error) {
	ions, err := validateIonPair(p.Species)
	if err != nil {
		return 0, err
	}
	par, err := validateSpeeds("par_speeds", p.ParSpeeds)
	if err != nil {
		return 0, err
	}

	switch v {
	case Hellinger2009:
		return Frequency2009(p.T, p.N, ions, par, p.Method)
	case Hellinger2010:
		return Frequency2010(p.TPar, p.TPerp, p.N, ions, par, p.Method)
	case Hellinger2016:
		tpar, err := validateTemperaturePair("t_par", p.TPars)
		if err != nil {
			return 0, err
		}
		tperp, err := validateTemperaturePair("t_perp", p.TPerps)
		if err != nil {
			return 0, err
		}
		perp, err := validateSpeeds("perp_speeds", p.PerpSpeeds)
		if err != nil {
			return 0, err
		}
		return Frequency2016(tpar, tperp, p.N, ions, par, perp, p.Method)
	}
	return 0, fmt.Errorf("%w: %d", ErrVariant, int(v))
}

// Timescale returns the relaxation time 1/nu for the variant, in s.
func Timescale(v Variant, p Params) (float64, error) {
	nu, err := Frequency(v, p)
	if err != nil {
		return 0, err
	}
	return 1 / nu, nil
}

// Frequency2009 is the isotropic collision frequency of Hellinger &
// Travnicek (2009):
//
//	nu = q1^2 q2^2 n ln(Lambda) / (12 pi^1.5 eps0^2 m1 m2 vpar^3)
//
// with vpar the rms of the two parallel thermal speeds.
func Frequency2009(t, n float64, ions [2]plasma.Species, parSpeeds [2]float64, method string) (float64, error) {
	if err := validateTemperature("T", t); err != nil {
		return 0, err
	}
	if err := validateDensity(n); err != nil {
		return 0, err
	}

	lnLambda, err := CoulombLogarithm(t, n, ions, method)
	if err != nil {
		return 0, err
	}

	vpar := math.Sqrt((parSpeeds[0]*parSpeeds[0] + parSpeeds[1]*parSpeeds[1]) / 2)

	q1, q2 := ions[0].Charge(), ions[1].Charge()
	num := q1 * q1 * q2 * q2 * n
	den := 12 * math.Pow(math.Pi, 1.5) *
		plasma.VacuumPermittivity * plasma.VacuumPermittivity *
		ions[0].Mass * ions[1].Mass * vpar * vpar * vpar

	return num / den * lnLambda, nil
}

// Frequency2010 extends the 2009 formula to bi-Maxwellian species with
// a shared anisotropy, applying the Gauss hypergeometric correction
//
//	nu = nu2009(T=(2 Tperp + Tpar)/3) * 3/5 * 2F1(2, 3/2; 7/2; 1 - Tperp/Tpar)
func Frequency2010(tPar, tPerp, n float64, ions [2]plasma.Species, parSpeeds [2]float64, method string) (float64, error) {
	if err := validateTemperature("T_par", tPar); err != nil {
		return 0, err
	}
	if err := validateTemperature("T_perp", tPerp); err != nil {
		return 0, err
	}

	t := (2*tPerp + tPar) / 3
	nu, err := Frequency2009(t, n, ions, parSpeeds, method)
	if err != nil {
		return 0, err
	}

	return nu * 3 / 5 * hyp2F1(2, 1.5, 3.5, 1-tPerp/tPar), nil
}

// Frequency2016 is the per-species anisotropic form of Hellinger
// (2016). The drift-speed correction follows the structure of the
// published formula but its exact normalization is provisional; see
// DESIGN.md before relying on absolute values away from isotropy.
func Frequency2016(tPar, tPerp [2]float64, n float64, ions [2]plasma.Species, parSpeeds, perpSpeeds [2]float64, method string) (float64, error) {
	// Effective isotropic temperature averaged over the pair.
	t := (2*(tPerp[0]+tPerp[1])/2 + (tPar[0]+tPar[1])/2) / 3

	nu, err := Frequency2009(t, n, ions, parSpeeds, method)
	if err != nil {
		return 0, err
	}

	// Mutual anisotropy weighted by the partner masses.
	ast := (ions[0].Mass*tPerp[1] + ions[1].Mass*tPerp[0]) /
		(ions[0].Mass*tPar[1] + ions[1].Mass*tPar[0])

	// RMS thermal speeds and their difference.
	vs := math.Sqrt((parSpeeds[0]*parSpeeds[0] + 2*perpSpeeds[0]*perpSpeeds[0]) / 3)
	vt := math.Sqrt((parSpeeds[1]*parSpeeds[1] + 2*perpSpeeds[1]*perpSpeeds[1]) / 3)
	vst := vs - vt

	vstPar2 := (parSpeeds[0]*parSpeeds[0] + parSpeeds[1]*parSpeeds[1]) / 2

	return nu * hyp2D(1, 1.5, 2.5, 1-ast, ast*vst*vst/(4*vstPar2)), nil
}
