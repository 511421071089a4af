package dispersion

// stixParams holds the cold-plasma dielectric parameters at one wave
// frequency.
type stixParams struct {
	S, P, D float64
}

func (p stixParams) R() float64 { return p.S + p.D }
func (p stixParams) L() float64 { return p.S - p.D }

// buildParams accumulates S, P and D over all species at angular
// frequency w. wps and wcs are the per-species plasma and (unsigned)
// cyclotron frequencies. Summation order does not matter beyond
// floating-point noise; NaN inputs propagate.
func buildParams(wps, wcs []float64, w float64) stixParams {
	p := stixParams{S: 1, P: 1, D: 0}
	for i := range wps {
		wp2 := wps[i] * wps[i]
		denom := w*w + wcs[i]*wcs[i]
		p.S -= wp2 / denom
		p.P -= (wps[i] / w) * (wps[i] / w)
		p.D += wp2 / denom * (wcs[i] / w)
	}
	return p
}

// coefficients returns the biquadratic coefficients (A, B, C) for
// propagation at angle theta:
//
//	A = S sin^2 + P cos^2
//	B = -(R L sin^2 + P S (1 + cos^2))
//	C = P R L
func (p stixParams) coefficients(sin2, cos2 float64) (a, b, c float64) {
	rl := p.R() * p.L()
	a = p.S*sin2 + p.P*cos2
	b = -(rl*sin2 + p.P*p.S*(1+cos2))
	c = p.P * rl
	return a, b, c
}
