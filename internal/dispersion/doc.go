// Package dispersion solves the Stix cold-plasma dispersion relation
// numerically.
//
// For each wave frequency w and propagation angle theta the relation is
// a biquadratic in the refractive index x = c k / w:
//
//	(S sin^2 + P cos^2) x^4 - [R L sin^2 + P S (1 + cos^2)] x^2 + P R L = 0
//
// where S, P, D (and R = S+D, L = S-D) are the cold-plasma dielectric
// parameters accumulated over all species, including an electron
// population synthesized from quasineutrality. [Solve] evaluates the
// full frequency x angle grid and returns, per pair, the four complex
// wavenumber roots sorted by real then imaginary part.
//
// The computation is a pure function of its input: no I/O, no shared
// state, and the closed-form root solve cannot fail to converge.
// Degenerate inputs (w at a resonance) surface as non-finite roots in
// the result rather than as errors.
package dispersion
