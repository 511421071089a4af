package dispersion

import (
	"math"
	"math/cmplx"
	"sort"
)

// solveBiquadratic returns the four roots of a x^4 + b x^2 + c = 0,
// sorted by real part then imaginary part ascending.
//
// The quartic has only even powers, so it is solved as a quadratic in
// y = x^2 followed by the two square roots of each y. Degenerate
// leading coefficients are deterministic: with a == 0 the polynomial
// drops to b x^2 + c and the two escaping roots are reported as complex
// infinity; with a == b == 0 all four roots are infinite (c != 0) or
// zero (identically zero polynomial).
func solveBiquadratic(a, b, c complex128) [4]complex128 {
	var roots [4]complex128

	switch {
	case a == 0 && b == 0:
		if c == 0 {
			break // all zero
		}
		inf := complex(math.Inf(1), 0)
		roots = [4]complex128{inf, inf, inf, inf}
	case a == 0:
		x := cmplx.Sqrt(-c / b)
		inf := complex(math.Inf(1), 0)
		roots = [4]complex128{x, -x, inf, inf}
	default:
		y1, y2 := solveQuadratic(a, b, c)
		x1 := cmplx.Sqrt(y1)
		x2 := cmplx.Sqrt(y2)
		roots = [4]complex128{x1, -x1, x2, -x2}
	}

	sortRoots(roots[:])
	return roots
}

// solveQuadratic returns the two roots of a y^2 + b y + c = 0 with
// a != 0, using the numerically stable form that avoids cancellation
// between b and the discriminant square root.
func solveQuadratic(a, b, c complex128) (complex128, complex128) {
	sq := cmplx.Sqrt(b*b - 4*a*c)
	// Pick the sign that grows |b + sq|.
	if real(b)*real(sq)+imag(b)*imag(sq) < 0 {
		sq = -sq
	}
	q := -0.5 * (b + sq)
	if q == 0 {
		// b and the discriminant both vanish: double root at -c/a = 0.
		return -c / a, -c / a
	}
	return q / a, c / q
}

// sortRoots orders roots by real part, breaking ties on the imaginary
// part, so results are deterministic across runs.
func sortRoots(roots []complex128) {
	sort.Slice(roots, func(i, j int) bool {
		ri, rj := real(roots[i]), real(roots[j])
		if ri != rj {
			return ri < rj
		}
		return imag(roots[i]) < imag(roots[j])
	})
}
