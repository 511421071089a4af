package dispersion

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestSolveBiquadraticRealRoots(t *testing.T) {
	// x^4 - 5x^2 + 4 = (x^2-1)(x^2-4), roots -2, -1, 1, 2.
	roots := solveBiquadratic(1, -5, 4)
	want := [4]complex128{-2, -1, 1, 2}
	for i := range roots {
		if cmplx.Abs(roots[i]-want[i]) > 1e-12 {
			t.Errorf("root[%d] = %v, want %v", i, roots[i], want[i])
		}
	}
}

func TestSolveBiquadraticComplexRoots(t *testing.T) {
	// x^4 + 2x^2 + 1 = (x^2+1)^2, double roots at +-i.
	roots := solveBiquadratic(1, 2, 1)
	for i, want := range [4]complex128{complex(0, -1), complex(0, -1), complex(0, 1), complex(0, 1)} {
		if cmplx.Abs(roots[i]-want) > 1e-12 {
			t.Errorf("root[%d] = %v, want %v", i, roots[i], want)
		}
	}
}

func TestSolveBiquadraticResidual(t *testing.T) {
	cases := []struct{ a, b, c complex128 }{
		{1, -5, 4},
		{2.5, 0.3, -1.7},
		{complex(1, 0.5), complex(-3, 1), complex(0.2, -2)},
		{1e-8, 1e4, -3},
	}
	for _, tc := range cases {
		roots := solveBiquadratic(tc.a, tc.b, tc.c)
		for i, x := range roots {
			res := tc.a*x*x*x*x + tc.b*x*x + tc.c
			scale := cmplx.Abs(tc.a*x*x*x*x) + cmplx.Abs(tc.b*x*x) + cmplx.Abs(tc.c)
			if cmplx.Abs(res)/scale > 1e-10 {
				t.Errorf("coeffs %v: root[%d]=%v residual %g", tc, i, x, cmplx.Abs(res)/scale)
			}
		}
	}
}

func TestSolveBiquadraticDegenerate(t *testing.T) {
	// Leading coefficient zero: x^2 - 4, finite roots first, escaping
	// roots reported as infinities.
	roots := solveBiquadratic(0, 1, -4)
	if cmplx.Abs(roots[0]+2) > 1e-12 || cmplx.Abs(roots[1]-2) > 1e-12 {
		t.Errorf("finite roots = %v, %v, want -2, 2", roots[0], roots[1])
	}
	if !math.IsInf(real(roots[2]), 1) || !math.IsInf(real(roots[3]), 1) {
		t.Errorf("escaping roots = %v, %v, want +Inf", roots[2], roots[3])
	}

	// Only the constant left: every root escapes.
	roots = solveBiquadratic(0, 0, 3)
	for i, x := range roots {
		if !math.IsInf(real(x), 1) {
			t.Errorf("root[%d] = %v, want +Inf", i, x)
		}
	}

	// Identically zero polynomial.
	roots = solveBiquadratic(0, 0, 0)
	for i, x := range roots {
		if x != 0 {
			t.Errorf("root[%d] = %v, want 0", i, x)
		}
	}
}

func TestSortRootsDeterministic(t *testing.T) {
	roots := []complex128{complex(1, 2), complex(-1, 0), complex(1, -2), complex(0, 0)}
	sortRoots(roots)
	want := []complex128{complex(-1, 0), complex(0, 0), complex(1, -2), complex(1, 2)}
	for i := range roots {
		if roots[i] != want[i] {
			t.Errorf("sorted[%d] = %v, want %v", i, roots[i], want[i])
		}
	}
}
