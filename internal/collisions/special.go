package collisions

import (
	"math"
)

const (
	seriesTol     = 1e-14
	seriesMaxIter = 2000
)

// hyp2F1 evaluates the Gauss hypergeometric function 2F1(a, b; c; z)
// for z < 1, the only range the anisotropy corrections need
// (z = 1 - Tperp/Tpar with positive temperatures). Negative arguments
// are mapped into (0, 1) with the Pfaff transformation
//
//	2F1(a, b; c; z) = (1-z)^(-a) 2F1(a, c-b; c; z/(z-1))
//
// and the remaining cases converge by direct series.
func hyp2F1(a, b, c, z float64) float64 {
	if math.IsNaN(z) || z >= 1 {
		return math.NaN()
	}
	if z < 0 {
		return math.Pow(1-z, -a) * hyp2F1Series(a, c-b, c, z/(z-1))
	}
	return hyp2F1Series(a, b, c, z)
}

func hyp2F1Series(a, b, c, z float64) float64 {
	sum := 1.0
	term := 1.0
	for n := 0; n < seriesMaxIter; n++ {
		term *= (a + float64(n)) * (b + float64(n)) / (c + float64(n)) * z / float64(n+1)
		sum += term
		if math.Abs(term) < seriesTol*math.Abs(sum) {
			break
		}
	}
	return sum
}

// hyp2D evaluates the two-variable hypergeometric series
//
//	sum_{m,n>=0} (a)_{m+n} (b)_m / ((c)_{m+n} m! n!) x^m y^n
//
// which reduces to 2F1(a, b; c; x) at y = 0. It is used only by the
// provisional 2016 drift correction; the series is truncated once the
// row contribution drops below tolerance.
func hyp2D(a, b, c, x, y float64) float64 {
	sum := 0.0
	for m := 0; m < 200; m++ {
		// Row prefactor (a)_m (b)_m / ((c)_m m!) x^m.
		row := pochhammer(a, m) * pochhammer(b, m) / (pochhammer(c, m) * factorial(m)) * math.Pow(x, float64(m))
		if math.IsInf(row, 0) || math.IsNaN(row) {
			return math.NaN()
		}

		// Inner sum over n with the (a+m), (c+m) shifted Pochhammers.
		inner := 1.0
		term := 1.0
		for n := 0; n < seriesMaxIter; n++ {
			term *= (a + float64(m+n)) / (c + float64(m+n)) * y / float64(n+1)
			inner += term
			if math.Abs(term) < seriesTol*math.Abs(inner) {
				break
			}
		}

		contrib := row * inner
		sum += contrib
		if m > 0 && math.Abs(contrib) < seriesTol*math.Abs(sum) {
			break
		}
	}
	return sum
}

func pochhammer(a float64, n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= a + float64(i)
	}
	return p
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
