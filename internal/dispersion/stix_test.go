package dispersion

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coldwave/internal/plasma"
)

// relativeResidual substitutes a root back into the biquadratic in the
// refractive index and normalizes by the term magnitudes.
func relativeResidual(sol Solution, in Input, densities []float64) float64 {
	species := append(append([]plasma.Species{}, in.Ions...), plasma.Electron())

	wps := make([]float64, len(species))
	wcs := make([]float64, len(species))
	for i, sp := range species {
		wps[i] = plasma.PlasmaFrequency(densities[i], sp)
		wcs[i] = plasma.Gyrofrequency(in.B, sp, false)
	}

	p := buildParams(wps, wcs, sol.Omega)
	sin, cos := math.Sin(sol.Theta), math.Cos(sol.Theta)
	a, b, c := p.coefficients(sin*sin, cos*cos)

	worst := 0.0
	for _, k := range sol.K {
		x := k * complex(plasma.SpeedOfLight/sol.Omega, 0)
		res := complex(a, 0)*x*x*x*x + complex(b, 0)*x*x + complex(c, 0)
		scale := cmplx.Abs(complex(a, 0)*x*x*x*x) + cmplx.Abs(complex(b, 0)*x*x) + math.Abs(c)
		if scale == 0 {
			continue
		}
		if r := cmplx.Abs(res) / scale; r > worst {
			worst = r
		}
	}
	return worst
}

var _ = Describe("Stix solver", func() {
	var in Input

	BeforeEach(func() {
		in = Input{
			B:         8.3e-9,
			Omegas:    []float64{1e-3},
			Ions:      []plasma.Species{plasma.MustLookup("H+"), plasma.MustLookup("He+")},
			Densities: []float64{4e5, 2e5},
			Thetas:    []float64{30 * math.Pi / 180},
		}
	})

	It("solves the reference scenario with four sorted roots", func() {
		res, err := Solve(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Solutions).To(HaveLen(1))

		sol := res.At(0, 0)
		Expect(sol.Theta).To(BeNumerically("~", 0.5236, 1e-4))
		for i := 1; i < 4; i++ {
			prev, cur := sol.K[i-1], sol.K[i]
			less := real(prev) < real(cur) ||
				(real(prev) == real(cur) && imag(prev) <= imag(cur))
			Expect(less).To(BeTrue(), "roots out of order at %d", i)
		}

		quasineutral := []float64{4e5, 2e5, 6e5}
		Expect(relativeResidual(sol, in, quasineutral)).To(BeNumerically("<", 1e-8))
	})

	It("returns one entry per supplied angle, duplicates included", func() {
		in.Thetas = []float64{0.1, 0.5, 0.5, 1.2}
		in.Omegas = []float64{1e-3, 2e-3}
		res, err := Solve(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Solutions).To(HaveLen(8))
		Expect(res.At(1, 2).Theta).To(Equal(0.5))
		Expect(res.At(1, 2).Omega).To(Equal(2e-3))
	})

	It("is symmetric under angle negation", func() {
		in.Thetas = []float64{0.7, -0.7}
		res, err := Solve(in)
		Expect(err).NotTo(HaveOccurred())
		pos, neg := res.At(0, 0), res.At(0, 1)
		for i := range pos.K {
			Expect(cmplx.Abs(pos.K[i] - neg.K[i])).To(BeNumerically("<", 1e-12*cmplx.Abs(pos.K[i])+1e-300))
		}
	})

	It("approaches vacuum roots +-w/c at high frequency", func() {
		in.Omegas = []float64{1e12}
		in.Thetas = []float64{0.4}
		res, err := Solve(in)
		Expect(err).NotTo(HaveOccurred())

		k0 := 1e12 / plasma.SpeedOfLight
		sol := res.At(0, 0)
		Expect(real(sol.K[0])).To(BeNumerically("~", -k0, 1e-6*k0))
		Expect(real(sol.K[1])).To(BeNumerically("~", -k0, 1e-6*k0))
		Expect(real(sol.K[2])).To(BeNumerically("~", k0, 1e-6*k0))
		Expect(real(sol.K[3])).To(BeNumerically("~", k0, 1e-6*k0))
	})

	It("broadcasts a scalar density to every ion", func() {
		in.Densities = []float64{3e5}
		scalar, err := Solve(in)
		Expect(err).NotTo(HaveOccurred())

		in.Densities = []float64{3e5, 3e5}
		explicit, err := Solve(in)
		Expect(err).NotTo(HaveOccurred())

		for i := range scalar.Solutions {
			Expect(scalar.Solutions[i].K).To(Equal(explicit.Solutions[i].K))
		}
	})

	Describe("validation", func() {
		It("rejects neutral species in the ion list", func() {
			in.Ions = []plasma.Species{plasma.MustLookup("H+"), plasma.MustLookup("He-4")}
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrInvalidSpecies))
		})

		It("rejects electrons and negative ions", func() {
			in.Ions = []plasma.Species{plasma.Electron()}
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrInvalidSpecies))
		})

		It("rejects non-positive frequencies", func() {
			in.Omegas = []float64{1e-3, -2.0}
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrSign))
		})

		It("rejects a density slice of the wrong length", func() {
			in.Densities = []float64{1e5, 2e5, 3e5}
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrShape))
		})

		It("rejects non-positive densities", func() {
			in.Densities = []float64{4e5, -2e5}
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrSign))
		})

		It("rejects a negative field magnitude", func() {
			in.B = -1e-9
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrSign))
		})

		It("rejects empty angle and frequency slices", func() {
			in.Thetas = nil
			_, err := Solve(in)
			Expect(err).To(MatchError(ErrShape))

			in.Thetas = []float64{0.1}
			in.Omegas = nil
			_, err = Solve(in)
			Expect(err).To(MatchError(ErrShape))
		})
	})
})
