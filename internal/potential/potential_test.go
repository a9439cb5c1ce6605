package potential_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mdlab/internal/potential"
)

// centered finite difference for cross-checking autodiff derivatives
func numDeriv(p potential.Potential, r float64) float64 {
	h := 1e-6
	return (p.Value(r+h) - p.Value(r-h)) / (2 * h)
}

var _ = Describe("LennardJones", func() {
	var lj potential.Potential

	BeforeEach(func() {
		lj = potential.LennardJones(1.0, 1.0)
	})

	It("has its minimum at 2^(1/6) sigma", func() {
		rmin := math.Pow(2, 1.0/6.0)
		Expect(lj.Deriv(rmin)).To(BeNumerically("~", 0, 1e-10))
		Expect(lj.Value(rmin)).To(BeNumerically("~", -1.0, 1e-10))
	})

	It("is repulsive inside the well and attractive outside", func() {
		rmin := math.Pow(2, 1.0/6.0)
		Expect(lj.Deriv(rmin * 0.9)).To(BeNumerically("<", 0))
		Expect(lj.Deriv(rmin * 1.5)).To(BeNumerically(">", 0))
	})

	It("vanishes at r = sigma", func() {
		Expect(lj.Value(1.0)).To(BeNumerically("~", 0, 1e-12))
	})

	It("matches a finite-difference derivative", func() {
		for _, r := range []float64{0.9, 1.0, 1.2, 2.0, 3.5} {
			Expect(lj.Deriv(r)).To(BeNumerically("~", numDeriv(lj, r), 1e-4))
		}
	})

	It("scales with epsilon", func() {
		deep := potential.LennardJones(3.0, 1.0)
		rmin := math.Pow(2, 1.0/6.0)
		Expect(deep.Value(rmin)).To(BeNumerically("~", -3.0, 1e-10))
	})
})

var _ = Describe("Morse", func() {
	m := potential.Morse(2.0, 1.5, 1.2)

	It("has well depth -D at the equilibrium distance", func() {
		Expect(m.Value(1.2)).To(BeNumerically("~", -2.0, 1e-12))
		Expect(m.Deriv(1.2)).To(BeNumerically("~", 0, 1e-10))
	})

	It("approaches zero at dissociation", func() {
		Expect(m.Value(50.0)).To(BeNumerically("~", 0, 1e-8))
	})

	It("matches a finite-difference derivative", func() {
		for _, r := range []float64{0.8, 1.2, 2.0, 4.0} {
			Expect(m.Deriv(r)).To(BeNumerically("~", numDeriv(m, r), 1e-5))
		}
	})
})

var _ = Describe("Harmonic", func() {
	h := potential.Harmonic(10.0, 1.0)

	It("is zero with zero force at rest length", func() {
		Expect(h.Value(1.0)).To(BeZero())
		Expect(h.Deriv(1.0)).To(BeZero())
	})

	It("has linear restoring derivative k(r - r0)", func() {
		Expect(h.Deriv(1.3)).To(BeNumerically("~", 3.0, 1e-10))
		Expect(h.Deriv(0.7)).To(BeNumerically("~", -3.0, 1e-10))
	})
})

var _ = Describe("SoftSphere", func() {
	s := potential.SoftSphere(1.0, 1.0)

	It("is everywhere repulsive", func() {
		for _, r := range []float64{0.5, 1.0, 2.0} {
			Expect(s.Deriv(r)).To(BeNumerically("<", 0))
			Expect(s.Value(r)).To(BeNumerically(">", 0))
		}
	})
})

var _ = Describe("Gravity", func() {
	g := potential.Gravity(1.0)

	It("declares mass coupling", func() {
		mc, ok := g.(potential.MassCoupled)
		Expect(ok).To(BeTrue())
		Expect(mc.MassCoupled()).To(BeTrue())
	})

	It("follows the inverse-square force law", func() {
		// dV/dr = G/r^2 for V = -G/r
		Expect(g.Deriv(2.0)).To(BeNumerically("~", 0.25, 1e-12))
	})
})

var _ = Describe("Shifted", func() {
	base := potential.LennardJones(1.0, 1.0)
	sp := potential.Shifted(base, 2.5)

	It("is zero at and beyond the cutoff", func() {
		Expect(sp.Value(2.5)).To(BeZero())
		Expect(sp.Value(3.0)).To(BeZero())
		Expect(sp.Deriv(3.0)).To(BeZero())
	})

	It("is continuous approaching the cutoff", func() {
		Expect(sp.Value(2.5 - 1e-9)).To(BeNumerically("~", 0, 1e-6))
	})

	It("preserves the inner shape up to a constant", func() {
		rmin := math.Pow(2, 1.0/6.0)
		Expect(sp.Deriv(rmin)).To(BeNumerically("~", 0, 1e-10))
		Expect(sp.Value(rmin) - base.Value(rmin)).To(BeNumerically("~", -base.Value(2.5), 1e-12))
	})
})
