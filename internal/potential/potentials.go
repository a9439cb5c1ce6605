package potential

import (
	ad "github.com/san-kum/mdlab/internal/autodiff"
)

// LennardJones is the 12-6 potential 4eps[(sigma/r)^12 - (sigma/r)^6].
// Minimum -eps at r = 2^(1/6) sigma.
func LennardJones(epsilon, sigma float64) Potential {
	return FromFunc("lennard-jones", func(r ad.Dual) ad.Dual {
		sr := ad.Const(sigma).Div(r)
		sr6 := ad.PowInt(sr, 6)
		sr12 := sr6.Mul(sr6)
		return sr12.Sub(sr6).Scale(4 * epsilon)
	})
}

// Morse is D(1 - exp(-a(r - r0)))^2 - D, zero-referenced at the
// dissociation limit so the well depth at r0 is -D.
func Morse(depth, alpha, r0 float64) Potential {
	return FromFunc("morse", func(r ad.Dual) ad.Dual {
		e := ad.Exp(r.AddConst(-r0).Scale(-alpha))
		w := ad.Const(1).Sub(e)
		return w.Mul(w).Scale(depth).AddConst(-depth)
	})
}

// Harmonic is the spring potential k/2 (r - r0)^2.
func Harmonic(k, r0 float64) Potential {
	return FromFunc("harmonic", func(r ad.Dual) ad.Dual {
		d := r.AddConst(-r0)
		return d.Mul(d).Scale(0.5 * k)
	})
}

// SoftSphere is the purely repulsive eps (sigma/r)^12 core.
func SoftSphere(epsilon, sigma float64) Potential {
	return FromFunc("soft-sphere", func(r ad.Dual) ad.Dual {
		sr := ad.Const(sigma).Div(r)
		return ad.PowInt(sr, 12).Scale(epsilon)
	})
}

type gravity struct {
	Potential
}

func (gravity) MassCoupled() bool { return true }

// Gravity is the Newtonian pair potential -G/r for unit masses; the
// particle system multiplies the pair term by m_i*m_j.
func Gravity(g float64) Potential {
	return gravity{FromFunc("gravity", func(r ad.Dual) ad.Dual {
		return ad.Const(-g).Div(r)
	})}
}
