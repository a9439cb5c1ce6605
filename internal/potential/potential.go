package potential

import "github.com/san-kum/mdlab/internal/autodiff"

// Potential is a scalar pair potential V(r) of inter-particle distance.
// Deriv returns dV/dr; the force magnitude along the pair axis is -Deriv.
type Potential interface {
	Name() string
	Value(r float64) float64
	Deriv(r float64) float64
}

// MassCoupled is implemented by potentials whose pair term scales with
// the product of the two particle masses (gravity).
type MassCoupled interface {
	MassCoupled() bool
}

// Func is a scalar potential expressed in dual arithmetic. Writing the
// formula once against [autodiff.Dual] yields both the value and the
// exact derivative, so force laws never drift out of sync with their
// energy expressions.
type Func func(autodiff.Dual) autodiff.Dual

type funcPotential struct {
	name string
	f    Func
}

// FromFunc builds a Potential from a single dual-number formula.
func FromFunc(name string, f Func) Potential {
	return &funcPotential{name: name, f: f}
}

func (p *funcPotential) Name() string { return p.name }

func (p *funcPotential) Value(r float64) float64 {
	return p.f(autodiff.Const(r)).Val
}

func (p *funcPotential) Deriv(r float64) float64 {
	_, d := autodiff.Derivative(p.f, r)
	return d
}

type shifted struct {
	Potential
	cutoff float64
	offset float64
}

// Shifted truncates p at the cutoff radius and shifts it so the value
// is continuous (zero) at the cutoff. The derivative retains a small
// discontinuity at rc, which is the standard truncate-and-shift
// trade-off.
func Shifted(p Potential, cutoff float64) Potential {
	return &shifted{
		Potential: p,
		cutoff:    cutoff,
		offset:    p.Value(cutoff),
	}
}

func (s *shifted) Name() string { return s.Potential.Name() + "-shifted" }

func (s *shifted) Value(r float64) float64 {
	if r >= s.cutoff {
		return 0
	}
	return s.Potential.Value(r) - s.offset
}

func (s *shifted) Deriv(r float64) float64 {
	if r >= s.cutoff {
		return 0
	}
	return s.Potential.Deriv(r)
}
