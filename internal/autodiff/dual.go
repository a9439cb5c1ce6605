package autodiff

import "math"

// Dual is a forward-mode dual number a + b*eps with eps^2 = 0.
// Arithmetic on Dual values propagates exact first derivatives
// alongside the primal value.
type Dual struct {
	Val float64
	Dot float64
}

// Var seeds a differentiation variable: derivative 1 with respect to itself.
func Var(x float64) Dual {
	return Dual{Val: x, Dot: 1}
}

// Const lifts a constant into the dual plane with zero derivative.
func Const(c float64) Dual {
	return Dual{Val: c}
}

func (d Dual) Add(other Dual) Dual {
	return Dual{Val: d.Val + other.Val, Dot: d.Dot + other.Dot}
}

func (d Dual) Sub(other Dual) Dual {
	return Dual{Val: d.Val - other.Val, Dot: d.Dot - other.Dot}
}

func (d Dual) Mul(other Dual) Dual {
	return Dual{
		Val: d.Val * other.Val,
		Dot: d.Dot*other.Val + d.Val*other.Dot,
	}
}

func (d Dual) Div(other Dual) Dual {
	inv := 1.0 / other.Val
	return Dual{
		Val: d.Val * inv,
		Dot: (d.Dot*other.Val - d.Val*other.Dot) * inv * inv,
	}
}

func (d Dual) Neg() Dual {
	return Dual{Val: -d.Val, Dot: -d.Dot}
}

// Scale multiplies by a plain constant without allocating a Const.
func (d Dual) Scale(c float64) Dual {
	return Dual{Val: d.Val * c, Dot: d.Dot * c}
}

// AddConst shifts the value by a plain constant.
func (d Dual) AddConst(c float64) Dual {
	return Dual{Val: d.Val + c, Dot: d.Dot}
}

func Sqrt(d Dual) Dual {
	s := math.Sqrt(d.Val)
	return Dual{Val: s, Dot: d.Dot / (2 * s)}
}

func Exp(d Dual) Dual {
	e := math.Exp(d.Val)
	return Dual{Val: e, Dot: d.Dot * e}
}

func Log(d Dual) Dual {
	return Dual{Val: math.Log(d.Val), Dot: d.Dot / d.Val}
}

func Sin(d Dual) Dual {
	return Dual{Val: math.Sin(d.Val), Dot: d.Dot * math.Cos(d.Val)}
}

func Cos(d Dual) Dual {
	return Dual{Val: math.Cos(d.Val), Dot: -d.Dot * math.Sin(d.Val)}
}

func Abs(d Dual) Dual {
	if d.Val < 0 {
		return d.Neg()
	}
	return d
}

// Pow raises d to a real power p. For d.Val <= 0 the derivative term
// follows math.Pow semantics and may be NaN.
func Pow(d Dual, p float64) Dual {
	v := math.Pow(d.Val, p)
	return Dual{Val: v, Dot: d.Dot * p * math.Pow(d.Val, p-1)}
}

// PowInt raises d to a non-negative integer power by repeated squaring.
// Exact and considerably cheaper than Pow for the r^6 and r^12 terms
// of typical pair potentials.
func PowInt(d Dual, n int) Dual {
	result := Const(1)
	base := d
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Derivative evaluates f at x and returns both the value and df/dx.
func Derivative(f func(Dual) Dual, x float64) (val, deriv float64) {
	r := f(Var(x))
	return r.Val, r.Dot
}
