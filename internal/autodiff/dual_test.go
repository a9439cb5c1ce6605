package autodiff

import (
	"math"
	"testing"
)

func TestDerivative_Polynomial(t *testing.T) {
	// f(x) = 3x^2 + 2x + 1, f'(x) = 6x + 2
	f := func(x Dual) Dual {
		return x.Mul(x).Scale(3).Add(x.Scale(2)).AddConst(1)
	}

	val, deriv := Derivative(f, 2.0)
	if math.Abs(val-17.0) > 1e-12 {
		t.Errorf("f(2) = %v, want 17", val)
	}
	if math.Abs(deriv-14.0) > 1e-12 {
		t.Errorf("f'(2) = %v, want 14", deriv)
	}
}

func TestDerivative_Transcendental(t *testing.T) {
	tests := []struct {
		name  string
		f     func(Dual) Dual
		x     float64
		val   float64
		deriv float64
	}{
		{"sqrt", Sqrt, 4.0, 2.0, 0.25},
		{"exp", Exp, 1.0, math.E, math.E},
		{"log", Log, 2.0, math.Log(2), 0.5},
		{"sin", Sin, math.Pi / 3, math.Sin(math.Pi / 3), 0.5},
		{"cos", Cos, math.Pi / 2, 0.0, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, deriv := Derivative(tt.f, tt.x)
			if math.Abs(val-tt.val) > 1e-12 {
				t.Errorf("value = %v, want %v", val, tt.val)
			}
			if math.Abs(deriv-tt.deriv) > 1e-12 {
				t.Errorf("derivative = %v, want %v", deriv, tt.deriv)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	// f(x) = 1/x, f'(x) = -1/x^2
	f := func(x Dual) Dual {
		return Const(1).Div(x)
	}

	val, deriv := Derivative(f, 2.0)
	if math.Abs(val-0.5) > 1e-12 {
		t.Errorf("1/2 = %v", val)
	}
	if math.Abs(deriv+0.25) > 1e-12 {
		t.Errorf("d(1/x)/dx at 2 = %v, want -0.25", deriv)
	}
}

func TestPowInt_MatchesPow(t *testing.T) {
	for _, n := range []int{0, 1, 2, 6, 12, 13} {
		x := Var(1.3)
		a := PowInt(x, n)
		b := Pow(x, float64(n))
		if math.Abs(a.Val-b.Val) > 1e-10*math.Abs(b.Val) {
			t.Errorf("PowInt(1.3, %d).Val = %v, Pow = %v", n, a.Val, b.Val)
		}
		if math.Abs(a.Dot-b.Dot) > 1e-10*math.Abs(b.Dot)+1e-12 {
			t.Errorf("PowInt(1.3, %d).Dot = %v, Pow = %v", n, a.Dot, b.Dot)
		}
	}
}

func TestChainRule(t *testing.T) {
	// f(x) = exp(-x^2), f'(x) = -2x exp(-x^2)
	f := func(x Dual) Dual {
		return Exp(x.Mul(x).Neg())
	}

	x := 0.7
	val, deriv := Derivative(f, x)
	wantVal := math.Exp(-x * x)
	wantDeriv := -2 * x * wantVal

	if math.Abs(val-wantVal) > 1e-12 {
		t.Errorf("value = %v, want %v", val, wantVal)
	}
	if math.Abs(deriv-wantDeriv) > 1e-12 {
		t.Errorf("derivative = %v, want %v", deriv, wantDeriv)
	}
}

func TestConstHasZeroDerivative(t *testing.T) {
	c := Const(5)
	if c.Dot != 0 {
		t.Errorf("Const derivative = %v, want 0", c.Dot)
	}
	v := Var(5)
	if v.Dot != 1 {
		t.Errorf("Var derivative = %v, want 1", v.Dot)
	}
}

func TestAbs(t *testing.T) {
	val, deriv := Derivative(Abs, -3.0)
	if val != 3.0 || deriv != -1.0 {
		t.Errorf("Abs(-3) = (%v, %v), want (3, -1)", val, deriv)
	}
}
