package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/mdlab/internal/md"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }

func (h *harmonicOscillator) Derive(x md.State, t float64) md.State {
	return md.State{x[1], -x[0]}
}

func (h *harmonicOscillator) Energy(x md.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK4Accuracy(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewRK4()

	x0 := md.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	x := x0
	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerFirstOrderError(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewEuler()

	run := func(dt float64) float64 {
		x := md.State{1.0, 0.0}
		steps := int(1.0 / dt)
		for i := 0; i < steps; i++ {
			x = integ.Step(sys, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Cos(1.0))
	}

	errCoarse := run(0.01)
	errFine := run(0.005)

	// first order: halving dt should roughly halve the error
	ratio := errCoarse / errFine
	if ratio < 1.5 || ratio > 2.5 {
		t.Errorf("error ratio %.2f, expected ~2 for a first-order method", ratio)
	}
}
