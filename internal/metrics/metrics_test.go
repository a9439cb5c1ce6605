package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/potential"
	"github.com/san-kum/mdlab/internal/system"
)

func TestEnergyDrift(t *testing.T) {
	p := system.NewParticles(2, potential.LennardJones(1.0, 1.0))
	m := NewEnergyDrift(p)

	x := md.State{0, 0, 1.5, 0, 0, 0, 0, 0}
	m.Observe(x, 0)

	if m.Value() != 0 {
		t.Errorf("drift after one observation = %g, want 0", m.Value())
	}

	// doubled kinetic energy: drift must register
	x2 := x.Clone()
	x2[4] = 2.0
	m.Observe(x2, 0.1)

	if m.Value() <= 0 {
		t.Error("drift not detected after energy change")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("drift not cleared by Reset")
	}
}

func TestEnergyDrift_NonHamiltonianSystem(t *testing.T) {
	m := NewEnergyDrift(&plainSystem{})
	m.Observe(md.State{1, 2}, 0)
	if m.Value() != 0 {
		t.Error("expected zero drift for system without Energy")
	}
}

type plainSystem struct{}

func (p *plainSystem) Derive(x md.State, t float64) md.State { return md.State{0, 0} }
func (p *plainSystem) StateDim() int                         { return 2 }

func TestTemperature(t *testing.T) {
	masses := []float64{1, 1}
	m := NewTemperature(masses)

	// both particles at speed 1: KE = 1, T = KE/N = 0.5
	x := md.State{0, 0, 1, 0, 1, 0, 0, 1}
	m.Observe(x, 0)

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("temperature = %g, want 0.5", m.Value())
	}

	// averaging over a second sample at rest
	m.Observe(md.State{0, 0, 1, 0, 0, 0, 0, 0}, 0.1)
	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("averaged temperature = %g, want 0.25", m.Value())
	}
}

func TestMomentumDrift(t *testing.T) {
	masses := []float64{1, 2}
	m := NewMomentumDrift(masses)

	x := md.State{0, 0, 1, 0, 1, 0, -0.5, 0}
	m.Observe(x, 0)
	if m.Value() != 0 {
		t.Errorf("initial drift = %g, want 0", m.Value())
	}

	x2 := x.Clone()
	x2[4] = 2.0 // vx of particle 0: momentum changes by 1
	m.Observe(x2, 0.1)
	if math.Abs(m.Value()-1.0) > 1e-12 {
		t.Errorf("drift = %g, want 1", m.Value())
	}
}

func TestMaxSpeed(t *testing.T) {
	m := NewMaxSpeed(2)

	m.Observe(md.State{0, 0, 0, 0, 3, 4, 0, 0}, 0)
	if math.Abs(m.Value()-5.0) > 1e-12 {
		t.Errorf("max speed = %g, want 5", m.Value())
	}

	// slower sample must not lower the maximum
	m.Observe(md.State{0, 0, 0, 0, 1, 0, 0, 0}, 0.1)
	if math.Abs(m.Value()-5.0) > 1e-12 {
		t.Errorf("max speed = %g after slower sample, want 5", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("max speed not cleared by Reset")
	}
}
