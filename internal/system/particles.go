package system

import (
	"fmt"
	"math"

	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/potential"
)

// Particles is a 2D system of point particles interacting through a
// pair potential.
//
// State layout is split: positions [x0 y0 x1 y1 ...] in the first
// half, velocities [vx0 vy0 ...] in the second. The split keeps the
// position/velocity halves contiguous, which is what the symplectic
// integrators key on.
type Particles struct {
	N         int
	Masses    []float64
	Pot       potential.Potential
	Softening float64

	massCoupled bool
}

func NewParticles(n int, pot potential.Potential) *Particles {
	masses := make([]float64, n)
	for i := range masses {
		masses[i] = 1.0
	}
	coupled := false
	if mc, ok := pot.(potential.MassCoupled); ok {
		coupled = mc.MassCoupled()
	}
	return &Particles{
		N:           n,
		Masses:      masses,
		Pot:         pot,
		massCoupled: coupled,
	}
}

func (p *Particles) StateDim() int { return p.N * 4 }

// vel returns the index of the velocity block.
func (p *Particles) vel() int { return p.N * 2 }

func (p *Particles) Derive(x md.State, t float64) md.State {
	n := p.N
	off := p.vel()
	dx := make(md.State, len(x))

	ax, ay := p.forces(x)

	for i := 0; i < n; i++ {
		dx[i*2] = x[off+i*2]
		dx[i*2+1] = x[off+i*2+1]
		dx[off+i*2] = ax[i]
		dx[off+i*2+1] = ay[i]
	}

	return dx
}

// forces accumulates pair forces over the half loop, applying Newton's
// third law to the j side.
func (p *Particles) forces(x md.State) ([]float64, []float64) {
	n := p.N
	ax := make([]float64, n)
	ay := make([]float64, n)
	eps2 := p.Softening * p.Softening

	for i := 0; i < n; i++ {
		xi, yi := x[i*2], x[i*2+1]

		for j := i + 1; j < n; j++ {
			rx := x[j*2] - xi
			ry := x[j*2+1] - yi
			r := math.Sqrt(rx*rx + ry*ry + eps2)

			// F = -dV/dr along the pair axis
			fmag := -p.Pot.Deriv(r) * p.pairWeight(i, j)
			fx := fmag * rx / r
			fy := fmag * ry / r

			ax[i] -= fx / p.Masses[i]
			ay[i] -= fy / p.Masses[i]
			ax[j] += fx / p.Masses[j]
			ay[j] += fy / p.Masses[j]
		}
	}

	return ax, ay
}

func (p *Particles) pairWeight(i, j int) float64 {
	if p.massCoupled {
		return p.Masses[i] * p.Masses[j]
	}
	return 1.0
}

// Energy returns kinetic plus pairwise potential energy.
func (p *Particles) Energy(x md.State) float64 {
	return p.KineticEnergy(x) + p.PotentialEnergy(x)
}

func (p *Particles) KineticEnergy(x md.State) float64 {
	off := p.vel()
	ke := 0.0
	for i := 0; i < p.N; i++ {
		vx, vy := x[off+i*2], x[off+i*2+1]
		ke += 0.5 * p.Masses[i] * (vx*vx + vy*vy)
	}
	return ke
}

func (p *Particles) PotentialEnergy(x md.State) float64 {
	n := p.N
	pe := 0.0
	eps2 := p.Softening * p.Softening

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rx := x[j*2] - x[i*2]
			ry := x[j*2+1] - x[i*2+1]
			r := math.Sqrt(rx*rx + ry*ry + eps2)
			pe += p.Pot.Value(r) * p.pairWeight(i, j)
		}
	}
	return pe
}

func (p *Particles) Momentum(x md.State) (px, py float64) {
	off := p.vel()
	for i := 0; i < p.N; i++ {
		px += p.Masses[i] * x[off+i*2]
		py += p.Masses[i] * x[off+i*2+1]
	}
	return
}

func (p *Particles) AngularMomentum(x md.State) float64 {
	off := p.vel()
	L := 0.0
	for i := 0; i < p.N; i++ {
		xi, yi := x[i*2], x[i*2+1]
		vx, vy := x[off+i*2], x[off+i*2+1]
		L += p.Masses[i] * (xi*vy - yi*vx)
	}
	return L
}

// Temperature is the kinetic temperature with k_B = 1: KE per particle
// in two dimensions.
func (p *Particles) Temperature(x md.State) float64 {
	if p.N == 0 {
		return 0
	}
	return p.KineticEnergy(x) / float64(p.N)
}

func (p *Particles) CenterOfMass(x md.State) (cx, cy float64) {
	total := 0.0
	for i := 0; i < p.N; i++ {
		cx += p.Masses[i] * x[i*2]
		cy += p.Masses[i] * x[i*2+1]
		total += p.Masses[i]
	}
	if total > 0 {
		cx /= total
		cy /= total
	}
	return
}

// Position returns the coordinates of particle i.
func (p *Particles) Position(x md.State, i int) (float64, float64) {
	return x[i*2], x[i*2+1]
}

// Velocity returns the velocity components of particle i.
func (p *Particles) Velocity(x md.State, i int) (float64, float64) {
	off := p.vel()
	return x[off+i*2], x[off+i*2+1]
}

func (p *Particles) GetParams() map[string]float64 {
	return map[string]float64{
		"softening": p.Softening,
	}
}

func (p *Particles) SetParam(name string, value float64) error {
	switch name {
	case "softening":
		if value < 0 {
			return fmt.Errorf("%w: softening %f", md.ErrParameterBounds, value)
		}
		p.Softening = value
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
