package integrators

import "github.com/san-kum/mdlab/internal/md"

// Euler is the forward Euler scheme. First order and not symplectic:
// energy drifts visibly on conservative systems. It exists as the
// baseline the symplectic schemes are measured against.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys md.System, x md.State, t float64, dt float64) md.State {
	dx := sys.Derive(x, t)
	result := make(md.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
