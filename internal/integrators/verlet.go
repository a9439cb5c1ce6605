package integrators

import "github.com/san-kum/mdlab/internal/md"

// VelocityVerlet is the standard symplectic MD scheme. It assumes the
// split state convention: positions in the first half of the vector,
// velocities in the second.
type VelocityVerlet struct {
	scratch md.State
}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) ensureScratch(n int) {
	if len(v.scratch) != n {
		v.scratch = make(md.State, n)
	}
}

func (v *VelocityVerlet) Step(sys md.System, x md.State, t, dt float64) md.State {
	n := len(x)
	half := n / 2
	v.ensureScratch(n)

	result := make(md.State, n)
	dx := sys.Derive(x, t)
	dt2 := dt * dt

	// x(t+dt) = x + v dt + a dt^2 / 2
	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	// accelerations at the new positions, old velocities
	for i := 0; i < half; i++ {
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}
	dxNew := sys.Derive(v.scratch, t+dt)

	// v(t+dt) = v + (a + a') dt / 2
	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}

	return result
}

// Leapfrog is the kick-drift-kick variant. Same order and symplectic
// structure as velocity Verlet with interleaved half-step velocities.
type Leapfrog struct {
	scratch md.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys md.System, x md.State, t, dt float64) md.State {
	n := len(x)
	half := n / 2

	if len(l.scratch) != n {
		l.scratch = make(md.State, n)
	}

	result := make(md.State, n)
	dx := sys.Derive(x, t)
	halfDt := dt * 0.5

	// half kick
	for i := 0; i < half; i++ {
		l.scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}

	// drift
	for i := 0; i < half; i++ {
		result[i] = x[i] + l.scratch[half+i]*dt
		l.scratch[i] = result[i]
	}

	dxNew := sys.Derive(l.scratch, t+dt)

	// half kick
	for i := 0; i < half; i++ {
		result[half+i] = l.scratch[half+i] + dxNew[half+i]*halfDt
	}

	return result
}
