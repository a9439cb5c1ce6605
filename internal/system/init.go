package system

import (
	"math"
	"math/rand"

	"github.com/san-kum/mdlab/internal/md"
)

// Lattice places nx*ny particles on a square lattice centered at the
// origin with zero velocities. Jitter displaces each site uniformly by
// up to jitter*spacing in each axis, which is enough to break the
// symmetry that would otherwise keep a perfect crystal static.
func Lattice(nx, ny int, spacing, jitter float64, seed int64) md.State {
	rng := rand.New(rand.NewSource(seed))
	n := nx * ny
	state := make(md.State, n*4)

	ox := -float64(nx-1) * spacing / 2
	oy := -float64(ny-1) * spacing / 2

	i := 0
	for gy := 0; gy < ny; gy++ {
		for gx := 0; gx < nx; gx++ {
			state[i*2] = ox + float64(gx)*spacing + (rng.Float64()*2-1)*jitter*spacing
			state[i*2+1] = oy + float64(gy)*spacing + (rng.Float64()*2-1)*jitter*spacing
			i++
		}
	}

	return state
}

// Disk places n particles on a circle of the given radius with
// tangential velocities.
func Disk(n int, radius, speed float64) md.State {
	state := make(md.State, n*4)
	off := n * 2
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		state[i*2] = radius * math.Cos(angle)
		state[i*2+1] = radius * math.Sin(angle)
		state[off+i*2] = -speed * math.Sin(angle)
		state[off+i*2+1] = speed * math.Cos(angle)
	}
	return state
}

// Gas fills a box of side length box with n particles at the given
// kinetic temperature (k_B = 1). Velocities are Maxwell-distributed
// and the center-of-mass drift is removed.
func Gas(n int, box, temp float64, seed int64) md.State {
	rng := rand.New(rand.NewSource(seed))
	state := make(md.State, n*4)
	off := n * 2

	sigma := math.Sqrt(temp)
	var sumVx, sumVy float64

	for i := 0; i < n; i++ {
		state[i*2] = (rng.Float64() - 0.5) * box
		state[i*2+1] = (rng.Float64() - 0.5) * box
		state[off+i*2] = rng.NormFloat64() * sigma
		state[off+i*2+1] = rng.NormFloat64() * sigma
		sumVx += state[off+i*2]
		sumVy += state[off+i*2+1]
	}

	for i := 0; i < n; i++ {
		state[off+i*2] -= sumVx / float64(n)
		state[off+i*2+1] -= sumVy / float64(n)
	}

	return state
}

// TwoBody sets up two unit-mass particles on a circular mutual orbit
// with the given separation under gravitational constant g.
func TwoBody(separation, g float64) md.State {
	v := math.Sqrt(g / (2 * separation))
	half := separation / 2
	return md.State{
		-half, 0, half, 0,
		0, -v, 0, v,
	}
}
