package integrators

import (
	"testing"

	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/potential"
	"github.com/san-kum/mdlab/internal/system"
)

func benchStep(b *testing.B, integ md.Integrator) {
	sys := &harmonicOscillator{}
	x := md.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
}

func BenchmarkEuler(b *testing.B)          { benchStep(b, NewEuler()) }
func BenchmarkRK4(b *testing.B)            { benchStep(b, NewRK4()) }
func BenchmarkRK45(b *testing.B)           { benchStep(b, NewRK45()) }
func BenchmarkVelocityVerlet(b *testing.B) { benchStep(b, NewVelocityVerlet()) }
func BenchmarkLeapfrog(b *testing.B)       { benchStep(b, NewLeapfrog()) }

func benchLattice(b *testing.B, integ md.Integrator) {
	p := system.NewParticles(25, potential.LennardJones(1.0, 1.0))
	x := system.Lattice(5, 5, 1.12, 0.05, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(p, x, 0, 1e-3)
	}
}

func BenchmarkVerlet_Lattice25(b *testing.B) { benchLattice(b, NewVelocityVerlet()) }
func BenchmarkRK4_Lattice25(b *testing.B)    { benchLattice(b, NewRK4()) }
