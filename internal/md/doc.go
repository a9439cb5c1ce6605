// Package md provides core primitives for particle dynamics simulation.
//
// The package defines the fundamental interfaces and types for numerical
// time integration of particle systems:
//
//   - [State]: flat vector of particle positions and velocities
//   - [System]: interface for autonomous dynamics (dX/dt = f(X, t))
//   - [Integrator]: explicit time-stepping scheme
//   - [Hamiltonian]: systems reporting a conserved total energy
//   - [Simulator]: orchestrates a simulation run
//
// # Example
//
//	sys := system.NewParticles(9, potential.LennardJones(1.0, 1.0))
//	x0 := system.Lattice(3, 3, 1.12, 0.05, 42)
//	s := md.New(sys, integrators.NewVelocityVerlet())
//	result, _ := s.Run(ctx, x0, md.DefaultConfig())
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For parameter sweeps across
// seeds, use the [Ensemble] type which manages independent runs.
package md
