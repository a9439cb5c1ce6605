package experiment

import (
	"fmt"

	"github.com/san-kum/mdlab/internal/config"
	"github.com/san-kum/mdlab/internal/integrators"
	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/metrics"
	"github.com/san-kum/mdlab/internal/potential"
	"github.com/san-kum/mdlab/internal/system"
)

type Registry struct {
	potentials  map[string]func(config.PotentialConfig) potential.Potential
	integrators map[string]func() md.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		potentials:  make(map[string]func(config.PotentialConfig) potential.Potential),
		integrators: make(map[string]func() md.Integrator),
	}

	r.potentials["lennard-jones"] = func(c config.PotentialConfig) potential.Potential {
		return potential.LennardJones(c.Epsilon, c.Sigma)
	}
	r.potentials["morse"] = func(c config.PotentialConfig) potential.Potential {
		return potential.Morse(c.Depth, c.Alpha, c.R0)
	}
	r.potentials["harmonic"] = func(c config.PotentialConfig) potential.Potential {
		return potential.Harmonic(c.K, c.R0)
	}
	r.potentials["soft-sphere"] = func(c config.PotentialConfig) potential.Potential {
		return potential.SoftSphere(c.Epsilon, c.Sigma)
	}
	r.potentials["gravity"] = func(c config.PotentialConfig) potential.Potential {
		return potential.Gravity(c.G)
	}

	r.integrators["euler"] = func() md.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() md.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() md.Integrator { return integrators.NewRK45() }
	r.integrators["verlet"] = func() md.Integrator { return integrators.NewVelocityVerlet() }
	r.integrators["leapfrog"] = func() md.Integrator { return integrators.NewLeapfrog() }

	return r
}

// GetPotential builds the configured pair potential, applying a
// truncate-and-shift cutoff when one is set.
func (r *Registry) GetPotential(cfg config.PotentialConfig) (potential.Potential, error) {
	fn, ok := r.potentials[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown potential: %s", cfg.Kind)
	}
	pot := fn(cfg)
	if cfg.Cutoff > 0 {
		pot = potential.Shifted(pot, cfg.Cutoff)
	}
	return pot, nil
}

// GetSystem builds the particle system and its initial state from the
// full run configuration.
func (r *Registry) GetSystem(cfg *config.Config) (*system.Particles, md.State, error) {
	pot, err := r.GetPotential(cfg.Potential)
	if err != nil {
		return nil, nil, err
	}

	var x0 md.State
	switch cfg.System {
	case "lattice":
		x0 = system.Lattice(cfg.InitState.NX, cfg.InitState.NY,
			cfg.InitState.Spacing, cfg.InitState.Jitter, cfg.Seed)
	case "gas":
		x0 = system.Gas(cfg.InitState.N, cfg.InitState.Box,
			cfg.InitState.Temperature, cfg.Seed)
	case "disk":
		x0 = system.Disk(cfg.InitState.N, cfg.InitState.Radius, cfg.InitState.Speed)
	case "orbit":
		x0 = system.TwoBody(cfg.InitState.Separation, cfg.Potential.G)
	default:
		return nil, nil, fmt.Errorf("unknown system: %s", cfg.System)
	}

	p := system.NewParticles(cfg.NumParticles(), pot)
	p.Softening = cfg.Softening
	return p, x0, nil
}

func (r *Registry) GetIntegrator(name string) (md.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListPotentials() []string {
	names := make([]string, 0, len(r.potentials))
	for name := range r.potentials {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics builds the standard observation set for a system.
func (r *Registry) DefaultMetrics(p *system.Particles) []md.Metric {
	return []md.Metric{
		metrics.NewEnergyDrift(p),
		metrics.NewTemperature(p.Masses),
		metrics.NewMomentumDrift(p.Masses),
		metrics.NewMaxSpeed(p.N),
	}
}
