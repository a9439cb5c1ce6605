package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/mdlab/internal/config"
	"github.com/san-kum/mdlab/internal/md"
)

// Experiment wires a configured system, integrator, and metrics into a
// single runnable simulation.
type Experiment struct {
	cfg       *config.Config
	simulator *md.Simulator
	x0        md.State
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(sys md.System, x0 md.State, integrator md.Integrator, ms []md.Metric) error {
	e.simulator = md.New(sys, integrator)
	for _, m := range ms {
		e.simulator.AddMetric(m)
	}
	e.x0 = x0.Clone()
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*md.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := md.DefaultConfig()
	simCfg.Dt = e.cfg.Dt
	simCfg.Duration = e.cfg.Duration
	simCfg.Seed = e.cfg.Seed
	simCfg.Adaptive = e.cfg.Integrator == "rk45"

	return e.simulator.Run(ctx, e.x0, simCfg)
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *md.Simulator {
	return e.simulator
}

// FromConfig resolves the named system, integrator, and default metrics
// from the registry and returns a ready-to-run experiment.
func FromConfig(cfg *config.Config, r *Registry) (*Experiment, error) {
	sys, x0, err := r.GetSystem(cfg)
	if err != nil {
		return nil, err
	}
	integ, err := r.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	e := New(cfg)
	if err := e.Setup(sys, x0, integ, r.DefaultMetrics(sys)); err != nil {
		return nil, err
	}
	return e, nil
}
