package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/mdlab/internal/config"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"euler", "rk4", "rk45", "verlet", "leapfrog"} {
		if _, err := r.GetIntegrator(name); err != nil {
			t.Errorf("GetIntegrator(%q): %v", name, err)
		}
	}
	if _, err := r.GetIntegrator("nope"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	for _, kind := range []string{"lennard-jones", "morse", "harmonic", "soft-sphere", "gravity"} {
		cfg := config.DefaultConfig().Potential
		cfg.Kind = kind
		if _, err := r.GetPotential(cfg); err != nil {
			t.Errorf("GetPotential(%q): %v", kind, err)
		}
	}
}

func TestGetSystemDimensions(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		system string
		mutate func(*config.Config)
		wantN  int
	}{
		{"lattice", func(c *config.Config) { c.InitState.NX = 3; c.InitState.NY = 2 }, 6},
		{"gas", func(c *config.Config) { c.InitState.N = 8 }, 8},
		{"disk", func(c *config.Config) { c.InitState.N = 5 }, 5},
		{"orbit", func(c *config.Config) {}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.System = tt.system
			if tt.system == "orbit" {
				cfg.Potential.Kind = "gravity"
			}
			tt.mutate(cfg)

			sys, x0, err := r.GetSystem(cfg)
			if err != nil {
				t.Fatal(err)
			}
			if sys.N != tt.wantN {
				t.Errorf("N = %d, want %d", sys.N, tt.wantN)
			}
			if len(x0) != sys.StateDim() {
				t.Errorf("state dim %d, want %d", len(x0), sys.StateDim())
			}
		})
	}
}

func TestExperimentRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InitState.NX = 2
	cfg.InitState.NY = 2
	cfg.Duration = 0.1
	cfg.Dt = 0.01

	exp, err := FromConfig(cfg, NewRegistry())
	if err != nil {
		t.Fatal(err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.States) == 0 {
		t.Fatal("no states recorded")
	}
	if math.IsNaN(result.EnergyDrift) {
		t.Error("energy drift is NaN")
	}
	if _, ok := result.Metrics["energy_drift"]; !ok {
		t.Error("energy_drift metric not recorded")
	}
}

func TestExperimentRunWithoutSetup(t *testing.T) {
	e := New(config.DefaultConfig())
	if _, err := e.Run(context.Background()); err == nil {
		t.Error("expected error when running before setup")
	}
}
