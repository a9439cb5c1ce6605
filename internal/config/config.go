package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.001
	DefaultDuration = 10.0
	DefaultEpsilon  = 1.0
	DefaultSigma    = 1.0
	DefaultNX       = 4
	DefaultNY       = 4
	DefaultSpacing  = 1.122462 // 2^(1/6), LJ equilibrium spacing
	DefaultJitter   = 0.05
)

type Config struct {
	System     string          `yaml:"system"`
	Potential  PotentialConfig `yaml:"potential"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	Seed       int64           `yaml:"seed"`
	Softening  float64         `yaml:"softening"`
	InitState  InitStateConfig `yaml:"init_state"`
}

type PotentialConfig struct {
	Kind    string  `yaml:"kind"`
	Epsilon float64 `yaml:"epsilon"`
	Sigma   float64 `yaml:"sigma"`
	Depth   float64 `yaml:"depth"`
	Alpha   float64 `yaml:"alpha"`
	R0      float64 `yaml:"r0"`
	K       float64 `yaml:"k"`
	G       float64 `yaml:"g"`
	Cutoff  float64 `yaml:"cutoff"`
}

type InitStateConfig struct {
	NX          int     `yaml:"nx"`
	NY          int     `yaml:"ny"`
	Spacing     float64 `yaml:"spacing"`
	Jitter      float64 `yaml:"jitter"`
	N           int     `yaml:"n"`
	Box         float64 `yaml:"box"`
	Temperature float64 `yaml:"temperature"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	Separation  float64 `yaml:"separation"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     "lattice",
		Integrator: "verlet",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Potential: PotentialConfig{
			Kind:    "lennard-jones",
			Epsilon: DefaultEpsilon,
			Sigma:   DefaultSigma,
			Depth:   1.0,
			Alpha:   1.5,
			R0:      1.0,
			K:       10.0,
			G:       1.0,
		},
		InitState: InitStateConfig{
			NX:          DefaultNX,
			NY:          DefaultNY,
			Spacing:     DefaultSpacing,
			Jitter:      DefaultJitter,
			N:           8,
			Box:         10.0,
			Temperature: 1.0,
			Radius:      1.0,
			Speed:       0.5,
			Separation:  2.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NumParticles derives the particle count implied by the init-state
// block for the configured system.
func (c *Config) NumParticles() int {
	switch c.System {
	case "lattice":
		return c.InitState.NX * c.InitState.NY
	case "orbit":
		return 2
	default:
		return c.InitState.N
	}
}
