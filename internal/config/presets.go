package config

var Presets = map[string]map[string]*Config{
	"lattice": {
		"crystal": {
			System: "lattice", Integrator: "verlet", Dt: 0.001, Duration: 10.0,
			Potential: PotentialConfig{Kind: "lennard-jones", Epsilon: 1.0, Sigma: 1.0},
			InitState: InitStateConfig{NX: 4, NY: 4, Spacing: DefaultSpacing, Jitter: 0.02},
		},
		"melt": {
			System: "lattice", Integrator: "verlet", Dt: 0.0005, Duration: 20.0,
			Potential: PotentialConfig{Kind: "lennard-jones", Epsilon: 1.0, Sigma: 1.0},
			InitState: InitStateConfig{NX: 6, NY: 6, Spacing: DefaultSpacing, Jitter: 0.15},
		},
		"springs": {
			System: "lattice", Integrator: "verlet", Dt: 0.001, Duration: 10.0,
			Potential: PotentialConfig{Kind: "harmonic", K: 10.0, R0: 1.0},
			InitState: InitStateConfig{NX: 3, NY: 3, Spacing: 1.0, Jitter: 0.1},
		},
	},
	"gas": {
		"dilute": {
			System: "gas", Integrator: "verlet", Dt: 0.001, Duration: 10.0,
			Potential: PotentialConfig{Kind: "lennard-jones", Epsilon: 1.0, Sigma: 1.0, Cutoff: 2.5},
			InitState: InitStateConfig{N: 32, Box: 20.0, Temperature: 1.5},
		},
		"dense": {
			System: "gas", Integrator: "verlet", Dt: 0.0005, Duration: 10.0,
			Potential: PotentialConfig{Kind: "soft-sphere", Epsilon: 1.0, Sigma: 1.0, Cutoff: 2.0},
			InitState: InitStateConfig{N: 64, Box: 10.0, Temperature: 1.0},
		},
	},
	"disk": {
		"ring": {
			System: "disk", Integrator: "leapfrog", Dt: 0.001, Duration: 30.0,
			Potential: PotentialConfig{Kind: "gravity", G: 1.0},
			InitState: InitStateConfig{N: 8, Radius: 1.0, Speed: 0.5},
		},
	},
	"orbit": {
		"binary": {
			System: "orbit", Integrator: "verlet", Dt: 0.001, Duration: 50.0,
			Potential: PotentialConfig{Kind: "gravity", G: 1.0},
			InitState: InitStateConfig{Separation: 2.0},
		},
		"dimer": {
			System: "orbit", Integrator: "verlet", Dt: 0.0005, Duration: 20.0,
			Potential: PotentialConfig{Kind: "morse", Depth: 1.0, Alpha: 1.5, R0: 1.2},
			InitState: InitStateConfig{Separation: 1.5},
		},
	},
}

// GetPreset returns nil when the system or preset name is unknown.
func GetPreset(system, name string) *Config {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(system string) []string {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
