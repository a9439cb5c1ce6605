package analysis

import (
	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/system"
)

// EnergySeries holds per-frame energy decomposition of a trajectory.
type EnergySeries struct {
	Total     []float64
	Kinetic   []float64
	Potential []float64
}

// ComputeEnergySeries evaluates the energy decomposition of every
// recorded frame.
func ComputeEnergySeries(p *system.Particles, states []md.State) *EnergySeries {
	s := &EnergySeries{
		Total:     make([]float64, len(states)),
		Kinetic:   make([]float64, len(states)),
		Potential: make([]float64, len(states)),
	}

	for i, x := range states {
		ke := p.KineticEnergy(x)
		pe := p.PotentialEnergy(x)
		s.Kinetic[i] = ke
		s.Potential[i] = pe
		s.Total[i] = ke + pe
	}

	return s
}
