package metrics

import (
	"math"

	"github.com/san-kum/mdlab/internal/md"
)

// MaxSpeed records the fastest particle speed seen during a run. A
// runaway value is the usual first symptom of a timestep too large for
// the potential's stiffness.
type MaxSpeed struct {
	name string
	n    int
	max  float64
}

func NewMaxSpeed(n int) *MaxSpeed {
	return &MaxSpeed{
		name: "max_speed",
		n:    n,
	}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(x md.State, t float64) {
	if len(x) < m.n*4 {
		return
	}
	off := m.n * 2
	for i := 0; i < m.n; i++ {
		v := math.Hypot(x[off+i*2], x[off+i*2+1])
		if v > m.max {
			m.max = v
		}
	}
}

func (m *MaxSpeed) Value() float64 {
	return m.max
}

func (m *MaxSpeed) Reset() {
	m.max = 0
}
