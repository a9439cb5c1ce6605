package metrics

import (
	"math"

	"github.com/san-kum/mdlab/internal/md"
)

// MomentumDrift tracks the maximum deviation of total linear momentum
// from its initial value. Pairwise forces obey Newton's third law, so
// any drift here is integration or roundoff error.
type MomentumDrift struct {
	name     string
	masses   []float64
	initPx   float64
	initPy   float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift(masses []float64) *MomentumDrift {
	return &MomentumDrift{
		name:   "momentum_drift",
		masses: masses,
	}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(x md.State, t float64) {
	n := len(m.masses)
	if len(x) < n*4 {
		return
	}
	off := n * 2

	var px, py float64
	for i := 0; i < n; i++ {
		px += m.masses[i] * x[off+i*2]
		py += m.masses[i] * x[off+i*2+1]
	}

	if m.samples == 0 {
		m.initPx = px
		m.initPy = py
	}
	m.samples++

	drift := math.Hypot(px-m.initPx, py-m.initPy)
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initPx = 0
	m.initPy = 0
	m.maxDrift = 0
	m.samples = 0
}
