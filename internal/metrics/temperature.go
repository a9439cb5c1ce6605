package metrics

import (
	"github.com/san-kum/mdlab/internal/md"
)

// Temperature reports the time-averaged kinetic temperature (k_B = 1)
// of a split-layout particle state.
type Temperature struct {
	name    string
	masses  []float64
	sum     float64
	samples int
}

func NewTemperature(masses []float64) *Temperature {
	return &Temperature{
		name:   "temperature",
		masses: masses,
	}
}

func (m *Temperature) Name() string { return m.name }

func (m *Temperature) Observe(x md.State, t float64) {
	n := len(m.masses)
	if len(x) < n*4 {
		return
	}
	off := n * 2

	ke := 0.0
	for i := 0; i < n; i++ {
		vx, vy := x[off+i*2], x[off+i*2+1]
		ke += 0.5 * m.masses[i] * (vx*vx + vy*vy)
	}

	m.sum += ke / float64(n)
	m.samples++
}

func (m *Temperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Temperature) Reset() {
	m.sum = 0
	m.samples = 0
}
