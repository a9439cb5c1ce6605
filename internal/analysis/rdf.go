package analysis

import (
	"math"

	"github.com/san-kum/mdlab/internal/md"
)

// RDF is a radial distribution histogram g(r) accumulated over frames.
type RDF struct {
	Bins    []float64
	RMax    float64
	NumPart int
	frames  int
}

// NewRDF prepares a histogram with the given number of bins up to rmax.
func NewRDF(numParticles, bins int, rmax float64) *RDF {
	return &RDF{
		Bins:    make([]float64, bins),
		RMax:    rmax,
		NumPart: numParticles,
	}
}

// Accumulate adds the pair distances of one split-layout frame.
func (r *RDF) Accumulate(x md.State) {
	n := r.NumPart
	dr := r.RMax / float64(len(r.Bins))

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[j*2] - x[i*2]
			dy := x[j*2+1] - x[i*2+1]
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= r.RMax {
				continue
			}
			r.Bins[int(dist/dr)] += 2 // pair counted once, contributes to both
		}
	}
	r.frames++
}

// Normalize converts raw pair counts to g(r) against the ideal-gas
// expectation for a 2D shell, averaged over accumulated frames.
// Density is the number density of the sampled region.
func (r *RDF) Normalize(density float64) []float64 {
	g := make([]float64, len(r.Bins))
	if r.frames == 0 || density <= 0 {
		return g
	}

	dr := r.RMax / float64(len(r.Bins))
	norm := float64(r.frames) * float64(r.NumPart)

	for k := range r.Bins {
		rMid := (float64(k) + 0.5) * dr
		shellArea := 2 * math.Pi * rMid * dr
		ideal := density * shellArea
		g[k] = r.Bins[k] / (norm * ideal)
	}
	return g
}

// PeakBin returns the index of the most populated bin.
func (r *RDF) PeakBin() int {
	best := 0
	for k, v := range r.Bins {
		if v > r.Bins[best] {
			best = k
		}
	}
	return best
}

// BinCenter returns the radius at the middle of bin k.
func (r *RDF) BinCenter(k int) float64 {
	dr := r.RMax / float64(len(r.Bins))
	return (float64(k) + 0.5) * dr
}
