package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/potential"
	"github.com/san-kum/mdlab/internal/system"
)

func TestRDF_LatticePeak(t *testing.T) {
	spacing := 1.0
	x := system.Lattice(4, 4, spacing, 0, 0)

	rdf := NewRDF(16, 50, 2.0)
	rdf.Accumulate(x)

	peak := rdf.BinCenter(rdf.PeakBin())
	if math.Abs(peak-spacing) > 0.1 {
		t.Errorf("RDF peak at %g, want near lattice spacing %g", peak, spacing)
	}
}

func TestRDF_IgnoresPairsBeyondRMax(t *testing.T) {
	x := md.State{
		0, 0, 10, 0, // two particles far apart
		0, 0, 0, 0,
	}
	rdf := NewRDF(2, 10, 1.0)
	rdf.Accumulate(x)

	for k, v := range rdf.Bins {
		if v != 0 {
			t.Errorf("bin %d = %g, want empty histogram", k, v)
		}
	}
}

func TestRDF_NormalizeEmptyFrames(t *testing.T) {
	rdf := NewRDF(4, 10, 1.0)
	g := rdf.Normalize(1.0)
	for _, v := range g {
		if v != 0 {
			t.Error("normalize without frames should be all zero")
		}
	}
}

func TestMSD_StaticTrajectoryIsZero(t *testing.T) {
	x := system.Lattice(3, 3, 1.0, 0, 0)
	states := []md.State{x, x.Clone(), x.Clone()}

	msd := MeanSquareDisplacement(states, 9)
	for lag, v := range msd {
		if v != 0 {
			t.Errorf("MSD[%d] = %g for static trajectory", lag, v)
		}
	}
}

func TestMSD_BallisticGrowth(t *testing.T) {
	// single particle moving at unit speed: MSD(lag) = lag^2 * dt^2
	n := 1
	frames := 10
	states := make([]md.State, frames)
	for f := 0; f < frames; f++ {
		states[f] = md.State{float64(f), 0, 1, 0}
	}

	msd := MeanSquareDisplacement(states, n)
	for lag := 1; lag < frames; lag++ {
		want := float64(lag * lag)
		if math.Abs(msd[lag]-want) > 1e-10 {
			t.Errorf("MSD[%d] = %g, want %g", lag, msd[lag], want)
		}
	}
}

func TestDiffusionCoefficient_LinearMSD(t *testing.T) {
	// MSD = 4 D t with D = 0.25 means slope 1
	msd := make([]float64, 20)
	dt := 0.1
	for k := range msd {
		msd[k] = float64(k) * dt
	}

	d := DiffusionCoefficient(msd, dt)
	if math.Abs(d-0.25) > 1e-10 {
		t.Errorf("D = %g, want 0.25", d)
	}
}

func TestEnergySeries(t *testing.T) {
	p := system.NewParticles(2, potential.LennardJones(1.0, 1.0))
	states := []md.State{
		{0, 0, 2, 0, 1, 0, -1, 0},
		{0, 0, 2, 0, 0, 0, 0, 0},
	}

	s := ComputeEnergySeries(p, states)

	if len(s.Total) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(s.Total))
	}
	if math.Abs(s.Kinetic[0]-1.0) > 1e-12 {
		t.Errorf("KE[0] = %g, want 1", s.Kinetic[0])
	}
	if s.Kinetic[1] != 0 {
		t.Errorf("KE[1] = %g, want 0", s.Kinetic[1])
	}
	if math.Abs(s.Total[0]-(s.Kinetic[0]+s.Potential[0])) > 1e-12 {
		t.Error("total != kinetic + potential")
	}
}

func TestPhasePortrait(t *testing.T) {
	p := system.NewParticles(2, potential.Harmonic(1.0, 1.0))
	x0 := md.State{0, 0, 1.5, 0, 0, 0, 0, 0}

	portrait := GeneratePhasePortrait(p, stepEuler{}, x0, 2, 6, 0.01, 1.0)
	if portrait == nil {
		t.Fatal("nil portrait")
	}
	if len(portrait.Points) != 100 {
		t.Errorf("expected 100 points, got %d", len(portrait.Points))
	}

	ascii := PhasePortraitToASCII(portrait, 40, 20)
	if ascii == "" {
		t.Error("empty ASCII rendering")
	}
}

func TestPhasePortrait_IndexOutOfRange(t *testing.T) {
	p := system.NewParticles(1, potential.Harmonic(1.0, 1.0))
	if portrait := GeneratePhasePortrait(p, stepEuler{}, make(md.State, 4), 10, 1, 0.01, 1.0); portrait != nil {
		t.Error("expected nil portrait for out-of-range index")
	}
}

type stepEuler struct{}

func (stepEuler) Step(sys md.System, x md.State, t, dt float64) md.State {
	dx := sys.Derive(x, t)
	out := make(md.State, len(x))
	for i := range x {
		out[i] = x[i] + dt*dx[i]
	}
	return out
}
