package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/mdlab/internal/potential"
	"github.com/san-kum/mdlab/internal/system"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected pixel set at origin")
	}

	// out of bounds must not panic
	c.Set(-1, -1)
	c.Set(1000, 1000)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(3, 3)
	c.Clear()

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("cell (%d,%d) not cleared", i, j)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 0)

	set := 0
	for _, col := range c.Grid[0] {
		if col != 0x2800 {
			set++
		}
	}
	if set != 10 {
		t.Errorf("expected 10 cells touched by horizontal line, got %d", set)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 3)

	touched := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				touched++
			}
		}
	}
	if touched == 0 {
		t.Error("expected filled circle to touch cells")
	}

	c.Clear()
	c.FillCircle(4, 4, 0)
	if c.Grid[1][2] == 0x2800 {
		t.Error("radius 0 should set a single pixel")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestCanvasRasterize(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)

	img := c.Rasterize(2, 2)
	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 32 {
		t.Errorf("expected 16x32 image, got %dx%d", b.Dx(), b.Dy())
	}
	if img.ColorIndexAt(0, 0) != 1 {
		t.Error("expected lit pixel at origin")
	}
	if img.ColorIndexAt(15, 31) != 0 {
		t.Error("expected dark pixel at far corner")
	}
}

func TestViewportProject(t *testing.T) {
	c := NewCanvas(40, 20)
	v := NewViewport()

	px, py := v.Project(c, 0, 0)
	if px != c.Width || py != c.Height*2 {
		t.Errorf("origin should project to center, got (%d, %d)", px, py)
	}

	// world +y maps to smaller canvas y
	_, pyUp := v.Project(c, 0, 0.5)
	if pyUp >= py {
		t.Error("positive world y should move up on canvas")
	}
}

func TestViewportFit(t *testing.T) {
	sys := system.NewParticles(2, potential.Harmonic(1, 1))
	x := system.Lattice(2, 1, 3.0, 0, 1)

	v := NewViewport()
	v.Fit(sys, x)

	if v.MaxX < 1.5 {
		t.Errorf("viewport should cover particle at x=1.5, MaxX=%f", v.MaxX)
	}

	// fit only grows
	before := v.MaxX
	v.Fit(sys, system.Lattice(1, 1, 1.0, 0, 1))
	if v.MaxX != before {
		t.Error("fit should not shrink the viewport")
	}
}
