package viz

import (
	"math"

	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/system"
)

// Viewport maps world coordinates onto canvas sub-pixel coordinates.
// Terminal cells are roughly twice as tall as wide, so the x axis gets
// double the sub-pixel density and the mapping stays visually square.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Zoom       float64
}

func NewViewport() *Viewport {
	return &Viewport{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1, Zoom: 1}
}

// Fit widens the viewport to cover all particle positions plus a margin.
// It only ever grows, so a transient contraction does not make the view
// jump around.
func (v *Viewport) Fit(sys *system.Particles, x md.State) {
	if sys.N == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < sys.N; i++ {
		px, py := sys.Position(x, i)
		minX = math.Min(minX, px)
		maxX = math.Max(maxX, px)
		minY = math.Min(minY, py)
		maxY = math.Max(maxY, py)
	}

	marginX := (maxX - minX) * 0.15
	marginY := (maxY - minY) * 0.15
	if marginX < 0.5 {
		marginX = 0.5
	}
	if marginY < 0.5 {
		marginY = 0.5
	}

	v.MinX = math.Min(v.MinX, minX-marginX)
	v.MaxX = math.Max(v.MaxX, maxX+marginX)
	v.MinY = math.Min(v.MinY, minY-marginY)
	v.MaxY = math.Max(v.MaxY, maxY+marginY)
}

// Reset collapses the viewport so the next Fit starts fresh.
func (v *Viewport) Reset() {
	v.MinX, v.MaxX = -1, 1
	v.MinY, v.MaxY = -1, 1
}

// Project maps a world point to sub-pixel coordinates on a canvas of
// the given size. World y grows upward, canvas y grows downward.
func (v *Viewport) Project(c *Canvas, wx, wy float64) (int, int) {
	cw, ch := float64(c.Width*2), float64(c.Height*4)

	cx, cy := (v.MinX+v.MaxX)/2, (v.MinY+v.MaxY)/2
	spanX := (v.MaxX - v.MinX) / v.Zoom
	spanY := (v.MaxY - v.MinY) / v.Zoom

	// Keep the world aspect ratio square in sub-pixel space.
	if spanX/cw > spanY/ch {
		spanY = spanX * ch / cw
	} else {
		spanX = spanY * cw / ch
	}

	px := (wx - cx + spanX/2) / spanX * cw
	py := (cy - wy + spanY/2) / spanY * ch
	return int(px), int(py)
}

func (v *Viewport) ZoomIn()  { v.Zoom *= 1.2 }
func (v *Viewport) ZoomOut() { v.Zoom /= 1.2 }
