package export

import (
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/system"
	"github.com/san-kum/mdlab/internal/viz"
)

const (
	gifCanvasW = 80
	gifCanvasH = 40
	gifDotSize = 3
	frameDelay = 3 // hundredths of a second
)

// AnimateGIF renders a stored trajectory as an animated GIF. Frames
// are rasterized from the same braille canvas the live view uses, so
// the output matches what the terminal shows. stride controls frame
// subsampling; values below 1 mean every state.
func AnimateGIF(path string, sys *system.Particles, states []md.State, stride int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteGIF(f, sys, states, stride)
}

func WriteGIF(w io.Writer, sys *system.Particles, states []md.State, stride int) error {
	if stride < 1 {
		stride = 1
	}

	canvas := viz.NewCanvas(gifCanvasW, gifCanvasH)
	viewport := viz.NewViewport()

	// Pre-fit over the whole trajectory so the view does not drift
	// between frames.
	for _, s := range states {
		viewport.Fit(sys, s)
	}

	anim := gif.GIF{LoopCount: 0}
	for i := 0; i < len(states); i += stride {
		canvas.Clear()
		for p := 0; p < sys.N; p++ {
			wx, wy := sys.Position(states[i], p)
			px, py := viewport.Project(canvas, wx, wy)
			canvas.FillCircle(px, py, 2)
		}
		anim.Image = append(anim.Image, canvas.Rasterize(gifDotSize, gifDotSize))
		anim.Delay = append(anim.Delay, frameDelay)
	}

	return gif.EncodeAll(w, &anim)
}
