package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/driftgraph/frame"
)

// Units is the number of SVG user units per viewport unit. svgo works in
// integers, so coordinates are scaled before rounding.
const Units = 10000

// Style controls colours and stroke width of the SVG output.
type Style struct {
	// Node fills circles; its alpha is ignored and replaced by node opacity.
	Node color.RGBA
	// Edge strokes lines; its alpha is replaced by line opacity.
	Edge color.RGBA
	// Background fills the unit square behind the graph. Zero alpha skips it.
	Background color.RGBA
	// StrokeWidth is the line width in viewport units.
	StrokeWidth float64
}

// DefaultStyle is the periwinkle palette with hairline edges.
func DefaultStyle() Style {
	return Style{
		Node:        color.RGBA{R: 129, G: 139, B: 197, A: 255},
		Edge:        color.RGBA{R: 129, G: 139, B: 197, A: 255},
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		StrokeWidth: 0.0006,
	}
}

// WriteSVG writes one SVG document for scene to w.
//
// The viewBox spans the viewport scaled by Units. The background is a unit
// square centred on the viewport at ((w-1)/2, (h-1)/2). Colours are emitted
// as rgba() with a three-decimal alpha.
func WriteSVG(w io.Writer, scene Scene, style Style) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	vw, vh := scale(scene.Viewport.Width), scale(scene.Viewport.Height)
	canvas.Startview(vw, vh, 0, 0, vw, vh)

	if style.Background.A > 0 {
		canvas.Rect(
			scale((scene.Viewport.Width-1)/2), scale((scene.Viewport.Height-1)/2),
			Units, Units,
			fmt.Sprintf(`fill="%s"`, rgba(style.Background, float64(style.Background.A)/255)),
		)
	}

	canvas.Gstyle(fmt.Sprintf("stroke-width:%d;stroke-linecap:round", max(1, scale(style.StrokeWidth))))
	for _, l := range scene.Lines {
		canvas.Line(scale(l.X1), scale(l.Y1), scale(l.X2), scale(l.Y2),
			fmt.Sprintf(`stroke="%s"`, rgba(style.Edge, l.Opacity)))
	}
	canvas.Gend()

	for _, c := range scene.Circles {
		canvas.Circle(scale(c.CX), scale(c.CY), max(1, scale(c.R)),
			fmt.Sprintf(`fill="%s"`, rgba(style.Node, c.Opacity)))
	}
	canvas.End()

	return ew.err
}

func scale(v float64) int {
	return int(math.Round(v * Units))
}

func rgba(c color.RGBA, alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, alpha)
}

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// SVG is a frame.Renderer writing one document per frame to W.
type SVG struct {
	mu    sync.Mutex
	W     io.Writer
	Style Style
}

var _ frame.Renderer = (*SVG)(nil)

// NewSVG returns an SVG renderer with DefaultStyle.
func NewSVG(w io.Writer) *SVG {
	return &SVG{W: w, Style: DefaultStyle()}
}

// Render writes f as an SVG document.
func (s *SVG) Render(f frame.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := WriteSVG(s.W, BuildScene(f.Viewport, f.Nodes, f.Edges), s.Style); err != nil {
		return fmt.Errorf("render: svg frame %d: %w", f.Seq, err)
	}

	return nil
}
