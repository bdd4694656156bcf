package core

import (
	"fmt"
	"math"
)

// Size is a viewport size in whatever units the host reports
// (pixels, terminal cells, ...).
type Size struct {
	Width, Height float64
}

// Viewport is the normalised drawing area: the larger side is exactly 1.0 and
// the other side is scaled by the aspect ratio.
type Viewport struct {
	Width, Height float64
}

// Normalize converts a raw host size into a Viewport.
//
// Steps:
//  1. Reject non-finite or non-positive sides with ErrEmptyViewport.
//  2. Divide both sides by the larger one.
//
// Complexity: O(1).
func Normalize(s Size) (Viewport, error) {
	// 1. Validate both sides.
	if !positiveFinite(s.Width) || !positiveFinite(s.Height) {
		return Viewport{}, fmt.Errorf("Normalize(%gx%g): %w", s.Width, s.Height, ErrEmptyViewport)
	}

	// 2. Scale so the larger side becomes 1.0.
	m := math.Max(s.Width, s.Height)

	return Viewport{Width: s.Width / m, Height: s.Height / m}, nil
}

// Contains reports whether (x,y) lies inside the viewport shrunk by margin on
// every side. A negative margin grows the viewport instead, which is how the
// border fade threshold lets nodes drift slightly past the edge before fading.
func (v Viewport) Contains(x, y, margin float64) bool {
	return x >= margin && v.Width-x >= margin && y >= margin && v.Height-y >= margin
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
