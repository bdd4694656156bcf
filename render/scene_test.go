package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/render"
)

var vp = core.Viewport{Width: 1, Height: 0.6}

func pair() []core.Node {
	return []core.Node{
		{ID: 1, PosX: 0.1, PosY: 0.1, Radius: 0.01, Opacity: 1},
		{ID: 2, PosX: 0.5, PosY: 0.1, Radius: 0.02, Opacity: 0.5},
	}
}

// TestBuildScene_ShortensLines trims lines to the circumferences and caps
// opacity by both endpoints.
func TestBuildScene_ShortensLines(t *testing.T) {
	s := render.BuildScene(vp, pair(), []core.Edge{{A: 2, B: 1, Opacity: 0.8}})

	require.Len(t, s.Circles, 2)
	assert.Equal(t, render.Circle{ID: 1, CX: 0.1, CY: 0.1, R: 0.01, Opacity: 1}, s.Circles[0])

	require.Len(t, s.Lines, 1)
	l := s.Lines[0]
	assert.Equal(t, core.NewEdgeKey(1, 2), l.Key)
	assert.InDelta(t, 0.48, l.X1, 1e-12, "line starts at B's rim")
	assert.InDelta(t, 0.11, l.X2, 1e-12, "line ends at A's rim")
	assert.InDelta(t, 0.1, l.Y1, 1e-12)
	assert.InDelta(t, 0.1, l.Y2, 1e-12)
	assert.Equal(t, 0.5, l.Opacity)
}

// TestBuildScene_SkipsOverlapAndMissing drops edges that cannot be drawn.
func TestBuildScene_SkipsOverlapAndMissing(t *testing.T) {
	nodes := pair()
	nodes[1].PosX = 0.125 // 0.025 apart, radii sum 0.03

	s := render.BuildScene(vp, nodes, []core.Edge{
		{A: 1, B: 2, Opacity: 1},
		{A: 1, B: 7, Opacity: 1},
	})
	assert.Len(t, s.Circles, 2)
	assert.Empty(t, s.Lines)
}

// TestBuildScene_Empty returns an empty scene.
func TestBuildScene_Empty(t *testing.T) {
	s := render.BuildScene(vp, nil, nil)
	assert.Equal(t, vp, s.Viewport)
	assert.Empty(t, s.Circles)
	assert.Empty(t, s.Lines)
}
