package render

import (
	"math"

	"github.com/katalvlaran/driftgraph/core"
)

// Circle is a drawable node in viewport units.
type Circle struct {
	ID      core.NodeID
	CX, CY  float64
	R       float64
	Opacity float64
}

// Line is a drawable edge segment in viewport units.
type Line struct {
	Key            core.EdgeKey
	X1, Y1, X2, Y2 float64
	Opacity        float64
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Viewport core.Viewport
	Circles  []Circle
	Lines    []Line
}

// BuildScene maps nodes and edges to primitives.
//
// Steps:
//  1. One Circle per node, in node order.
//  2. For each edge with both endpoints present and non-overlapping circles
//     (dist > ra+rb): a Line from A's circumference to B's along the unit
//     direction A→B, with opacity min(edge, A, B).
//
// Edges whose endpoints are missing or whose circles overlap are skipped.
// Complexity: O(n + e).
func BuildScene(vp core.Viewport, nodes []core.Node, edges []core.Edge) Scene {
	s := Scene{
		Viewport: vp,
		Circles:  make([]Circle, 0, len(nodes)),
		Lines:    make([]Line, 0, len(edges)),
	}

	// 1. Circles.
	for _, n := range nodes {
		s.Circles = append(s.Circles, Circle{ID: n.ID, CX: n.PosX, CY: n.PosY, R: n.Radius, Opacity: n.Opacity})
	}

	// 2. Lines.
	index := core.IndexNodes(nodes)
	for _, e := range edges {
		ia, okA := index[e.A]
		ib, okB := index[e.B]
		if !okA || !okB {
			continue
		}
		a, b := nodes[ia], nodes[ib]
		dx, dy := b.PosX-a.PosX, b.PosY-a.PosY
		d := math.Hypot(dx, dy)
		if d <= a.Radius+b.Radius {
			continue
		}
		ux, uy := dx/d, dy/d
		s.Lines = append(s.Lines, Line{
			Key:     e.Key(),
			X1:      a.PosX + ux*a.Radius,
			Y1:      a.PosY + uy*a.Radius,
			X2:      b.PosX - ux*b.Radius,
			Y2:      b.PosY - uy*b.Radius,
			Opacity: math.Min(e.Opacity, math.Min(a.Opacity, b.Opacity)),
		})
	}

	return s
}
