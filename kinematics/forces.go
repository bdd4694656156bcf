package kinematics

import (
	"math"

	"github.com/katalvlaran/driftgraph/core"
)

const (
	// RepulsionScale converts the unitless RepulsionForce into viewport units.
	RepulsionScale = 0.000001

	// repulsionSmoothing keeps the inverse-square factor finite at zero distance.
	repulsionSmoothing = 0.00001
)

// Repel applies one pairwise inverse-square repulsion pass to nodes in place.
//
// For every pair (a,b) with d = a-b:
//
//	factor = force·RepulsionScale / (sqrt(|d|²+ε) · (|d|²+ε))
//	a += d·factor,  b -= d·factor
//
// Displacements are accumulated over all pairs first and applied afterwards,
// so the result does not depend on pair order. Coincident nodes get zero
// displacement; no NaN or Inf can be produced for finite positions.
//
// Complexity: O(n²) time, O(n) memory.
func Repel(nodes []core.Node, force float64) {
	if force == 0 || len(nodes) < 2 {
		return
	}
	k := force * RepulsionScale
	dx := make([]float64, len(nodes))
	dy := make([]float64, len(nodes))

	for i := range nodes {
		a := &nodes[i]
		for j := 0; j < i; j++ {
			b := &nodes[j]
			x := a.PosX - b.PosX
			y := a.PosY - b.PosY
			d2 := x*x + y*y + repulsionSmoothing
			factor := k / (math.Sqrt(d2) * d2)
			x *= factor
			y *= factor
			dx[i] += x
			dy[i] += y
			dx[j] -= x
			dy[j] -= y
		}
	}

	for i := range nodes {
		nodes[i].PosX += dx[i]
		nodes[i].PosY += dy[i]
	}
}
