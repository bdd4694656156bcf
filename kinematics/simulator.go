// Package kinematics advances the node population by one frame: damped
// random-walk motion, border and population driven fading, removal of fully
// faded nodes and replenishment up to the target population.
package kinematics

import (
	"math/rand"

	"github.com/katalvlaran/driftgraph/core"
)

const (
	// DriftScale converts the unitless DriftSpeed multiplier into viewport
	// units per frame per unit of velocity.
	DriftScale = 0.0001

	// VelocityDamping is applied to the velocity before the random kick.
	VelocityDamping = 0.99

	// VelocityKick scales the uniform(-0.5,0.5) perturbation per axis.
	VelocityKick = 0.3

	minRadius = 0.002
)

// Params is the subset of simulation parameters node kinematics depends on.
type Params struct {
	IdealNumNodes  int
	DriftSpeed     float64
	Repulsion      bool
	RepulsionForce float64
	ForcePasses    int
}

// Simulator owns the randomness and the NodeID allocator of one simulation.
// It is not safe for concurrent use.
type Simulator struct {
	rng    *rand.Rand
	nextID core.NodeID
}

// NewSimulator returns a Simulator drawing from rng.
// A nil rng falls back to RandFromSeed(0).
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = RandFromSeed(0)
	}

	return &Simulator{rng: rng, nextID: 1}
}

// Spawn creates an invisible, motionless node at a random position inside vp
// with a fresh ID.
func (s *Simulator) Spawn(vp core.Viewport) core.Node {
	n := core.Node{
		ID:     s.nextID,
		PosX:   s.rng.Float64() * vp.Width,
		PosY:   s.rng.Float64() * vp.Height,
		Radius: skewedRadius(s.rng),
	}
	s.nextID++

	return n
}

// OutOfBounds reports whether the node at index i must fade out: either its
// index is beyond the target population or it has drifted past the border
// fade margin on any side.
//
// The index test depends on array order, not on node age: nodes appended by
// replenishment sit at the end and are the first to be culled when the target
// population shrinks.
func OutOfBounds(i int, n core.Node, vp core.Viewport, ideal int) bool {
	return i >= ideal || !vp.Contains(n.PosX, n.PosY, core.BorderFade)
}

// Advance produces the next frame's node collection. nodes is not modified.
//
// Steps:
//  1. For each node in array order: integrate position, perturb velocity,
//     fade out when OutOfBounds else fade in.
//  2. Drop nodes whose opacity reached 0.
//  3. Append spawned nodes until the population reaches p.IdealNumNodes.
//  4. When p.Repulsion is set, run p.ForcePasses repulsion passes.
//
// Complexity: O(n) without repulsion, O(passes·n²) with it.
func (s *Simulator) Advance(vp core.Viewport, nodes []core.Node, p Params) []core.Node {
	capacity := len(nodes)
	if p.IdealNumNodes > capacity {
		capacity = p.IdealNumNodes
	}
	next := make([]core.Node, 0, capacity)

	// 1. Update every node.
	for i, n := range nodes {
		n.PosX += n.VelX * p.DriftSpeed * DriftScale
		n.PosY += n.VelY * p.DriftSpeed * DriftScale
		n.VelX = n.VelX*VelocityDamping + uniformCentered(s.rng)*VelocityKick
		n.VelY = n.VelY*VelocityDamping + uniformCentered(s.rng)*VelocityKick

		if OutOfBounds(i, n, vp, p.IdealNumNodes) {
			n.Opacity = core.FadeOut(n.Opacity)
		} else {
			n.Opacity = core.FadeIn(n.Opacity)
		}

		// 2. Fully faded nodes leave the collection.
		if n.Opacity > 0 {
			next = append(next, n)
		}
	}

	// 3. Replenish.
	for len(next) < p.IdealNumNodes {
		next = append(next, s.Spawn(vp))
	}

	// 4. Optional layout smoothing.
	if p.Repulsion {
		passes := p.ForcePasses
		if passes < 1 {
			passes = 1
		}
		for k := 0; k < passes; k++ {
			Repel(next, p.RepulsionForce)
		}
	}

	return next
}
