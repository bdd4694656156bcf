package kinematics_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/kinematics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var landscape = core.Viewport{Width: 1, Height: 0.6}

// still returns params with drift disabled so border fading never kicks in.
func still(n int) kinematics.Params {
	return kinematics.Params{IdealNumNodes: n, DriftSpeed: 0}
}

func newSim(seed int64) *kinematics.Simulator {
	return kinematics.NewSimulator(rand.New(rand.NewSource(seed)))
}

// TestAdvance_PopulationConvergence starts empty and reaches the target.
func TestAdvance_PopulationConvergence(t *testing.T) {
	const n = 40
	sim := newSim(1)
	var nodes []core.Node
	for step := 0; step < n; step++ {
		nodes = sim.Advance(landscape, nodes, still(n))
		assert.Len(t, nodes, n, "step %d", step)
	}
}

// TestAdvance_OpacityBoundsAndSaturation runs long enough for every node to
// become fully visible and checks [0,1] on every frame.
func TestAdvance_OpacityBoundsAndSaturation(t *testing.T) {
	const n = 25
	sim := newSim(2)
	var nodes []core.Node
	frames := 1 + int(math.Ceil(1/core.FadeInRate))
	for step := 0; step < frames; step++ {
		nodes = sim.Advance(landscape, nodes, still(n))
		for _, nd := range nodes {
			require.GreaterOrEqual(t, nd.Opacity, 0.0)
			require.LessOrEqual(t, nd.Opacity, 1.0)
			require.Greater(t, nd.Radius, 0.0)
		}
	}
	for _, nd := range nodes {
		assert.Equal(t, 1.0, nd.Opacity, "node %s", nd.ID)
	}
}

// TestAdvance_BoundaryIndex: the last in-population index fades in, the first
// index past it fades out, both deep inside the viewport.
func TestAdvance_BoundaryIndex(t *testing.T) {
	const ideal = 3
	nodes := make([]core.Node, ideal+1)
	for i := range nodes {
		nodes[i] = core.Node{ID: core.NodeID(i + 1), PosX: 0.5, PosY: 0.3, Radius: 0.01, Opacity: 0.5}
	}

	next := newSim(3).Advance(landscape, nodes, still(ideal))
	require.Len(t, next, ideal+1)
	assert.InDelta(t, 0.56, next[ideal-1].Opacity, 1e-12, "index ideal-1 is inside the population")
	assert.InDelta(t, 0.47, next[ideal].Opacity, 1e-12, "index ideal is outside the population")
}

// TestAdvance_RemovesFadedAndKeepsOrder drops nodes that hit zero opacity.
func TestAdvance_RemovesFadedAndKeepsOrder(t *testing.T) {
	nodes := []core.Node{
		{ID: 1, PosX: 0.2, PosY: 0.2, Radius: 0.01, Opacity: 1},
		{ID: 2, PosX: 0.4, PosY: 0.2, Radius: 0.01, Opacity: 1},
		{ID: 3, PosX: 0.6, PosY: 0.2, Radius: 0.01, Opacity: core.FadeOutRate},
		{ID: 4, PosX: 0.8, PosY: 0.2, Radius: 0.01, Opacity: 0.5},
	}
	next := newSim(4).Advance(landscape, nodes, still(2))

	ids := make([]core.NodeID, 0, len(next))
	for _, nd := range next {
		ids = append(ids, nd.ID)
	}
	assert.Equal(t, []core.NodeID{1, 2, 4}, ids, "node 3 faded to 0 and was removed; nothing spawned above target")
	assert.Equal(t, 0.5, nodes[3].Opacity, "input slice must not be mutated")
}

// TestAdvance_BorderFade fades nodes that drifted past the margin.
func TestAdvance_BorderFade(t *testing.T) {
	nodes := []core.Node{
		{ID: 1, PosX: -0.05, PosY: 0.3, Radius: 0.01, Opacity: 1},
		{ID: 2, PosX: 0.5, PosY: 0.65, Radius: 0.01, Opacity: 1},
		{ID: 3, PosX: 0.5, PosY: 0.3, Radius: 0.01, Opacity: 0.5},
	}
	next := newSim(5).Advance(landscape, nodes, still(3))
	require.Len(t, next, 3)
	assert.InDelta(t, 0.97, next[0].Opacity, 1e-12)
	assert.InDelta(t, 0.97, next[1].Opacity, 1e-12)
	assert.InDelta(t, 0.56, next[2].Opacity, 1e-12)
}

// TestAdvance_Motion checks position integration and velocity damping bounds.
func TestAdvance_Motion(t *testing.T) {
	nodes := []core.Node{{ID: 1, PosX: 0.5, PosY: 0.3, VelX: 2, VelY: -4, Radius: 0.01, Opacity: 1}}
	next := newSim(6).Advance(landscape, nodes, kinematics.Params{IdealNumNodes: 1, DriftSpeed: 10})
	require.Len(t, next, 1)

	assert.InDelta(t, 0.5+2*10*kinematics.DriftScale, next[0].PosX, 1e-12)
	assert.InDelta(t, 0.3-4*10*kinematics.DriftScale, next[0].PosY, 1e-12)
	assert.InDelta(t, 2*kinematics.VelocityDamping, next[0].VelX, kinematics.VelocityKick/2+1e-12)
	assert.InDelta(t, -4*kinematics.VelocityDamping, next[0].VelY, kinematics.VelocityKick/2+1e-12)
	assert.Equal(t, 0.01, next[0].Radius, "radius is carried over")
}

// TestSpawn_Properties verifies fresh nodes are invisible, still, inside the
// viewport and uniquely identified.
func TestSpawn_Properties(t *testing.T) {
	sim := newSim(7)
	seen := make(map[core.NodeID]bool)
	for i := 0; i < 500; i++ {
		n := sim.Spawn(landscape)
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
		assert.Zero(t, n.Opacity)
		assert.Zero(t, n.VelX)
		assert.Zero(t, n.VelY)
		assert.True(t, n.PosX >= 0 && n.PosX < landscape.Width)
		assert.True(t, n.PosY >= 0 && n.PosY < landscape.Height)
		assert.True(t, n.Radius >= 0.002 && n.Radius < 0.002+1.0/60)
	}
}

// TestOutOfBounds covers index and margin criteria.
func TestOutOfBounds(t *testing.T) {
	inside := core.Node{PosX: 0.5, PosY: 0.3}
	assert.False(t, kinematics.OutOfBounds(0, inside, landscape, 1))
	assert.True(t, kinematics.OutOfBounds(1, inside, landscape, 1))
	assert.False(t, kinematics.OutOfBounds(0, core.Node{PosX: 1.01, PosY: 0.3}, landscape, 1))
	assert.True(t, kinematics.OutOfBounds(0, core.Node{PosX: 1.03, PosY: 0.3}, landscape, 1))
}
