package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrLoopNotAllowed indicates an edge was requested with identical endpoints.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyViewport indicates that the host reported an unusable viewport size.
	ErrEmptyViewport = errors.New("core: viewport has no area")
)

// NodeID is the stable identity of a Node across frames.
//
// IDs are handed out by a monotonically increasing counter owned by the
// spawner and are never reused, so an Edge can reference its endpoints
// regardless of where they sit in the current frame's node slice.
type NodeID uint64

// String renders the ID as "n<id>", used in logs and SVG element ids.
func (id NodeID) String() string {
	return fmt.Sprintf("n%d", id)
}

// Node is one floating circle.
//
// Positions and radius are in normalised viewport units (the larger viewport
// side is 1.0). Opacity is always clamped to [0,1]; Radius is always > 0.
type Node struct {
	// ID is the stable identity used by edges.
	ID NodeID

	// PosX, PosY is the centre of the circle.
	PosX, PosY float64

	// VelX, VelY is the damped random-walk velocity.
	VelX, VelY float64

	// Radius of the circle; skewed towards small values at spawn time.
	Radius float64

	// Opacity ramps between 0 (invisible) and 1 (fully visible).
	Opacity float64
}

// Edge is a live connection between two nodes.
//
// The pair {A,B} is unordered: two edges are the same edge iff their Key()
// values match.
type Edge struct {
	// A and B are the endpoint identities; A != B.
	A, B NodeID

	// Opacity ramps between 0 and 1 as the edge enters or leaves the ideal set.
	Opacity float64
}

// NewEdge returns a fully transparent edge between a and b.
// Returns ErrLoopNotAllowed when a == b.
// Complexity: O(1).
func NewEdge(a, b NodeID) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("NewEdge(%s,%s): %w", a, b, ErrLoopNotAllowed)
	}

	return Edge{A: a, B: b}, nil
}

// Key returns the order-independent identity of the edge.
func (e Edge) Key() EdgeKey {
	return NewEdgeKey(e.A, e.B)
}

// EdgeKey is the normalised unordered pair of endpoint IDs (Lo < Hi).
// It is comparable and therefore usable as a map key.
type EdgeKey struct {
	Lo, Hi NodeID
}

// NewEdgeKey normalises (a,b) so that NewEdgeKey(a,b) == NewEdgeKey(b,a).
// Complexity: O(1).
func NewEdgeKey(a, b NodeID) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{Lo: a, Hi: b}
}

// String renders the key as "n<lo>-n<hi>".
func (k EdgeKey) String() string {
	return k.Lo.String() + "-" + k.Hi.String()
}

// IndexNodes maps every node ID to its position in nodes.
// Later duplicates overwrite earlier ones; the simulator never produces duplicates.
// Complexity: O(n) time and memory.
func IndexNodes(nodes []Node) map[NodeID]int {
	index := make(map[NodeID]int, len(nodes))
	for i := range nodes {
		index[nodes[i].ID] = i
	}

	return index
}
