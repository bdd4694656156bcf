// Package core holds the value types every other driftgraph package shares.
//
// The simulation state between two frames is nothing more than two plain
// slices, []Node and []Edge, owned by the frame driver. Nothing in core is
// goroutine-aware: values are copied, never shared.
//
// Identity:
//
//   - Node.ID is allocated once at spawn time and never reused, so edges keep
//     pointing at the right circle even though the node slice is rebuilt every
//     frame and nodes shift position inside it.
//   - Edge identity is the unordered pair of endpoint IDs. Use Edge.Key() or
//     NewEdgeKey(a, b) for membership tests; NewEdgeKey(a,b) == NewEdgeKey(b,a).
//
// Geometry:
//
//   - Size is whatever the host measured (pixels, terminal cells).
//   - Viewport is Size normalised so that max(Width, Height) == 1.0. All node
//     positions and radii live in viewport units.
//
// Lifecycle constants:
//
//	FadeInRate  = 0.06   per-frame opacity increase
//	FadeOutRate = 0.03   per-frame opacity decrease
//	BorderFade  = -0.02  signed border margin for the out-of-bounds test
//
// Quick ASCII picture of one frame:
//
//	●───────○
//	 \     /
//	  •───●      ○ fading in, ● fully visible, • small radius
package core
