// Package driftgraph is an animated graph of drifting circles: nodes wander
// around a viewport on a damped random walk and fade in and out, while a
// sparse set of edges follows them, always a spanning tree plus a handful of
// the cheapest extra links.
//
// 🚀 What happens in one frame?
//
//  1. kinematics: move, perturb, fade and replenish nodes.
//  2. edges: weight every pair by dist/(ra·rb)^power, sort them, build an
//     MST (prim_kruskal over dsu) and add the cheapest extras.
//  3. edges: reconcile, so ideal edges fade in and the rest fade out.
//  4. render: circles and rim-to-rim lines, to SVG or a terminal.
//
// ✨ Why does it look calm?
//
//   - Nothing pops: nodes and edges enter at opacity 0 and leave only once
//     they faded to 0.
//   - Edge identity is the unordered pair of stable node IDs, so an edge
//     survives its endpoints moving around inside the node slice.
//   - The radius exponent trades a mesh (0) against hub-and-spoke (1).
//
// Packages:
//
//	core/          - Node, Edge, EdgeKey, Viewport, fade constants
//	dsu/           - disjoint-set with union by rank and path compression
//	prim_kruskal/  - spanning trees over weighted index pairs
//	kinematics/    - node motion, lifecycle and the optional repulsion pass
//	edges/         - weighting, ideal set selection, reconciliation
//	frame/         - the Idle/Running/Stopped driver, scheduling, metrics
//	render/        - scene building, SVG writer, terminal rasteriser
//	config/        - validated parameters from TOML/YAML
//	logging/       - zap logger construction
//	cmd/driftgraph - CLI: run, snapshot, simulate, config
//
// Quick start:
//
//	go install github.com/katalvlaran/driftgraph/cmd/driftgraph@latest
//	driftgraph run --nodes 90 --extra-edges 30
package driftgraph
