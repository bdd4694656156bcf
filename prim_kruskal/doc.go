// Package prim_kruskal computes minimum spanning trees over weighted index
// pairs: the backbone that keeps the drifting graph connected.
//
// What & Why
//
//   - Every frame the edge selector scores all n(n-1)/2 node pairs and needs
//     the cheapest set of n-1 of them that connects every node. That set is a
//     Minimum Spanning Tree (MST).
//
//   - The tree is recomputed from scratch each frame on a few hundred nodes at
//     most, so both algorithms here work on plain int indices and []Pair
//     rather than on a graph container.
//
// Algorithms Provided
//
//   - Kruskal(n int, sorted []Pair) ([]Pair, error)
//
//   - Strategy: scan pairs ascending by weight and use a dsu.DisjointSet to
//     skip pairs whose endpoints are already connected. Stop at n-1 edges.
//
//   - Complexity: O(E·α(n)) once sorted; SortPairs adds O(E log E).
//
//   - Determinism: SortPairs is stable, so ties keep generation order.
//
//   - Prim(n int, pairs []Pair) ([]Pair, error)
//
//   - Strategy: dense O(n²) growth from element 0 over an n×n matrix.
//     On a complete graph E ≈ n²/2 and Prim avoids the sort entirely.
//
//   - Order: edges come out in vertex-attachment order, which is a different
//     (but equally valid) priority order than Kruskal's.
//
// Both return a spanning forest instead of failing when the pairs do not
// connect every element; the edge selector always passes a complete graph,
// so in practice the result is a tree of exactly n-1 edges.
//
// Error Conditions
//
//   - ErrDimensionMismatch - a pair index lies outside [0,n).
//   - ErrLoopNotAllowed    - a pair joins an element to itself.
//   - ErrUnknownMethod     - Compute was given an unrecognised Method.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
