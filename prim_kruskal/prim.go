// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm
// on the dense weight matrix induced by a list of index pairs.
package prim_kruskal

import (
	"math"
)

// Prim computes a minimum spanning tree of the elements [0,n) by growing it
// from element 0 over the dense n×n weight matrix built from pairs.
//
// Error Conditions:
//   - ErrDimensionMismatch : a pair references an index outside [0,n).
//   - ErrLoopNotAllowed    : a pair has I == J.
//
// Steps:
//  1. Validate pairs; n <= 1 yields an empty tree.
//  2. Fill a dense matrix with +Inf and keep the lightest weight per pair.
//  3. Repeatedly pick the cheapest vertex u outside the tree.
//     If every remaining vertex is unreachable (+Inf), start a new component
//     at the lowest unvisited index so the result is a spanning forest.
//  4. Record (parent[u], u) and relax the best cost of every other vertex.
//
// Returned pairs are normalised to I < J and appear in the order their
// second endpoint joined the tree.
//
// Complexity: O(n² + E) time, O(n²) memory.
func Prim(n int, pairs []Pair) ([]Pair, error) {
	// 1. Validate.
	if err := validatePairs("Prim", n, pairs); err != nil {
		return nil, err
	}
	if n <= 1 {
		return []Pair{}, nil
	}

	// 2. Dense weight matrix; missing pairs stay +Inf.
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
	}
	for _, p := range pairs {
		if p.Weight < dist[p.I][p.J] {
			dist[p.I][p.J] = p.Weight
			dist[p.J][p.I] = p.Weight
		}
	}

	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	parent := make([]int, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0
	tree := make([]Pair, 0, n-1)

	for it := 0; it < n; it++ {
		// 3. Cheapest vertex not yet in the tree.
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				u, minW = v, bestCost[v]
			}
		}
		if u < 0 {
			// Disconnected remainder: root a new component.
			for v := 0; v < n; v++ {
				if !inTree[v] {
					u = v
					break
				}
			}
			parent[u] = -1
		}

		// 4. Attach u and relax its neighbours.
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			lo, hi := p, u
			if lo > hi {
				lo, hi = hi, lo
			}
			tree = append(tree, Pair{I: lo, J: hi, Weight: dist[p][u]})
		}
		for v := 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
				parent[v] = u
			}
		}
	}

	return tree, nil
}
