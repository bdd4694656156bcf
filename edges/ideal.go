package edges

import (
	"fmt"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/prim_kruskal"
)

// Options configures edge selection.
type Options struct {
	// RadiiWeightPower is the exponent applied to ra·rb in Weight.
	RadiiWeightPower float64

	// MaxExtraEdges is how many non-tree edges may be added to the tree.
	MaxExtraEdges int

	// Method is prim_kruskal.MethodKruskal (default) or prim_kruskal.MethodPrim.
	Method string
}

// Limit is the edge budget for n nodes: (n-1) + extra, never negative.
func Limit(n, extra int) int {
	l := n - 1 + extra
	if l < 0 {
		return 0
	}

	return l
}

// IdealSet is the target edge set of one frame, in priority order:
// spanning-tree edges first, then extra edges by ascending weight.
type IdealSet struct {
	// Keys lists edge identities in priority order.
	Keys []core.EdgeKey

	// TreeLen is the number of leading Keys that form the spanning tree.
	TreeLen int

	members map[core.EdgeKey]struct{}
}

// Has reports whether k is in the ideal set.
func (s IdealSet) Has(k core.EdgeKey) bool {
	_, ok := s.members[k]
	return ok
}

// Len returns the number of ideal edges.
func (s IdealSet) Len() int { return len(s.Keys) }

func (s *IdealSet) add(k core.EdgeKey) bool {
	if _, ok := s.members[k]; ok {
		return false
	}
	s.members[k] = struct{}{}
	s.Keys = append(s.Keys, k)

	return true
}

// Ideal computes the ideal edge set for nodes.
//
// Steps:
//  1. Weight and sort all pairs (Pairs).
//  2. Spanning tree over the sorted pairs (prim_kruskal.Compute).
//  3. Scan the sorted pairs from the start, skipping tree members, until the
//     set holds Limit(n, MaxExtraEdges) edges or pairs run out.
//
// Complexity: O(n² log n).
func Ideal(nodes []core.Node, opts Options) (IdealSet, error) {
	n := len(nodes)
	limit := Limit(n, opts.MaxExtraEdges)
	set := IdealSet{
		Keys:    make([]core.EdgeKey, 0, limit),
		members: make(map[core.EdgeKey]struct{}, limit),
	}

	// 1. All pairs, cheapest first.
	pairs := Pairs(nodes, opts.RadiiWeightPower)

	// 2. Spanning tree.
	tree, err := prim_kruskal.Compute(n, pairs, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(opts.Method)))
	if err != nil {
		return IdealSet{}, fmt.Errorf("edges: spanning tree over %d nodes: %w", n, err)
	}
	for _, p := range tree {
		set.add(core.NewEdgeKey(nodes[p.I].ID, nodes[p.J].ID))
	}
	set.TreeLen = len(set.Keys)

	// 3. Extra low-weight edges.
	for _, p := range pairs {
		if len(set.Keys) >= limit {
			break
		}
		set.add(core.NewEdgeKey(nodes[p.I].ID, nodes[p.J].ID))
	}

	return set, nil
}
