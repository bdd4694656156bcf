package edges

import (
	"sort"

	"github.com/katalvlaran/driftgraph/core"
)

// Reconcile fades the previous live edges towards the ideal set and tops the
// result up with missing ideal edges. prev is not modified.
//
// Steps:
//  1. For each previous edge (first occurrence of a key wins):
//     in ideal → FadeIn, otherwise → FadeOut.
//     Drop it when its opacity is now 0, when an endpoint is no longer in
//     nodes, or when an endpoint's opacity is 0.
//  2. If the survivors exceed limit (the population shrank), drop non-ideal
//     survivors with the lowest opacity first, then the lowest-priority
//     ideal survivors, until the live set fits.
//  3. Append ideal edges not yet live, in priority order, at opacity 0,
//     until limit is reached. Self-loop keys are skipped.
//
// Complexity: O(E + I) plus O(E log E) when trimming is needed.
func Reconcile(nodes []core.Node, prev []core.Edge, ideal IdealSet, limit int) []core.Edge {
	index := core.IndexNodes(nodes)
	live := make([]core.Edge, 0, limit)
	present := make(map[core.EdgeKey]struct{}, limit)

	visible := func(id core.NodeID) bool {
		i, ok := index[id]
		return ok && nodes[i].Opacity > 0
	}

	// 1. Fade previous edges.
	for _, e := range prev {
		k := e.Key()
		if _, dup := present[k]; dup {
			continue
		}
		if ideal.Has(k) {
			e.Opacity = core.FadeIn(e.Opacity)
		} else {
			e.Opacity = core.FadeOut(e.Opacity)
		}
		if e.Opacity > 0 && visible(e.A) && visible(e.B) {
			live = append(live, e)
			present[k] = struct{}{}
		}
	}

	// 2. Enforce the budget.
	if len(live) > limit {
		live = trim(live, ideal, limit)
		present = make(map[core.EdgeKey]struct{}, len(live))
		for _, e := range live {
			present[e.Key()] = struct{}{}
		}
	}

	// 3. Top up from the ideal set.
	for _, k := range ideal.Keys {
		if len(live) >= limit {
			break
		}
		if _, ok := present[k]; ok {
			continue
		}
		e, err := core.NewEdge(k.Lo, k.Hi)
		if err != nil {
			continue
		}
		live = append(live, e)
		present[k] = struct{}{}
	}

	return live
}

// trim keeps the limit most valuable edges of live, preserving their
// relative order. Ideal edges outrank non-ideal ones; within the same class
// higher opacity wins, and for ideal edges ties go to higher priority.
func trim(live []core.Edge, ideal IdealSet, limit int) []core.Edge {
	rank := make(map[core.EdgeKey]int, len(ideal.Keys))
	for i, k := range ideal.Keys {
		rank[k] = i
	}

	order := make([]int, len(live))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		a, b := live[order[x]], live[order[y]]
		ra, aIdeal := rank[a.Key()]
		rb, bIdeal := rank[b.Key()]
		if aIdeal != bIdeal {
			return aIdeal
		}
		if aIdeal && ra != rb {
			return ra < rb
		}
		return a.Opacity > b.Opacity
	})

	keep := make([]bool, len(live))
	for _, i := range order[:limit] {
		keep[i] = true
	}
	out := make([]core.Edge, 0, limit)
	for i, e := range live {
		if keep[i] {
			out = append(out, e)
		}
	}

	return out
}

// Update runs Ideal and Reconcile for one frame.
func Update(nodes []core.Node, prev []core.Edge, opts Options) ([]core.Edge, IdealSet, error) {
	ideal, err := Ideal(nodes, opts)
	if err != nil {
		return nil, IdealSet{}, err
	}

	return Reconcile(nodes, prev, ideal, Limit(len(nodes), opts.MaxExtraEdges)), ideal, nil
}
