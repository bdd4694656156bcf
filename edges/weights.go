package edges

import (
	"math"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/prim_kruskal"
)

// MaxWeight replaces any weight that would otherwise be NaN or ±Inf.
const MaxWeight = math.MaxFloat64

// Weight is the cost of connecting a and b:
//
//	hypot(a-b) / (a.Radius · b.Radius)^power
//
// Coincident nodes weigh 0. A non-finite result (only possible with
// degenerate radii) is replaced by MaxWeight so sorting stays well defined.
// Complexity: O(1).
func Weight(a, b core.Node, power float64) float64 {
	d := math.Hypot(a.PosX-b.PosX, a.PosY-b.PosY)
	w := d / math.Pow(a.Radius*b.Radius, power)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return MaxWeight
	}

	return w
}

// Pairs weights every unordered pair i<j of nodes and returns them sorted
// ascending by weight (stable: ties keep (i,j) generation order).
// Complexity: O(n² log n) time, O(n²) memory.
func Pairs(nodes []core.Node, power float64) []prim_kruskal.Pair {
	n := len(nodes)
	if n < 2 {
		return nil
	}
	pairs := make([]prim_kruskal.Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, prim_kruskal.Pair{I: i, J: j, Weight: Weight(nodes[i], nodes[j], power)})
		}
	}
	prim_kruskal.SortPairs(pairs)

	return pairs
}
