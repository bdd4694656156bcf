package edges_test

import (
	"fmt"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/edges"
)

// ExampleUpdate shows the first two frames of a three-node graph: the tree
// edges appear transparent, then begin to fade in.
func ExampleUpdate() {
	nodes := []core.Node{
		{ID: 1, PosX: 0.1, PosY: 0.1, Radius: 0.01, Opacity: 1},
		{ID: 2, PosX: 0.4, PosY: 0.1, Radius: 0.01, Opacity: 1},
		{ID: 3, PosX: 0.1, PosY: 0.5, Radius: 0.01, Opacity: 1},
	}
	opts := edges.Options{RadiiWeightPower: 0.5}

	live, _, _ := edges.Update(nodes, nil, opts)
	live, _, _ = edges.Update(nodes, live, opts)
	for _, e := range live {
		fmt.Printf("%s %.2f\n", e.Key(), e.Opacity)
	}
	// Output:
	// n1-n2 0.06
	// n1-n3 0.06
}
