// Command driftgraph animates a graph of drifting circles linked by a
// spanning tree plus a few cheap extra edges.
//
//	driftgraph run                    # live terminal animation, q to quit
//	driftgraph snapshot --frames 200  # one SVG frame on stdout
//	driftgraph simulate --frames 500  # headless run, prints metrics
//	driftgraph config show            # effective configuration as TOML
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
