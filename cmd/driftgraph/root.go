package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/driftgraph/config"
	"github.com/katalvlaran/driftgraph/logging"
)

var version = "0.3.0"

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
	logFile    string

	seed      int64
	nodes     int
	extra     float64
	power     float64
	drift     float64
	repulsion bool
	force     float64
	passes    int
	method    string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "driftgraph",
		Short: "driftgraph — drifting circles joined by a living spanning tree",
		Long: Brand.Sprint("driftgraph") + " — drifting circles joined by a living spanning tree\n" +
			Subtle.Sprint("Nodes wander, fade in and out; edges follow an MST plus the cheapest extras."),
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate("driftgraph {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.Int64Var(&g.seed, "seed", 0, "random seed, 0 seeds from the clock")
	pf.IntVarP(&g.nodes, "nodes", "n", config.DefaultIdealNumNodes, "target number of nodes (1-300)")
	pf.Float64Var(&g.extra, "extra-edges", config.DefaultExtraEdgesPercent, "extra edges as percent of nodes (0-1000)")
	pf.Float64Var(&g.power, "radii-power", config.DefaultRadiiWeightPower, "radius exponent in the edge weight (0-1)")
	pf.Float64Var(&g.drift, "drift", config.DefaultDriftSpeed, "drift speed multiplier (0-100)")
	pf.BoolVar(&g.repulsion, "repulsion", false, "enable the node repulsion pass")
	pf.Float64Var(&g.force, "repulsion-force", config.DefaultRepulsionForce, "repulsion strength (0-100)")
	pf.IntVar(&g.passes, "force-passes", config.DefaultForcePasses, "repulsion passes per frame (1-300)")
	pf.StringVar(&g.method, "method", config.DefaultSpanningMethod, "spanning tree method: kruskal or prim")

	root.AddCommand(
		runCmd(g),
		snapshotCmd(g),
		simulateCmd(g),
		configCmd(g),
	)

	return root
}

// load resolves the effective configuration: defaults, then the config
// file, then any flag the user set explicitly.
func (g *globals) load(cmd *cobra.Command) (config.File, error) {
	cfg := config.DefaultFile()
	if g.configPath != "" {
		f, err := config.Load(g.configPath)
		if err != nil {
			return config.File{}, err
		}
		cfg = f
	}

	p := &cfg.Simulation
	flags := cmd.Flags()
	overrides := []struct {
		name  string
		apply func() error
	}{
		{"nodes", func() error { return p.SetIdealNumNodes(g.nodes) }},
		{"extra-edges", func() error { return p.SetExtraEdgesPercent(g.extra) }},
		{"radii-power", func() error { return p.SetRadiiWeightPower(g.power) }},
		{"drift", func() error { return p.SetDriftSpeed(g.drift) }},
		{"repulsion", func() error { return p.SetRepulsion(g.repulsion) }},
		{"repulsion-force", func() error { return p.SetRepulsionForce(g.force) }},
		{"force-passes", func() error { return p.SetForcePasses(g.passes) }},
		{"method", func() error { return p.SetSpanningMethod(g.method) }},
	}
	for _, o := range overrides {
		if !flags.Changed(o.name) {
			continue
		}
		if err := o.apply(); err != nil {
			return config.File{}, fmt.Errorf("--%s: %w", o.name, err)
		}
	}
	if flags.Changed("seed") {
		p.Seed = g.seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}

	return cfg, nil
}

// logger builds the zap logger for cfg. fallback receives logs when no
// --log-file is given; the returned close func releases the file.
func (g *globals) logger(cfg config.File, fallback io.Writer) (*zap.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if g.logFile != "" {
		f, err := os.OpenFile(g.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	log, err := logging.New(cfg.Logging.Level, w)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return log, func() {
		_ = log.Sync()
		closeFn()
	}, nil
}
