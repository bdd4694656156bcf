package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/driftgraph/frame"
)

func runCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Animate the graph in the terminal",
		Long: `Animate the graph full-screen in the terminal.

Logs are discarded unless --log-file is given, since the animation owns the
screen. Press q, esc or ctrl+c to quit.

  driftgraph run
  driftgraph run --nodes 120 --radii-power 1
  driftgraph run --repulsion --force-passes 3 --log-file /tmp/driftgraph.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			log, done, err := g.logger(cfg, io.Discard)
			if err != nil {
				return err
			}
			defer done()

			d, err := frame.NewDriver(cfg.Simulation, frame.WithLogger(log))
			if err != nil {
				return err
			}

			p := tea.NewProgram(newModel(d, frame.DefaultInterval), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(model); ok && m.err != nil {
				return m.err
			}

			return nil
		},
	}
}
