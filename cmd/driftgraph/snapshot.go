package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/frame"
	"github.com/katalvlaran/driftgraph/render"
)

func snapshotCmd(g *globals) *cobra.Command {
	var (
		frames        int
		width, height float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write one SVG frame to stdout",
		Long: `Simulate a number of frames without delay and write the last one as SVG.

  driftgraph snapshot > graph.svg
  driftgraph snapshot --frames 500 --width 1920 --height 1080 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1, got %d", frames)
			}
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			log, done, err := g.logger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer done()

			d, err := frame.NewDriver(cfg.Simulation, frame.WithLogger(log))
			if err != nil {
				return err
			}
			size := core.Size{Width: width, Height: height}
			if err := d.Init(size); err != nil {
				return err
			}
			var f frame.Frame
			for i := 0; i < frames; i++ {
				if f, err = d.Step(size); err != nil {
					return err
				}
			}
			d.Stop()

			return render.NewSVG(cmd.OutOrStdout()).Render(f)
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 120, "frames to simulate before drawing")
	cmd.Flags().Float64Var(&width, "width", 1600, "viewport width")
	cmd.Flags().Float64Var(&height, "height", 900, "viewport height")

	return cmd
}
