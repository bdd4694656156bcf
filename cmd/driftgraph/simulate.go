package main

import (
	"fmt"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/frame"
)

func simulateCmd(g *globals) *cobra.Command {
	var (
		frames   int
		interval time.Duration
		width    float64
		height   float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation headless and print metrics",
		Long: `Run the frame driver on its real timer without drawing anything, then
print a summary and the collected metrics.

  driftgraph simulate --frames 500
  driftgraph simulate --frames 100 --interval 1ms --method prim`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1, got %d", frames)
			}
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
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

			reg := prometheus.NewRegistry()
			metrics, err := frame.NewMetrics(reg)
			if err != nil {
				return err
			}
			d, err := frame.NewDriver(cfg.Simulation,
				frame.WithLogger(log),
				frame.WithMetrics(metrics),
				frame.WithInterval(interval))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var last frame.Frame
			counter := frame.RenderFunc(func(f frame.Frame) error {
				last = f
				if f.Seq >= uint64(frames) {
					d.Stop()
				}
				return nil
			})

			start := time.Now()
			if err := d.Run(ctx, frame.FixedSize(core.Size{Width: width, Height: height}), counter); err != nil {
				return err
			}
			elapsed := time.Since(start)

			out := cmd.OutOrStdout()
			Brand.Fprintf(out, "driftgraph simulate")
			Subtle.Fprintf(out, "  run %s\n\n", d.RunID())
			fmt.Fprintf(out, "  frames  %d in %s\n", last.Seq, elapsed.Round(time.Millisecond))
			fmt.Fprintf(out, "  nodes   %d\n", len(last.Nodes))
			fmt.Fprintf(out, "  edges   %d\n\n", len(last.Edges))

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			table(out, []string{"METRIC", "VALUE"}, metricRows(families))
			fmt.Fprintln(out)
			Good.Fprintln(out, "  done")

			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 250, "frames to simulate")
	cmd.Flags().DurationVar(&interval, "interval", frame.DefaultInterval, "delay between frames")
	cmd.Flags().Float64Var(&width, "width", 1600, "viewport width")
	cmd.Flags().Float64Var(&height, "height", 900, "viewport height")

	return cmd
}

// metricRows flattens gathered families into name/value rows. Histograms
// contribute their sample count and mean.
func metricRows(families []*dto.MetricFamily) [][]string {
	var rows [][]string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				rows = append(rows, []string{mf.GetName(), fmt.Sprintf("%.0f", m.GetCounter().GetValue())})
			case dto.MetricType_GAUGE:
				rows = append(rows, []string{mf.GetName(), fmt.Sprintf("%.0f", m.GetGauge().GetValue())})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				mean := 0.0
				if h.GetSampleCount() > 0 {
					mean = h.GetSampleSum() / float64(h.GetSampleCount())
				}
				rows = append(rows,
					[]string{mf.GetName() + "_count", fmt.Sprintf("%d", h.GetSampleCount())},
					[]string{mf.GetName() + "_mean", time.Duration(mean * float64(time.Second)).String()},
				)
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	return rows
}
