package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/driftgraph/config"
)

func configCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := g.load(cmd)
				if err != nil {
					return err
				}
				return config.Encode(cmd.OutOrStdout(), cfg)
			},
		},
		&cobra.Command{
			Use:           "validate <file>",
			Short:         "Check a TOML or YAML configuration file",
			Args:          cobra.ExactArgs(1),
			SilenceErrors: true, // reported by the ✗ line below
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(args[0])
				if err != nil {
					Bad.Fprintf(cmd.ErrOrStderr(), "  ✗ %s: %v\n", args[0], err)
					return err
				}
				Good.Fprintf(cmd.OutOrStdout(), "  ✓ %s", args[0])
				Subtle.Fprintf(cmd.OutOrStdout(), "  %d nodes, %d extra edges, %s\n",
					cfg.Simulation.IdealNumNodes, cfg.Simulation.MaxExtraEdges(), cfg.Simulation.SpanningMethod)
				return nil
			},
		},
	)

	return cmd
}
