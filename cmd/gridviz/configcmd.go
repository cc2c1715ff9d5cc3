package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridviz/config"
)

func newConfigCmd(gf *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write the default config to --config",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := config.Save(gf.configPath, config.Default()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", gf.configPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective config after flags are applied",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := gf.loadConfig(cmd)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "size: %d\nfill_percent: %g\nseed: %d\nstrategy: %s\nmin_tick: %s\nstart_paused: %t\nlog_level: %s\n",
					cfg.Size, cfg.FillPercent, cfg.Seed, cfg.Strategy, cfg.MinTick, cfg.StartPaused, cfg.LogLevel)
				if cfg.MetricsAddr != "" {
					fmt.Fprintf(out, "metrics_addr: %s\n", cfg.MetricsAddr)
				}
				return nil
			},
		},
	)
	return cmd
}
