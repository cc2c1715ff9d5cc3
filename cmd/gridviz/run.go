package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/render"
	"github.com/katalvlaran/gridviz/search"
)

func newRunCmd(gf *globalFlags) *cobra.Command {
	var (
		timeout  time.Duration
		showPath bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search to completion and print the grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gf.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := gf.newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			s, stop, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			defer stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			if timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			status, steps, err := s.RunToCompletion(ctx)
			if err != nil {
				return err
			}

			var path []grid.Pos
			if status == search.Found && showPath {
				if path, err = s.Path(); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.ASCII(s.Grid(), path))
			fmt.Fprintf(out, "status: %s\nsteps: %d\nvisited: %d\n", status, steps, s.Visited())
			if len(path) > 0 {
				fmt.Fprintf(out, "path length: %d\n", len(path)-1)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	cmd.Flags().BoolVar(&showPath, "path", true, "overlay the found path")
	return cmd
}
