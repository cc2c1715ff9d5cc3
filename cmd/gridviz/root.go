package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridviz/config"
	"github.com/katalvlaran/gridviz/session"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	size        int
	fill        float64
	seed        int64
	strategy    string
	logLevel    string
	logFile     string
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:          "gridviz",
		Short:        "Step-by-step grid search visualiser",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "gridviz.yaml", "path to the YAML config file")
	pf.IntVar(&gf.size, "size", 0, "grid side length (overrides config)")
	pf.Float64Var(&gf.fill, "fill", 0, "wall probability in [0,1] (overrides config)")
	pf.Int64Var(&gf.seed, "seed", 0, "wall generator seed, 0 for time-based (overrides config)")
	pf.StringVar(&gf.strategy, "strategy", "", "search strategy (overrides config)")
	pf.StringVar(&gf.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&gf.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVar(&gf.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port (overrides config)")

	root.AddCommand(newPlayCmd(gf), newRunCmd(gf), newConfigCmd(gf))
	return root
}

// loadConfig reads the config file and applies flags the user set.
func (gf *globalFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = gf.size
	}
	if flags.Changed("fill") {
		cfg.FillPercent = gf.fill
	}
	if flags.Changed("seed") {
		cfg.Seed = gf.seed
	}
	if flags.Changed("strategy") {
		cfg.Strategy = gf.strategy
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = gf.logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = gf.metricsAddr
	}
	return cfg, cfg.Validate()
}

// newLogger builds a text logger on w, or on --log-file when given.
// The returned closer must be called on exit.
func (gf *globalFlags) newLogger(cfg config.Config, w io.Writer) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }
	if gf.logFile != "" {
		f, err := os.OpenFile(gf.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open the log file: %w", err)
		}
		w, closer = f, f.Close
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})
	return slog.New(h), closer, nil
}

// newSession wires config, logger and metrics into a Session and starts the
// metrics endpoint when configured. stop shuts the endpoint down.
func newSession(cfg config.Config, logger *slog.Logger) (s *session.Session, stop func(), err error) {
	reg := prometheus.NewRegistry()
	metrics := session.NewMetrics(reg)
	s, err = session.New(cfg, session.WithLogger(logger), session.WithMetrics(metrics))
	if err != nil {
		return nil, func() {}, err
	}
	if cfg.MetricsAddr == "" {
		return s, func() {}, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", cfg.MetricsAddr, "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", cfg.MetricsAddr)
	stop = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return s, stop, nil
}
