// Package config loads the gridviz settings from YAML and validates them.
//
// A missing file is not an error: Load falls back to Default. Fields absent
// from the file keep their default values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridviz/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the session and driver settings.
type Config struct {
	// Size is the side length of the square grid; at least 2 so source and
	// target differ.
	Size int `yaml:"size" validate:"min=2,max=200"`
	// FillPercent is the probability that a cell becomes a wall.
	FillPercent float64 `yaml:"fill_percent" validate:"gte=0,lte=1"`
	// Seed feeds the wall generator; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// Strategy names the search strategy (see search.Kinds).
	Strategy string `yaml:"strategy" validate:"required,strategy"`
	// MinTick is the lower bound of the animation step delay.
	MinTick time.Duration `yaml:"min_tick" validate:"gt=0"`
	// StartPaused keeps the animation paused until the user starts it.
	StartPaused bool `yaml:"start_paused"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// MetricsAddr, when set, serves Prometheus metrics on host:port.
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in settings: a 25×25 grid with 30% walls.
func Default() Config {
	return Config{
		Size:        25,
		FillPercent: 0.3,
		Strategy:    string(search.KindBFS),
		MinTick:     10 * time.Millisecond,
		StartPaused: true,
		LogLevel:    "info",
	}
}

// Load reads the YAML file at path on top of Default and validates the
// result. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := search.ParseKind(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("config: register strategy validator: %v", err))
	}
	return v
}

// Validate checks field ranges and the strategy name.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Level maps LogLevel to a slog.Level, defaulting to Info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Kind returns the validated strategy kind.
func (c Config) Kind() search.Kind {
	return search.Kind(c.Strategy)
}
