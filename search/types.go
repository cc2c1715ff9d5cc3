package search

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/gridviz/grid"
)

// Sentinel errors for search controllers.
var (
	// ErrSameEndpoints is returned by Reset when source equals target.
	ErrSameEndpoints = errors.New("search: source and target must differ")

	// ErrUnknownStrategy is returned by New and ParseKind for an unknown Kind.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrNoPath is returned by Path when the origin chain is broken.
	ErrNoPath = errors.New("search: no path to target")
)

// Stepper advances a grid search one unit of work at a time.
type Stepper interface {
	// Step performs one unit of work on g and reports whether the search is
	// done (found or exhausted).
	Step(g *grid.Grid) bool
	// Reset discards in-flight state and seeds a search from source.
	Reset(source, target grid.Pos) error
	// Status returns the current state of the search.
	Status() Status
}

// Status is the state of a Stepper.
type Status int

const (
	// Idle: never seeded.
	Idle Status = iota
	// Searching: the frontier queue may hold work.
	Searching
	// Found: the target was popped.
	Found
	// Exhausted: the queue emptied without reaching the target.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Done reports whether s is terminal.
func (s Status) Done() bool { return s == Found || s == Exhausted }

// Kind names a search strategy.
type Kind string

const (
	// KindBFS selects breadth-first search.
	KindBFS Kind = "bfs"
)

var registry = map[Kind]func(...Option) Stepper{
	KindBFS: func(opts ...Option) Stepper { return NewBFS(opts...) },
}

// New returns a fresh, Idle stepper for kind. Callers must Reset it before
// the first Step.
func New(kind Kind, opts ...Option) (Stepper, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
	return ctor(opts...), nil
}

// ParseKind validates a strategy name.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return k, nil
}

// Kinds lists the registered strategies in sorted order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Option configures a Stepper via functional arguments.
type Option func(*Options)

// Options holds hooks and settings shared by all strategies.
type Options struct {
	// Logger receives one Debug record per search event.
	Logger *slog.Logger

	// OnVisit is called after a position is marked visited.
	OnVisit func(p grid.Pos)

	// OnEnqueue is called when to is marked frontier while expanding from.
	OnEnqueue func(from, to grid.Pos)

	// RecordOrigins makes the stepper write origin bits on every cell it
	// discovers, which Path needs. Enabled by default.
	RecordOrigins bool
}

// DefaultOptions returns discard logging, no-op hooks and origin recording.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.DiscardHandler),
		OnVisit:       func(grid.Pos) {},
		OnEnqueue:     func(_, _ grid.Pos) {},
		RecordOrigins: true,
	}
}

// WithLogger sets the logger for search events.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback run after each visit.
func WithOnVisit(fn func(p grid.Pos)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run for each frontier extension.
func WithOnEnqueue(fn func(from, to grid.Pos)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithoutOrigins stops the stepper from writing origin bits.
func WithoutOrigins() Option {
	return func(o *Options) { o.RecordOrigins = false }
}
