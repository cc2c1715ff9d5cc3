package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridviz/config"
	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/search"
)

const (
	// MinSize and MaxSize bound SetSize.
	MinSize = 2
	MaxSize = 200

	sourceFrac = 0.2
	targetFrac = 0.8
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger; it is also handed to the stepper.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithSearchOptions passes extra options to every stepper the session builds.
func WithSearchOptions(opts ...search.Option) Option {
	return func(s *Session) { s.searchOpts = append(s.searchOpts, opts...) }
}

// Session is the visualiser state.
type Session struct {
	cfg        config.Config
	grid       *grid.Grid
	stepper    search.Stepper
	kind       search.Kind
	searchOpts []search.Option

	// Paused stops the driver from calling Step.
	Paused bool

	size     int
	fill     float64
	rng      *rand.Rand
	runID    uuid.UUID
	source   grid.Pos
	target   grid.Pos
	reported bool

	logger  *slog.Logger
	metrics *Metrics
}

// New validates cfg, builds the stepper and generates the first layout.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Session{
		cfg:    cfg,
		kind:   cfg.Kind(),
		size:   cfg.Size,
		fill:   cfg.FillPercent,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	stepper, err := s.newStepper(s.kind)
	if err != nil {
		return nil, err
	}
	s.stepper = stepper
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	s.Paused = cfg.StartPaused
	return s, nil
}

func (s *Session) newStepper(kind search.Kind) (search.Stepper, error) {
	opts := append([]search.Option{search.WithLogger(s.logger)}, s.searchOpts...)
	return search.New(kind, opts...)
}

// Regenerate pauses, builds a fresh size×size grid with random walls and
// places the source at 20% and the target at 80% of the diagonal. The two
// endpoint cells are always open.
func (s *Session) Regenerate() error {
	s.Paused = true
	g, err := grid.New(s.size, s.size)
	if err != nil {
		return err
	}
	g.Regenerate(func(_, _ int) bool { return s.rng.Float64() < s.fill })

	sr := int(float64(s.size) * sourceFrac)
	tr := int(float64(s.size) * targetFrac)
	src, dst := grid.Pos{Row: sr, Col: sr}, grid.Pos{Row: tr, Col: tr}
	for _, p := range []grid.Pos{src, dst} {
		if err := g.SetWall(p.Row, p.Col, false); err != nil {
			return err
		}
	}
	s.grid = g
	s.runID = uuid.New()
	if s.metrics != nil {
		s.metrics.Regenerations.Inc()
	}
	return s.SetEndpoints(src, dst)
}

// SetEndpoints moves the source and target and resets the stepper. Both
// endpoints are checked first: on error the grid, the stepper and Endpoints
// are unchanged. Grid flags from an earlier run are left alone; see Restart.
func (s *Session) SetEndpoints(src, dst grid.Pos) error {
	if !s.grid.InBounds(src.Row, src.Col) {
		return fmt.Errorf("session: source: %w: %v", grid.ErrInvalidCoordinate, src)
	}
	if !s.grid.InBounds(dst.Row, dst.Col) {
		return fmt.Errorf("session: target: %w: %v", grid.ErrInvalidCoordinate, dst)
	}
	// Reset leaves the stepper untouched on error, so nothing has changed yet.
	if err := s.stepper.Reset(src, dst); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	// both in bounds, cannot fail
	_ = s.grid.SetSource(src.Row, src.Col)
	_ = s.grid.SetTarget(dst.Row, dst.Col)
	s.source, s.target = src, dst
	s.reported = false
	if s.metrics != nil {
		s.metrics.VisitedCells.Set(0)
	}
	solvable, _ := s.grid.Connected(src, dst)
	s.logger.Info("search ready",
		"run_id", s.runID,
		"strategy", s.kind,
		"size", s.size,
		"fill", s.fill,
		"source", src,
		"target", dst,
		"solvable", solvable,
	)
	return nil
}

// Restart clears search marks on the current layout and re-seeds the
// stepper from the same endpoints.
func (s *Session) Restart() error {
	s.grid.ClearVisits()
	return s.SetEndpoints(s.source, s.target)
}

// SetStrategy switches to a fresh stepper of the given kind. The new stepper
// shares nothing with the old one and is reset on a cleared layout before
// first use.
func (s *Session) SetStrategy(kind search.Kind) error {
	stepper, err := s.newStepper(kind)
	if err != nil {
		return err
	}
	s.stepper = stepper
	s.kind = kind
	s.Paused = true
	return s.Restart()
}

// SetSize clamps n to [MinSize, MaxSize] and regenerates.
func (s *Session) SetSize(n int) error {
	s.size = min(max(n, MinSize), MaxSize)
	return s.Regenerate()
}

// SetFillPercent clamps p to [0, 1] and regenerates.
func (s *Session) SetFillPercent(p float64) error {
	s.fill = min(max(p, 0), 1)
	return s.Regenerate()
}

// TogglePaused flips the pause flag.
func (s *Session) TogglePaused() {
	s.Paused = !s.Paused
}

// Step runs one unit of search work and pauses the session once the search
// is done.
func (s *Session) Step() bool {
	running := !s.stepper.Status().Done()
	done := s.stepper.Step(s.grid)
	s.Paused = s.Paused || done
	if s.metrics != nil && running {
		s.metrics.Steps.Inc()
	}
	if done && !s.reported {
		s.report()
	}
	return done
}

// report logs and counts the outcome of a finished search once.
func (s *Session) report() {
	s.reported = true
	visited := s.Visited()
	status := s.stepper.Status()
	attrs := []any{"run_id", s.runID, "status", status, "visited", visited}
	if status == search.Found {
		if path, err := search.Path(s.grid, s.source, s.target); err == nil {
			attrs = append(attrs, "path_len", len(path))
		}
	}
	if err := s.Err(); err != nil {
		attrs = append(attrs, "err", err)
	}
	s.logger.Info("search done", attrs...)
	if s.metrics != nil {
		s.metrics.Searches.WithLabelValues(status.String()).Inc()
		s.metrics.VisitedCells.Set(float64(visited))
	}
}

// RunToCompletion steps until the search is done, ctx is cancelled, or
// rows×cols+1 steps have run. It ignores the pause flag and returns the
// final status and the number of steps taken.
func (s *Session) RunToCompletion(ctx context.Context) (search.Status, int, error) {
	limit := s.grid.Len() + 1
	for n := 1; n <= limit; n++ {
		select {
		case <-ctx.Done():
			return s.stepper.Status(), n - 1, ctx.Err()
		default:
		}
		if s.Step() {
			return s.stepper.Status(), n, s.Err()
		}
	}
	return s.stepper.Status(), limit, fmt.Errorf("session: search not done after %d steps", limit)
}

// StepDelay is the animation period: 5s / size³, never below cfg.MinTick.
func (s *Session) StepDelay() time.Duration {
	n := float64(s.size)
	d := time.Duration(float64(5*time.Second) / (n * n * n))
	return max(d, s.cfg.MinTick)
}

// Err returns the stepper's precondition error, if it reports one.
func (s *Session) Err() error {
	if e, ok := s.stepper.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// Visited counts cells carrying the visited flag.
func (s *Session) Visited() int {
	n := 0
	for c := range s.grid.Cells() {
		if s.grid.IsVisited(c.Row, c.Col) {
			n++
		}
	}
	return n
}

// Path returns the source→target route of a finished search.
func (s *Session) Path() ([]grid.Pos, error) {
	return search.Path(s.grid, s.source, s.target)
}

// Grid returns the current grid. It is replaced by Regenerate.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Status returns the stepper status.
func (s *Session) Status() search.Status { return s.stepper.Status() }

// Kind returns the active strategy.
func (s *Session) Kind() search.Kind { return s.kind }

// RunID identifies the current layout in logs.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Size returns the grid side length.
func (s *Session) Size() int { return s.size }

// FillPercent returns the wall probability.
func (s *Session) FillPercent() float64 { return s.fill }

// Endpoints returns the source and target.
func (s *Session) Endpoints() (src, dst grid.Pos) { return s.source, s.target }
