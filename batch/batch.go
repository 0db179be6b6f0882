// Package batch runs many scenario searches against one map concurrently.
//
// A grid carries the transient state of the search running on it, so every
// worker searches its own grid.Grid.Clone. Workers are scheduled with an
// errgroup limited to Options.Workers; per-scenario failures are recorded on
// the Outcome and never abort the batch. Only context cancellation does.
package batch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jumppoint/dijkstra"
	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/jps"
	"github.com/katalvlaran/jumppoint/mapfile"
)

var (
	// ErrNilGrid indicates that Run received a nil grid.
	ErrNilGrid = errors.New("batch: grid is nil")
	// ErrOutOfBounds indicates a scenario endpoint outside the grid.
	ErrOutOfBounds = errors.New("batch: scenario endpoint out of bounds")
	// ErrMapMismatch indicates a scenario recorded for other map dimensions.
	ErrMapMismatch = errors.New("batch: scenario map dimensions differ from grid")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")
)

// Outcome is the result of one scenario.
type Outcome struct {
	Scenario mapfile.Scenario
	Status   jps.Status
	Cost     float64
	Length   int // cells on the path
	Expanded int
	Duration time.Duration
	Err      error // nil for found paths

	// Baseline fields are valid only when Baseline is set (WithBaseline).
	Baseline         bool
	BaselineCost     float64 // NaN when the baseline found no path
	BaselineExpanded int
	BaselineDuration time.Duration
}

// Options configures Run.
//
// Workers  – concurrent searches (default GOMAXPROCS).
// Mask     – query mask applied to every scenario (default 0).
// Search   – options forwarded to every jps.FindPath call.
// Baseline – also run the dijkstra baseline for every scenario.
// Logger   – batch-level logger (default no-op).
type Options struct {
	Workers  int
	Mask     grid.Mask
	Search   []jps.Option
	Baseline bool
	Logger   *jps.Logger

	err error
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns Options with the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  jps.NoopLogger(),
	}
}

// WithWorkers sets the number of concurrent searches; n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMask sets the query mask.
func WithMask(m grid.Mask) Option {
	return func(o *Options) {
		o.Mask = m
	}
}

// WithSearchOptions appends options forwarded to jps.FindPath.
func WithSearchOptions(opts ...jps.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithBaseline enables the dijkstra baseline.
func WithBaseline() Option {
	return func(o *Options) {
		o.Baseline = true
	}
}

// WithLogger sets the batch logger.
func WithLogger(l *jps.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Run searches every scenario on g and returns one Outcome per scenario, in
// input order. g itself is never searched, only its clones.
//
// Returns ErrNilGrid, ErrOptionViolation, or the context error when ctx is
// cancelled before all scenarios ran.
func Run(ctx context.Context, g *grid.Grid, scenarios []mapfile.Scenario, opts ...Option) ([]Outcome, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	workers := min(cfg.Workers, max(len(scenarios), 1))
	clones := make(chan *grid.Grid, workers)
	for i := 0; i < workers; i++ {
		clones <- g.Clone()
	}

	out := make([]Outcome, len(scenarios))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	started := time.Now()
	for i := range scenarios {
		if egCtx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			c := <-clones
			defer func() { clones <- c }()

			out[i] = runOne(c, scenarios[i], &cfg)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := Summarize(out)
	cfg.Logger.Info("batch completed",
		"scenarios", s.Total,
		"found", s.Found,
		"blocked", s.Blocked,
		"failed", s.Failed,
		"workers", workers,
		"elapsed", time.Since(started),
	)

	return out, nil
}

func runOne(g *grid.Grid, sc mapfile.Scenario, cfg *Options) Outcome {
	o := Outcome{Scenario: sc, BaselineCost: math.NaN()}
	// Zero dimensions mean the scenario did not record them.
	if (sc.Width != 0 || sc.Height != 0) && (sc.Width != g.Width || sc.Height != g.Height) {
		o.Status = jps.StatusInvalid
		o.Err = fmt.Errorf("%w: scenario %dx%d, grid %dx%d", ErrMapMismatch,
			sc.Width, sc.Height, g.Width, g.Height)
		return o
	}
	start := g.Node(sc.Start[0], sc.Start[1])
	finish := g.Node(sc.Goal[0], sc.Goal[1])
	if start == nil || finish == nil {
		o.Status = jps.StatusInvalid
		o.Err = fmt.Errorf("%w: (%d,%d)->(%d,%d)", ErrOutOfBounds,
			sc.Start[0], sc.Start[1], sc.Goal[0], sc.Goal[1])
		return o
	}

	t0 := time.Now()
	res, err := jps.FindPath(g, start, finish, cfg.Mask, cfg.Search...)
	o.Duration = time.Since(t0)
	o.Status = res.Status
	o.Cost = res.Cost
	o.Length = len(res.Path)
	o.Expanded = res.Expanded
	o.Err = err

	if cfg.Baseline {
		o.Baseline = true
		t0 = time.Now()
		base, err := dijkstra.ShortestPath(g, start, finish, cfg.Mask)
		o.BaselineDuration = time.Since(t0)
		o.BaselineExpanded = base.Expanded
		if err == nil {
			o.BaselineCost = base.Cost
		}
	}

	return o
}
