// Package jps defines search outcomes, sentinel errors and the functional
// options of FindPath.
package jps

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
	"github.com/katalvlaran/jumppoint/memory"
)

// MaxNeighbors caps the candidate set a Strategy may return per expansion.
const MaxNeighbors = 8

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("jps: grid is nil")

	// ErrForeignNode indicates that start or finish is nil or not a node of the grid.
	ErrForeignNode = errors.New("jps: node does not belong to the grid")

	// ErrBlocked indicates that no path exists under the query mask.
	ErrBlocked = errors.New("jps: no path under mask")

	// ErrBadAlloc indicates that the allocator refused the open list or the
	// initial path buffer.
	ErrBadAlloc = errors.New("jps: allocation failed")

	// ErrBadRealloc indicates that the allocator refused growing the path buffer.
	ErrBadRealloc = errors.New("jps: reallocation failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("jps: invalid option supplied")
)

// Status is the outcome of one search.
type Status int

const (
	// StatusOK means a full path was reconstructed.
	StatusOK Status = iota
	// StatusBlocked means the finish is unreachable under the mask.
	StatusBlocked
	// StatusTrivial means start and finish are closer than two cells.
	StatusTrivial
	// StatusBadAlloc means the open list or the path buffer could not be reserved.
	StatusBadAlloc
	// StatusBadRealloc means the path buffer could not grow.
	StatusBadRealloc
	// StatusInvalid means the arguments or options were rejected.
	StatusInvalid
)

// String returns the snake_case name of s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBlocked:
		return "blocked"
	case StatusTrivial:
		return "trivial"
	case StatusBadAlloc:
		return "bad_alloc"
	case StatusBadRealloc:
		return "bad_realloc"
	case StatusInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Found reports whether the status carries a path.
func (s Status) Found() bool {
	return s == StatusOK || s == StatusTrivial
}

// Result holds the outcome of FindPath:
//   - Status: outcome classification.
//   - Path: cells from start to finish inclusive, nil unless Status.Found().
//   - Cost: octile length of the path (per the strategy's JumpCost).
//   - Expanded: nodes extracted from the open list.
//   - Jumps: jump scans performed.
type Result struct {
	Status   Status
	Path     []*grid.Node
	Cost     float64
	Expanded int
	Jumps    int
}

// Points returns the path as (x, y) pairs.
func (r Result) Points() [][2]int {
	if r.Path == nil {
		return nil
	}
	out := make([][2]int, len(r.Path))
	for i, n := range r.Path {
		out[i] = [2]int{n.X, n.Y}
	}
	return out
}

// Options configures FindPath.
//
// Strategy      – neighbors / jump cost / heuristic bundle (default Pruned+Euclidean).
// Allocator     – reservation policy for the open list and path buffers (default unlimited).
// Logger        – structured logger (default no-op).
// Labels        – optional components for the query mask; unconnected pairs fail fast.
// QueueCapacity – initial open-list capacity (default MaxNeighbors).
// OnExpand      – called with every node extracted from the open list.
type Options struct {
	Strategy      Strategy
	Allocator     memory.Allocator
	Logger        *Logger
	Labels        *grid.Labels
	QueueCapacity int
	OnExpand      func(n *grid.Node)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with the defaults listed on Options.
// Every call returns fresh values; there is no shared mutable default.
func DefaultOptions() Options {
	return Options{
		Strategy:      DefaultStrategy(),
		Allocator:     (*memory.Budget)(nil),
		Logger:        NoopLogger(),
		QueueCapacity: MaxNeighbors,
		OnExpand:      func(*grid.Node) {},
	}
}

// WithStrategy replaces the whole strategy bundle.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s == nil {
			o.fail("strategy is nil")
			return
		}
		o.Strategy = s
	}
}

// WithHeuristic keeps the pruned neighbor rule and octile jump cost but swaps
// the heuristic estimate.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			o.fail("heuristic is nil")
			return
		}
		o.Strategy = Pruned{Estimate: h}
	}
}

// WithAllocator sets the allocator used for the open list and the path buffer.
func WithAllocator(a memory.Allocator) Option {
	return func(o *Options) {
		if a != nil {
			o.Allocator = a
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLabels supplies precomputed components (grid.Grid.Label) for the query
// mask. FindPath rejects labels computed for another mask or another grid size.
func WithLabels(l *grid.Labels) Option {
	return func(o *Options) {
		o.Labels = l
	}
}

// WithQueueCapacity sets the initial open-list capacity.
//
//	n > 0:  initial capacity n
//	n <= 0: invalid option → ErrOptionViolation
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Sprintf("queue capacity must be positive (%d)", n))
			return
		}
		o.QueueCapacity = n
	}
}

// WithOnExpand registers a callback run on every extracted node.
func WithOnExpand(fn func(n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// fail records the first option violation.
func (o *Options) fail(msg string) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, msg)
	}
}
