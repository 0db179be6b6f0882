// Package dijkstra defines core types and configuration options
// for the grid uniform-cost baseline.
//
// Options:
//
//	– MaxDistance: optional cap on costs to explore; cells beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrForeignNode    if start or finish does not belong to the grid.
//	– ErrNoPath         if finish is unreachable.
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/jumppoint/grid"
)

// Sentinel errors returned by the baseline.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to ShortestPath.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrForeignNode indicates that start or finish is nil or belongs to another grid.
	ErrForeignNode = errors.New("dijkstra: node does not belong to the grid")

	// ErrNoPath indicates that finish cannot be reached from start under the mask.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is the outcome of a successful ShortestPath call.
type Result struct {
	Path     []*grid.Node // cells start → finish inclusive
	Cost     float64      // octile length of Path
	Expanded int          // cells finalized
}

// Options configures the behavior of ShortestPath.
//
// MaxDistance – optional cap on costs to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64 // Maximum cost to explore

	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum cost threshold.
// Cells whose shortest cost would exceed this value are not explored.
// Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
