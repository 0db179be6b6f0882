// Package heuristic provides distance estimates between grid cells.
//
// Every Func receives the coordinate deltas of two cells. Euclidean, Chebyshev
// and Octile never overestimate the octile cost of an 8-connected move, so
// they keep jump point search optimal. Manhattan may overestimate diagonal
// travel; it trades optimality for fewer expansions.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnknown is returned by ByName for an unregistered name.
var ErrUnknown = errors.New("heuristic: unknown heuristic")

// Sqrt2 is the cost of one diagonal step.
const Sqrt2 = math.Sqrt2

// Func estimates the distance covered by a (dx, dy) displacement.
type Func func(dx, dy int) float64

// Euclidean returns sqrt(dx²+dy²).
func Euclidean(dx, dy int) float64 {
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// Manhattan returns |dx|+|dy|.
func Manhattan(dx, dy int) float64 {
	return float64(abs(dx) + abs(dy))
}

// Chebyshev returns max(|dx|,|dy|).
func Chebyshev(dx, dy int) float64 {
	return float64(max(abs(dx), abs(dy)))
}

// Octile returns √2·min(|dx|,|dy|) + (max − min): diagonal steps cost √2,
// the remaining straight steps cost 1. It is the exact cost of a straight or
// diagonal jump and the tightest admissible estimate on open 8-connected grids.
func Octile(dx, dy int) float64 {
	ax, ay := abs(dx), abs(dy)
	lo, hi := min(ax, ay), max(ax, ay)
	return Sqrt2*float64(lo) + float64(hi-lo)
}

var registry = map[string]Func{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"octile":    Octile,
}

// ByName looks up a heuristic by case-insensitive name.
func ByName(name string) (Func, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered heuristic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
