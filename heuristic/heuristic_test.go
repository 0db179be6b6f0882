package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppoint/heuristic"
)

func TestHeuristics(t *testing.T) {
	cases := []struct {
		name   string
		fn     heuristic.Func
		dx, dy int
		want   float64
	}{
		{"EuclideanAxis", heuristic.Euclidean, 3, 0, 3},
		{"Euclidean345", heuristic.Euclidean, -3, 4, 5},
		{"Manhattan", heuristic.Manhattan, -3, 4, 7},
		{"Chebyshev", heuristic.Chebyshev, -3, 4, 4},
		{"OctileDiagonal", heuristic.Octile, 2, -2, 2 * math.Sqrt2},
		{"OctileMixed", heuristic.Octile, 1, 4, math.Sqrt2 + 3},
		{"OctileZero", heuristic.Octile, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.fn(tc.dx, tc.dy), 1e-12)
		})
	}
}

// TestAdmissible checks Euclidean and Chebyshev never exceed the octile cost.
func TestAdmissible(t *testing.T) {
	for dx := -6; dx <= 6; dx++ {
		for dy := -6; dy <= 6; dy++ {
			oct := heuristic.Octile(dx, dy)
			assert.LessOrEqual(t, heuristic.Euclidean(dx, dy), oct+1e-12)
			assert.LessOrEqual(t, heuristic.Chebyshev(dx, dy), oct+1e-12)
		}
	}
}

func TestByName(t *testing.T) {
	f, err := heuristic.ByName(" Chebyshev ")
	require.NoError(t, err)
	assert.Equal(t, 4.0, f(4, 1))

	_, err = heuristic.ByName("taxicab")
	assert.ErrorIs(t, err, heuristic.ErrUnknown)

	assert.Equal(t, []string{"chebyshev", "euclidean", "manhattan", "octile"}, heuristic.Names())
}
