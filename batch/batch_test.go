package batch_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppoint/batch"
	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/jps"
	"github.com/katalvlaran/jumppoint/mapfile"
)

func scenario(sx, sy, gx, gy int) mapfile.Scenario {
	return mapfile.Scenario{Start: [2]int{sx, sy}, Goal: [2]int{gx, gy}}
}

func TestRun_Validation(t *testing.T) {
	_, err := batch.Run(context.Background(), nil, nil)
	assert.ErrorIs(t, err, batch.ErrNilGrid)

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = batch.Run(context.Background(), g, nil, batch.WithWorkers(0))
	assert.ErrorIs(t, err, batch.ErrOptionViolation)
}

func TestRun_Outcomes(t *testing.T) {
	g, err := grid.Parse(
		"..#..",
		"..#..",
		".....",
		"###.#",
		"..#..",
	)
	require.NoError(t, err)
	before := g.Snapshot()

	scenarios := []mapfile.Scenario{
		scenario(0, 0, 4, 0), // around the wall
		scenario(0, 0, 0, 0), // trivial
		scenario(0, 0, 0, 4), // sealed bottom-left pocket
		scenario(0, 0, 9, 9), // out of bounds
		scenario(0, 0, 2, 0), // wall endpoint
		scenario(4, 4, 0, 2), // through the gap at (3,3)
	}
	out, err := batch.Run(context.Background(), g, scenarios, batch.WithWorkers(3), batch.WithBaseline())
	require.NoError(t, err)
	require.Len(t, out, len(scenarios))

	assert.Equal(t, jps.StatusOK, out[0].Status)
	assert.InDelta(t, out[0].BaselineCost, out[0].Cost, 1e-9)
	assert.Equal(t, jps.StatusTrivial, out[1].Status)
	assert.Equal(t, 1, out[1].Length)
	assert.Equal(t, jps.StatusBlocked, out[2].Status)
	assert.ErrorIs(t, out[2].Err, jps.ErrBlocked)
	assert.True(t, math.IsNaN(out[2].BaselineCost))
	assert.Equal(t, jps.StatusInvalid, out[3].Status)
	assert.ErrorIs(t, out[3].Err, batch.ErrOutOfBounds)
	assert.Equal(t, jps.StatusBlocked, out[4].Status)
	assert.Equal(t, jps.StatusOK, out[5].Status)

	for i, o := range out {
		assert.Equal(t, scenarios[i], o.Scenario, "outcomes keep input order")
	}
	assert.Equal(t, before, g.Snapshot(), "the shared grid is never searched")

	s := batch.Summarize(out)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 3, s.Found)
	assert.Equal(t, 2, s.Blocked)
	assert.Equal(t, 1, s.Failed)
	assert.Zero(t, s.Mismatches)
	assert.Positive(t, s.BaselineExpanded)
}

// TestRun_MatchesBaseline runs many random scenarios on several workers and
// expects no disagreement with the baseline.
func TestRun_MatchesBaseline(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 48
	g, err := grid.New(n, n)
	require.NoError(t, err)
	for i := range g.Nodes {
		if r.Intn(4) == 0 {
			g.Nodes[i].Mask = grid.Solid
		}
	}
	scenarios := make([]mapfile.Scenario, 200)
	for i := range scenarios {
		scenarios[i] = scenario(r.Intn(n), r.Intn(n), r.Intn(n), r.Intn(n))
	}

	out, err := batch.Run(context.Background(), g, scenarios, batch.WithWorkers(8), batch.WithBaseline())
	require.NoError(t, err)

	s := batch.Summarize(out)
	assert.Equal(t, len(scenarios), s.Total)
	assert.Zero(t, s.Mismatches)
	assert.Zero(t, s.Failed)
}

func TestRun_CompletesWithoutError(t *testing.T) {
	g, err := grid.New(8, 8)
	require.NoError(t, err)

	out, err := batch.Run(context.Background(), g, []mapfile.Scenario{scenario(0, 0, 7, 7)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, jps.StatusOK, out[0].Status)
	assert.InDelta(t, 7*math.Sqrt2, out[0].Cost, 1e-9)

	// More scenarios than workers, still in input order.
	scenarios := make([]mapfile.Scenario, 32)
	for i := range scenarios {
		scenarios[i] = scenario(0, i%8, 7, (i*3)%8)
	}
	out, err = batch.Run(context.Background(), g, scenarios, batch.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, out, len(scenarios))
	for i, o := range out {
		assert.Equal(t, scenarios[i], o.Scenario)
		assert.Equal(t, jps.StatusOK, o.Status)
	}
}

func TestRun_MapMismatch(t *testing.T) {
	g, err := grid.New(8, 8)
	require.NoError(t, err)

	matching := scenario(0, 0, 7, 7)
	matching.Width, matching.Height = 8, 8
	other := scenario(0, 0, 7, 7)
	other.Width, other.Height = 16, 8

	out, err := batch.Run(context.Background(), g, []mapfile.Scenario{matching, other})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, jps.StatusOK, out[0].Status)
	assert.Equal(t, jps.StatusInvalid, out[1].Status)
	assert.ErrorIs(t, out[1].Err, batch.ErrMapMismatch)
}

func TestRun_Cancelled(t *testing.T) {
	g, err := grid.New(16, 16)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = batch.Run(ctx, g, []mapfile.Scenario{scenario(0, 0, 15, 15)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary_Speedup(t *testing.T) {
	assert.Zero(t, batch.Summary{}.Speedup())
	assert.Equal(t, 4.0, batch.Summary{Expanded: 10, BaselineExpanded: 40}.Speedup())
}
