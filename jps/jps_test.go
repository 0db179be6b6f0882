package jps_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppoint/dijkstra"
	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
	"github.com/katalvlaran/jumppoint/jps"
	"github.com/katalvlaran/jumppoint/memory"
)

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	return g
}

// requireValidPath checks endpoints, 8-adjacency, traversability and that the
// step costs add up to cost.
func requireValidPath(t *testing.T, path []*grid.Node, start, finish *grid.Node, mask grid.Mask, cost float64) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Same(t, start, path[0])
	require.Same(t, finish, path[len(path)-1])

	sum := 0.0
	for i, n := range path {
		require.True(t, grid.Traversable(n, mask), "cell (%d,%d) not traversable", n.X, n.Y)
		if i == 0 {
			continue
		}
		dx, dy := n.X-path[i-1].X, n.Y-path[i-1].Y
		require.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0),
			"step %d: (%d,%d) -> (%d,%d) not adjacent", i, path[i-1].X, path[i-1].Y, n.X, n.Y)
		sum += heuristic.Octile(dx, dy)
	}
	require.InDelta(t, cost, sum, 1e-9)
}

// randomGrid returns an n×n grid with walls at the given density.
func randomGrid(r *rand.Rand, n int, density float64) *grid.Grid {
	g, _ := grid.New(n, n)
	for i := range g.Nodes {
		if r.Float64() < density {
			g.Nodes[i].Mask = grid.Solid
		}
	}
	return g
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestFindPath_Validation(t *testing.T) {
	g := mustParse(t, "...", "...")
	other := g.Clone()

	cases := []struct {
		name   string
		g      *grid.Grid
		start  *grid.Node
		finish *grid.Node
		opts   []jps.Option
		err    error
	}{
		{"NilGrid", nil, nil, nil, nil, jps.ErrNilGrid},
		{"NilStart", g, nil, g.Node(1, 1), nil, jps.ErrForeignNode},
		{"ForeignFinish", g, g.Node(0, 0), other.Node(2, 1), nil, jps.ErrForeignNode},
		{"NilStrategy", g, g.Node(0, 0), g.Node(2, 1), []jps.Option{jps.WithStrategy(nil)}, jps.ErrOptionViolation},
		{"NilHeuristic", g, g.Node(0, 0), g.Node(2, 1), []jps.Option{jps.WithHeuristic(nil)}, jps.ErrOptionViolation},
		{"ZeroQueue", g, g.Node(0, 0), g.Node(2, 1), []jps.Option{jps.WithQueueCapacity(0)}, jps.ErrOptionViolation},
		{"LabelsOtherMask", g, g.Node(0, 0), g.Node(2, 1), []jps.Option{jps.WithLabels(g.Label(7))}, jps.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := jps.FindPath(tc.g, tc.start, tc.finish, 0, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, jps.StatusInvalid, res.Status)
			assert.Nil(t, res.Path)
		})
	}
}

//----------------------------------------------------------------------------//
// Outcomes
//----------------------------------------------------------------------------//

// TestFindPath_OpenDiagonal runs the corner-to-corner search on an open 5×5 grid.
func TestFindPath_OpenDiagonal(t *testing.T) {
	g := mustParse(t,
		".....",
		".....",
		".....",
		".....",
		".....",
	)
	start, finish := g.Node(0, 0), g.Node(4, 4)

	res, err := jps.FindPath(g, start, finish, 0)
	require.NoError(t, err)
	assert.Equal(t, jps.StatusOK, res.Status)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, res.Points())
	assert.InDelta(t, 4*math.Sqrt2, res.Cost, 1e-9)
	assert.Equal(t, 2, res.Expanded)
	requireValidPath(t, res.Path, start, finish, 0, res.Cost)
}

func TestFindPath_AroundWall(t *testing.T) {
	g := mustParse(t,
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	start, finish := g.Node(0, 0), g.Node(4, 0)

	res, err := jps.FindPath(g, start, finish, 0)
	require.NoError(t, err)
	assert.Equal(t, jps.StatusOK, res.Status)

	want, err := dijkstra.ShortestPath(g, start, finish, 0)
	require.NoError(t, err)
	assert.InDelta(t, want.Cost, res.Cost, 1e-9)
	requireValidPath(t, res.Path, start, finish, 0, res.Cost)
}

func TestFindPath_Blocked(t *testing.T) {
	g := mustParse(t,
		"..#..",
		"..#..",
		"..#..",
	)

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(4, 2), 0)
	assert.ErrorIs(t, err, jps.ErrBlocked)
	assert.Equal(t, jps.StatusBlocked, res.Status)
	assert.Nil(t, res.Path)
	assert.Positive(t, res.Expanded)
}

func TestFindPath_BlockedEndpoint(t *testing.T) {
	g := mustParse(t, "...#")

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(3, 0), 0)
	assert.ErrorIs(t, err, jps.ErrBlocked)
	assert.Equal(t, jps.StatusBlocked, res.Status)
	assert.Zero(t, res.Expanded)

	res, err = jps.FindPath(g, g.Node(3, 0), g.Node(0, 0), 0)
	assert.ErrorIs(t, err, jps.ErrBlocked)
	assert.Zero(t, res.Expanded)
}

func TestFindPath_Trivial(t *testing.T) {
	g := mustParse(t, "...", "...")

	cases := []struct {
		name string
		to   [2]int
		want [][2]int
	}{
		{"SameCell", [2]int{0, 0}, [][2]int{{0, 0}}},
		{"Horizontal", [2]int{1, 0}, [][2]int{{0, 0}, {1, 0}}},
		{"Diagonal", [2]int{1, 1}, [][2]int{{0, 0}, {1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := jps.FindPath(g, g.Node(0, 0), g.Node(tc.to[0], tc.to[1]), 0)
			require.NoError(t, err)
			assert.Equal(t, jps.StatusTrivial, res.Status)
			assert.True(t, res.Status.Found())
			assert.Equal(t, tc.want, res.Points())
		})
	}
}

// TestFindPath_Mask checks that class cells open only for queries holding the class.
func TestFindPath_Mask(t *testing.T) {
	g := mustParse(t,
		"..1..",
		"..1..",
		"..2..",
	)
	start, finish := g.Node(0, 1), g.Node(4, 1)

	res, err := jps.FindPath(g, start, finish, 0)
	assert.ErrorIs(t, err, jps.ErrBlocked)
	assert.Equal(t, jps.StatusBlocked, res.Status)

	res, err = jps.FindPath(g, start, finish, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
	requireValidPath(t, res.Path, start, finish, 1, res.Cost)

	// Holding more classes than required still passes.
	res, err = jps.FindPath(g, start, finish, 1|2|4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
}

//----------------------------------------------------------------------------//
// Allocation failures
//----------------------------------------------------------------------------//

func TestFindPath_BadAllocOnReserve(t *testing.T) {
	g := mustParse(t, ".....", ".....")
	before := g.Snapshot()
	budget := memory.NewBudget(1)

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(4, 1), 0, jps.WithAllocator(budget))
	assert.Equal(t, jps.StatusBadAlloc, res.Status)
	assert.ErrorIs(t, err, jps.ErrBadAlloc)
	assert.ErrorIs(t, err, memory.ErrLimitExceeded)
	assert.Equal(t, before, g.Snapshot())
	assert.Zero(t, budget.InUse())
}

// TestFindPath_BadAllocOnGrowth makes the first expansion open two jump points
// into a queue reserved for one.
func TestFindPath_BadAllocOnGrowth(t *testing.T) {
	g := mustParse(t,
		"..#..",
		".....",
		".....",
	)
	before := g.Snapshot()
	budget := memory.NewBudget(memory.Slots(1))

	res, err := jps.FindPath(g, g.Node(0, 1), g.Node(4, 2), 0,
		jps.WithAllocator(budget), jps.WithQueueCapacity(1))
	assert.Equal(t, jps.StatusBadAlloc, res.Status)
	assert.ErrorIs(t, err, jps.ErrBadAlloc)
	assert.Nil(t, res.Path)
	assert.Equal(t, before, g.Snapshot(), "every touched node must be reset")
	assert.Zero(t, budget.InUse())
}

// TestFindPath_BadRealloc lets the queue and the initial path estimate fit but
// refuses the path buffer growth.
func TestFindPath_BadRealloc(t *testing.T) {
	g := mustParse(t, "..........")
	before := g.Snapshot()
	// 8 queue slots + 9 path slots (distance 9, 10 cells).
	budget := memory.NewBudget(memory.Slots(jps.MaxNeighbors) + memory.Slots(9))

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(9, 0), 0, jps.WithAllocator(budget))
	assert.Equal(t, jps.StatusBadRealloc, res.Status)
	assert.ErrorIs(t, err, jps.ErrBadRealloc)
	assert.False(t, errors.Is(err, jps.ErrBadAlloc))
	assert.Nil(t, res.Path)
	assert.Equal(t, before, g.Snapshot())
	assert.Zero(t, budget.InUse())
}

func TestFindPath_ReleasesBudget(t *testing.T) {
	g := mustParse(t,
		"..#....",
		"..#.##.",
		"....#..",
	)
	budget := memory.NewBudget(0)

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(6, 0), 0, jps.WithAllocator(budget))
	require.NoError(t, err)
	assert.Equal(t, jps.StatusOK, res.Status)
	assert.Zero(t, budget.InUse())
	assert.Positive(t, budget.Peak())
}

//----------------------------------------------------------------------------//
// Grid state and options
//----------------------------------------------------------------------------//

func TestFindPath_ResetsGrid(t *testing.T) {
	g := mustParse(t,
		"...#....",
		".#.#.##.",
		".#...#..",
		".####...",
	)
	before := g.Snapshot()

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(7, 3), 0)
	require.NoError(t, err)
	require.True(t, res.Status.Found())
	assert.Equal(t, before, g.Snapshot())
	for _, n := range res.Path {
		assert.Equal(t, grid.NoParent, n.Parent)
		assert.Equal(t, grid.Unvisited, n.Status)
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := randomGrid(r, 40, 0.25)
	g.Node(0, 0).Mask, g.Node(39, 39).Mask = 0, 0

	first, err1 := jps.FindPath(g, g.Node(0, 0), g.Node(39, 39), 0)
	second, err2 := jps.FindPath(g, g.Node(0, 0), g.Node(39, 39), 0)
	assert.Equal(t, err1, err2)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Points(), second.Points())
	assert.Equal(t, first.Expanded, second.Expanded)
}

// TestFindPath_MonotoneF checks that extracted F values never decrease under
// the consistent Euclidean estimate.
func TestFindPath_MonotoneF(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := randomGrid(r, 30, 0.2)
	g.Node(0, 0).Mask, g.Node(29, 29).Mask = 0, 0

	last := math.Inf(-1)
	expanded := 0
	res, _ := jps.FindPath(g, g.Node(0, 0), g.Node(29, 29), 0,
		jps.WithOnExpand(func(n *grid.Node) {
			assert.GreaterOrEqual(t, n.F, last-1e-9)
			last = n.F
			expanded++
		}))
	assert.Equal(t, res.Expanded, expanded)
}

func TestFindPath_LabelsFastPath(t *testing.T) {
	g := mustParse(t,
		"..#..",
		"..#..",
		"..#..",
	)
	labels := g.Label(0)
	calls := 0

	res, err := jps.FindPath(g, g.Node(0, 0), g.Node(4, 0), 0,
		jps.WithLabels(labels),
		jps.WithOnExpand(func(*grid.Node) { calls++ }))
	assert.ErrorIs(t, err, jps.ErrBlocked)
	assert.Equal(t, jps.StatusBlocked, res.Status)
	assert.Zero(t, calls)

	res, err = jps.FindPath(g, g.Node(0, 0), g.Node(1, 2), 0, jps.WithLabels(labels))
	require.NoError(t, err)
	assert.Equal(t, jps.StatusOK, res.Status)
}

func TestFindPath_Heuristics(t *testing.T) {
	g := mustParse(t,
		"......#...",
		".####.#.#.",
		"......#.#.",
		".######.#.",
		"........#.",
	)
	start, finish := g.Node(0, 0), g.Node(9, 4)
	want, err := dijkstra.ShortestPath(g, start, finish, 0)
	require.NoError(t, err)

	// Manhattan may overestimate diagonal moves, so only admissible estimates
	// are required to match the optimum.
	for _, name := range []string{"euclidean", "octile", "chebyshev"} {
		t.Run(name, func(t *testing.T) {
			h, err := heuristic.ByName(name)
			require.NoError(t, err)
			res, err := jps.FindPath(g, start, finish, 0, jps.WithHeuristic(h))
			require.NoError(t, err)
			assert.InDelta(t, want.Cost, res.Cost, 1e-9)
			requireValidPath(t, res.Path, start, finish, 0, res.Cost)
		})
	}

	res, err := jps.FindPath(g, start, finish, 0, jps.WithHeuristic(heuristic.Manhattan))
	require.NoError(t, err)
	requireValidPath(t, res.Path, start, finish, 0, res.Cost)
}

//----------------------------------------------------------------------------//
// Agreement with the uniform-cost baseline
//----------------------------------------------------------------------------//

// TestFindPath_MatchesDijkstra compares outcomes and costs on seeded random
// grids with walls and two traversal classes.
func TestFindPath_MatchesDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 60; round++ {
		n := 8 + r.Intn(25)
		g := randomGrid(r, n, 0.3)
		for i := range g.Nodes {
			if g.Nodes[i].Mask == 0 && r.Intn(8) == 0 {
				g.Nodes[i].Mask = grid.Mask(1 << r.Intn(2))
			}
		}
		mask := grid.Mask(r.Intn(4))
		start := g.At(r.Intn(len(g.Nodes)))
		finish := g.At(r.Intn(len(g.Nodes)))

		want, wantErr := dijkstra.ShortestPath(g, start, finish, mask)
		got, err := jps.FindPath(g, start, finish, mask)

		if wantErr != nil {
			require.ErrorIs(t, wantErr, dijkstra.ErrNoPath)
			require.ErrorIs(t, err, jps.ErrBlocked, "round %d", round)
			require.Equal(t, jps.StatusBlocked, got.Status)
			continue
		}
		require.NoError(t, err, "round %d", round)
		require.True(t, got.Status.Found())
		require.InDelta(t, want.Cost, got.Cost, 1e-6, "round %d: (%d,%d)->(%d,%d)",
			round, start.X, start.Y, finish.X, finish.Y)
		requireValidPath(t, got.Path, start, finish, mask, got.Cost)
	}
}
