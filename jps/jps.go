package jps

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/memory"
	"github.com/katalvlaran/jumppoint/openlist"
)

// touchedPool recycles the ledger of nodes written by a search.
var touchedPool = sync.Pool{
	New: func() any { return roaring.New() },
}

// FindPath searches g for the cheapest path from start to finish that only
// crosses cells traversable under mask.
//
// Returns:
//
//   - res: Status plus, when Status.Found(), the cells start → finish inclusive.
//   - err: nil for StatusOK and StatusTrivial; otherwise wraps one of
//     ErrBlocked, ErrBadAlloc, ErrBadRealloc, ErrNilGrid, ErrForeignNode or
//     ErrOptionViolation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and finish must be nodes of g (ErrForeignNode).
//  4. Labels, if supplied, must match mask and the grid size (ErrOptionViolation).
//  5. start and finish must be traversable under mask (ErrBlocked).
//
// Every node written during the search is restored to its defaults before
// FindPath returns, whatever the outcome. The returned path aliases nodes of g
// whose transient fields are therefore already cleared.
//
// FindPath writes search state into the nodes of g and must not run
// concurrently with another search on the same grid. Use grid.Grid.Clone to
// search one layout from several goroutines.
//
// Complexity:
//
//   - Time:  O(V log V) worst case, usually far fewer expansions than A*.
//   - Space: O(J) for the open list and ledger, J = jump points touched.
func FindPath(g *grid.Grid, start, finish *grid.Node, mask grid.Mask, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{Status: StatusInvalid}, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return Result{Status: StatusInvalid}, ErrNilGrid
	}
	if !g.Contains(start) || !g.Contains(finish) {
		return Result{Status: StatusInvalid}, ErrForeignNode
	}
	if l := cfg.Labels; l != nil && (l.Mask != mask || l.Len() != len(g.Nodes)) {
		return Result{Status: StatusInvalid}, fmt.Errorf("%w: labels do not match query", ErrOptionViolation)
	}

	// 3) Answer Blocked without searching when the endpoints allow it
	if !grid.Traversable(start, mask) || !grid.Traversable(finish, mask) {
		res := Result{Status: StatusBlocked}
		err := fmt.Errorf("%w: endpoint not traversable", ErrBlocked)
		cfg.Logger.LogSearch(start, finish, res, err)
		return res, err
	}
	if l := cfg.Labels; l != nil && !l.Connected(g.Index(start), g.Index(finish)) {
		res := Result{Status: StatusBlocked}
		err := fmt.Errorf("%w: endpoints in different components", ErrBlocked)
		cfg.Logger.LogSearch(start, finish, res, err)
		return res, err
	}

	// 4) Search; cleanup restores every touched node on all exit paths
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		finish:  finish,
		mask:    mask,
		touched: touchedPool.Get().(*roaring.Bitmap),
		buf:     make([]*grid.Node, 0, MaxNeighbors),
	}
	defer r.cleanup()

	res, err := r.run()
	cfg.Logger.LogSearch(start, finish, res, err)

	return res, err
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid
	options Options
	start   *grid.Node
	finish  *grid.Node
	mask    grid.Mask

	open    *openlist.Queue
	touched *roaring.Bitmap // row-major indices of every node written
	buf     []*grid.Node    // neighbor scratch space

	expanded int
	jumps    int
}

func (r *runner) run() (Result, error) {
	if err := r.init(); err != nil {
		return r.result(StatusBadAlloc, nil, 0), err
	}

	found, err := r.process()
	if err != nil {
		return r.result(StatusBadAlloc, nil, 0), err
	}
	if !found {
		return r.result(StatusBlocked, nil, 0), ErrBlocked
	}

	cost := r.finish.G
	path, status, err := expandPath(r.g, r.start, r.finish, r.options.Allocator)
	if err != nil {
		return r.result(status, nil, 0), err
	}

	return r.result(status, path, cost), nil
}

// init reserves the open list and seeds it with start.
func (r *runner) init() error {
	q, err := openlist.New(r.options.Allocator, r.options.QueueCapacity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadAlloc, err)
	}
	r.open = q

	s := r.start
	r.touch(s)
	s.G = 0
	s.H = r.options.Strategy.Heuristic(s, r.finish)
	s.F = s.H
	s.Status |= grid.Opened

	if err := r.open.Insert(s); err != nil {
		return fmt.Errorf("%w: %w", ErrBadAlloc, err)
	}
	return nil
}

// process is the main loop. It reports whether finish was extracted.
//
// Loop termination conditions:
//
//   - finish is extracted (found).
//   - The open list becomes empty (blocked).
//   - The allocator refuses to grow the open list (error).
func (r *runner) process() (bool, error) {
	strategy := r.options.Strategy
	for {
		// 1) Pop the cheapest open node and close it
		cur := r.open.ExtractMin()
		if cur == nil {
			return false, nil
		}
		cur.Status |= grid.Closed
		r.expanded++
		r.options.OnExpand(cur)

		if cur == r.finish {
			return true, nil
		}

		// 2) Collect pruned neighbors
		r.buf = strategy.Neighbors(r.g, cur, r.mask, r.buf)
		neighbors := r.buf
		if len(neighbors) > MaxNeighbors {
			neighbors = neighbors[:MaxNeighbors]
		}

		// 3) Jump from each neighbor and relax the jump point
		for _, nb := range neighbors {
			r.jumps++
			jp := Jump(r.g, nb.X, nb.Y, sign(nb.X-cur.X), sign(nb.Y-cur.Y), r.finish, r.mask)
			if jp == nil || jp.Status&grid.Closed != 0 {
				continue
			}

			ng := cur.G + strategy.JumpCost(jp, cur)
			opened := jp.Status&grid.Opened != 0
			if opened && ng >= jp.G {
				continue
			}

			if !opened {
				r.touch(jp)
				jp.H = strategy.Heuristic(jp, r.finish)
			}
			jp.G = ng
			jp.F = ng + jp.H
			jp.Parent = r.g.Index(cur)

			if opened {
				r.open.DecreaseKey(jp)
				continue
			}
			jp.Status |= grid.Opened
			if err := r.open.Insert(jp); err != nil {
				return false, fmt.Errorf("%w: %w", ErrBadAlloc, err)
			}
		}
	}
}

func (r *runner) touch(n *grid.Node) {
	r.touched.Add(uint32(r.g.Index(n)))
}

func (r *runner) result(status Status, path []*grid.Node, cost float64) Result {
	return Result{
		Status:   status,
		Path:     path,
		Cost:     cost,
		Expanded: r.expanded,
		Jumps:    r.jumps,
	}
}

// cleanup resets every touched node and returns the queue and the ledger.
func (r *runner) cleanup() {
	it := r.touched.Iterator()
	for it.HasNext() {
		grid.ResetNode(r.g.At(int(it.Next())))
	}
	r.touched.Clear()
	touchedPool.Put(r.touched)

	if r.open != nil {
		r.open.Release()
	}
}

// Ensure the default budget type satisfies the allocator contract.
var _ memory.Allocator = (*memory.Budget)(nil)
