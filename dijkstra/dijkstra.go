package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
)

// ShortestPath computes the cheapest 8-connected path from start to finish
// over cells traversable under mask.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and finish must be nodes of g (ErrForeignNode).
//  4. start and finish must be traversable under mask (ErrNoPath).
//
// The grid is read only; no node field is written.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func ShortestPath(g *grid.Grid, start, finish *grid.Node, mask grid.Mask, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.Contains(start) || !g.Contains(finish) {
		return Result{}, ErrForeignNode
	}
	if !grid.Traversable(start, mask) || !grid.Traversable(finish, mask) {
		return Result{}, fmt.Errorf("%w: endpoint not traversable", ErrNoPath)
	}

	// 3) Prepare per-call state; the grid itself stays untouched.
	V := len(g.Nodes)
	r := &runner{
		g:       g,
		options: cfg,
		mask:    mask,
		dist:    make([]float64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, 64),
	}

	src, dst := g.Index(start), g.Index(finish)
	r.init(src)
	if !r.process(dst) {
		return Result{Expanded: r.expanded}, ErrNoPath
	}

	return Result{
		Path:     r.path(dst),
		Cost:     r.dist[dst],
		Expanded: r.expanded,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *grid.Grid
	options  Options
	mask     grid.Mask
	dist     []float64 // best known cost per cell index
	prev     []int     // predecessor per cell index, grid.NoParent if none
	visited  []bool    // finalized cells
	pq       nodePQ
	expanded int
}

// init sets every distance to +Inf and pushes src with cost 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = grid.NoParent
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process pops cells in order of cost until dst is finalized.
//
// Loop termination conditions:
//
//   - dst is popped (found).
//   - The heap becomes empty.
//   - The minimum cost in the heap exceeds MaxDistance.
func (r *runner) process(dst int) bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return false
		}
		r.visited[u] = true
		r.expanded++

		if u == dst {
			return true
		}
		r.relax(u)
	}

	return false
}

// relax tries to improve the cost of every traversable neighbor of u.
func (r *runner) relax(u int) {
	ux, uy := r.g.Coordinate(u)
	for _, d := range grid.Offsets {
		vx, vy := ux+d[0], uy+d[1]
		if !r.g.Walkable(vx, vy, r.mask) {
			continue
		}
		v := r.g.Index(r.g.Node(vx, vy))
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + heuristic.Octile(d[0], d[1])
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// path walks prev back from dst and returns the cells in forward order.
func (r *runner) path(dst int) []*grid.Node {
	var out []*grid.Node
	for v := dst; v != grid.NoParent; v = r.prev[v] {
		out = append(out, r.g.At(v))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem represents a cell and its current cost from the source.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // cost from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
