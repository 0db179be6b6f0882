package jps

import (
	"fmt"
	"math"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/memory"
)

// trivialDistance is the start–finish distance below which no interpolation
// is needed: the pair is equal or 8-adjacent.
const trivialDistance = 2

// pathBuffer is a node slice whose capacity is reserved from an allocator and
// doubled on demand.
type pathBuffer struct {
	nodes []*grid.Node
	alloc memory.Allocator
}

func newPathBuffer(alloc memory.Allocator, n int) (*pathBuffer, error) {
	if n < 1 {
		n = 1
	}
	if err := alloc.Acquire(memory.Slots(n)); err != nil {
		return nil, fmt.Errorf("%w: path buffer of %d: %w", ErrBadAlloc, n, err)
	}
	return &pathBuffer{nodes: make([]*grid.Node, 0, n), alloc: alloc}, nil
}

func (b *pathBuffer) push(n *grid.Node) error {
	if len(b.nodes) == cap(b.nodes) {
		newCap := 2 * cap(b.nodes)
		if err := b.alloc.Acquire(memory.Slots(newCap)); err != nil {
			return fmt.Errorf("%w: path buffer to %d: %w", ErrBadRealloc, newCap, err)
		}
		grown := make([]*grid.Node, len(b.nodes), newCap)
		copy(grown, b.nodes)
		b.alloc.Release(memory.Slots(cap(b.nodes)))
		b.nodes = grown
	}
	b.nodes = append(b.nodes, n)

	return nil
}

// release returns the reservation. The slice itself stays valid for the caller.
func (b *pathBuffer) release() {
	b.alloc.Release(memory.Slots(cap(b.nodes)))
}

// expandPath turns the parent chain finish → … → start into the full cell
// sequence start → finish. Each (node, parent) segment is rasterized with
// Bresenham's line algorithm, so consecutive cells are always 8-adjacent.
//
// When start and finish are closer than trivialDistance it returns
// StatusTrivial with [start] or [start, finish] and skips reconstruction.
// On allocation failure the partial path is dropped.
func expandPath(g *grid.Grid, start, finish *grid.Node, alloc memory.Allocator) ([]*grid.Node, Status, error) {
	dx, dy := float64(start.X-finish.X), float64(start.Y-finish.Y)
	estimate := int(math.Sqrt(dx*dx + dy*dy))
	if estimate < trivialDistance {
		if start == finish {
			return []*grid.Node{start}, StatusTrivial, nil
		}
		return []*grid.Node{start, finish}, StatusTrivial, nil
	}

	buf, err := newPathBuffer(alloc, estimate)
	if err != nil {
		return nil, StatusBadAlloc, err
	}
	defer buf.release()

	node := finish
	for parent := g.Parent(node); parent != nil; parent = g.Parent(node) {
		if err := rasterize(g, node, parent, buf); err != nil {
			return nil, StatusBadRealloc, err
		}
		node = parent
	}
	if err := buf.push(node); err != nil {
		return nil, StatusBadRealloc, err
	}

	path := buf.nodes
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, StatusOK, nil
}

// rasterize pushes the cells from a up to, but excluding, b.
func rasterize(g *grid.Grid, a, b *grid.Node, buf *pathBuffer) error {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx - dy

	for x0 != x1 || y0 != y1 {
		if err := buf.push(g.Node(x0, y0)); err != nil {
			return err
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
