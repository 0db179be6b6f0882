// Package grid provides the node arena used by jump point search:
//
//   - Row-major storage with O(1) lookup and bounds checks
//   - Mask-based traversability per query
//   - Reset of the transient search fields
//   - Component labelling of traversable cells
package grid

import "fmt"

// New allocates a width×height grid whose cells are all open (Mask 0).
// Returns ErrBadDimensions if either side is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Nodes:  make([]Node, width*height),
	}
	for i := range g.Nodes {
		n := &g.Nodes[i]
		n.X, n.Y = g.Coordinate(i)
		n.Parent = NoParent
	}

	return g, nil
}

// FromMasks constructs a Grid from a non-empty, rectangular 2D slice of masks
// indexed masks[y][x]. The input is copied.
// Returns ErrEmptyGrid if masks has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromMasks(masks [][]Mask) (*Grid, error) {
	if len(masks) == 0 || len(masks[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(masks), len(masks[0])
	for _, row := range masks {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Nodes[g.index(x, y)].Mask = masks[y][x]
		}
	}

	return g, nil
}

// Parse builds a grid from text rows, one string per row:
//
//	'.'       open cell (Mask 0)
//	'#', '@'  wall (Solid)
//	'1'..'9'  cell requiring class bit d-1
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadGlyph.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	masks := make([][]Mask, len(rows))
	for y, row := range rows {
		masks[y] = make([]Mask, 0, len(row))
		for x, r := range row {
			switch {
			case r == '.':
				masks[y] = append(masks[y], 0)
			case r == '#' || r == '@':
				masks[y] = append(masks[y], Solid)
			case r >= '1' && r <= '9':
				masks[y] = append(masks[y], Mask(1)<<(r-'1'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, r, x, y)
			}
		}
	}

	return FromMasks(masks)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Node returns the node at (x,y), or nil when (x,y) is out of bounds.
func (g *Grid) Node(x, y int) *Node {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Nodes[g.index(x, y)]
}

// At returns the node stored at row-major index idx.
func (g *Grid) At(idx int) *Node {
	return &g.Nodes[idx]
}

// Index returns the row-major index of n, which must belong to g.
func (g *Grid) Index(n *Node) int {
	return g.index(n.X, n.Y)
}

// Contains reports whether n is a node of this grid (same storage, not a copy).
func (g *Grid) Contains(n *Node) bool {
	if n == nil || !g.InBounds(n.X, n.Y) {
		return false
	}
	return &g.Nodes[g.index(n.X, n.Y)] == n
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Traversable reports whether a walker holding classes m may enter n:
// every class bit required by n must be present in m.
func Traversable(n *Node, m Mask) bool {
	return n.Mask&m == n.Mask
}

// Walkable reports whether (x,y) is in bounds and traversable under m.
func (g *Grid) Walkable(x, y int, m Mask) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return Traversable(&g.Nodes[g.index(x, y)], m)
}

// Parent resolves the Parent handle of n; nil when n has no predecessor.
func (g *Grid) Parent(n *Node) *Node {
	if n.Parent == NoParent {
		return nil
	}
	return &g.Nodes[n.Parent]
}

// ResetNode restores the transient search fields of n to their defaults.
func ResetNode(n *Node) {
	n.G, n.H, n.F = 0, 0, 0
	n.Status = Unvisited
	n.Parent = NoParent
	n.HeapIndex = 0
}

// Reset restores the transient fields of every node.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	for i := range g.Nodes {
		ResetNode(&g.Nodes[i])
	}
}

// Clone returns an independent grid with the same dimensions, masks and
// payloads. Transient fields of the copy are defaulted. Payloads are copied
// shallowly.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Nodes:  make([]Node, len(g.Nodes)),
	}
	for i := range g.Nodes {
		src := &g.Nodes[i]
		c.Nodes[i] = Node{X: src.X, Y: src.Y, Mask: src.Mask, Data: src.Data, Parent: NoParent}
	}

	return c
}

// Snapshot copies the node slice, transient fields included.
// Useful to assert that a search left the grid untouched.
func (g *Grid) Snapshot() []Node {
	out := make([]Node, len(g.Nodes))
	copy(out, g.Nodes)

	return out
}
