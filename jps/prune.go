package jps

import "github.com/katalvlaran/jumppoint/grid"

// PrunedNeighbors appends to buf[:0] the candidate successors of n given the
// direction it was entered from (n relative to its parent):
//
//   - no parent (start): all eight traversable neighbors;
//   - diagonal (dx,dy): the naturals (x,y+dy), (x+dx,y), (x+dx,y+dy), plus the
//     forced (x-dx,y+dy) when (x-dx,y) is blocked and (x+dx,y-dy) when
//     (x,y-dy) is blocked;
//   - straight: the natural one step ahead, plus each diagonal-ahead cell
//     whose lateral side cell is blocked.
//
// Only in-bounds cells traversable under mask are returned, at most MaxNeighbors.
func PrunedNeighbors(g *grid.Grid, n *grid.Node, mask grid.Mask, buf []*grid.Node) []*grid.Node {
	buf = buf[:0]
	x, y := n.X, n.Y

	p := g.Parent(n)
	if p == nil {
		for _, d := range grid.Offsets {
			buf = appendWalkable(buf, g, x+d[0], y+d[1], mask)
		}
		return buf
	}

	dx, dy := sign(x-p.X), sign(y-p.Y)
	switch {
	case dx != 0 && dy != 0:
		buf = appendWalkable(buf, g, x, y+dy, mask)
		buf = appendWalkable(buf, g, x+dx, y, mask)
		buf = appendWalkable(buf, g, x+dx, y+dy, mask)
		if !g.Walkable(x-dx, y, mask) {
			buf = appendWalkable(buf, g, x-dx, y+dy, mask)
		}
		if !g.Walkable(x, y-dy, mask) {
			buf = appendWalkable(buf, g, x+dx, y-dy, mask)
		}
	case dx == 0:
		buf = appendWalkable(buf, g, x, y+dy, mask)
		if !g.Walkable(x+1, y, mask) {
			buf = appendWalkable(buf, g, x+1, y+dy, mask)
		}
		if !g.Walkable(x-1, y, mask) {
			buf = appendWalkable(buf, g, x-1, y+dy, mask)
		}
	default:
		buf = appendWalkable(buf, g, x+dx, y, mask)
		if !g.Walkable(x, y+1, mask) {
			buf = appendWalkable(buf, g, x+dx, y+1, mask)
		}
		if !g.Walkable(x, y-1, mask) {
			buf = appendWalkable(buf, g, x+dx, y-1, mask)
		}
	}

	return buf
}

func appendWalkable(buf []*grid.Node, g *grid.Grid, x, y int, mask grid.Mask) []*grid.Node {
	if g.Walkable(x, y, mask) {
		buf = append(buf, g.Node(x, y))
	}
	return buf
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
