package jps

import "github.com/katalvlaran/jumppoint/grid"

// Jump scans from (x,y) in direction (dx,dy) and returns the first jump point,
// or nil when the scan leaves the grid or meets a cell blocked under mask.
//
// A cell is a jump point when it is finish, when it has a forced neighbor, or,
// for diagonal moves, when a straight scan along x or y from it finds a jump
// point. The scan is a loop: diagonal steps issue straight sub-scans, and
// straight scans never branch, so the call depth is at most two whatever the
// grid size.
func Jump(g *grid.Grid, x, y, dx, dy int, finish *grid.Node, mask grid.Mask) *grid.Node {
	if dx == 0 && dy == 0 {
		return nil
	}
	for {
		if !g.Walkable(x, y, mask) {
			return nil
		}
		n := g.Node(x, y)
		if n == finish {
			return n
		}

		if dx != 0 && dy != 0 {
			if forcedDiagonal(g, x, y, dx, dy, mask) ||
				Jump(g, x+dx, y, dx, 0, finish, mask) != nil ||
				Jump(g, x, y+dy, 0, dy, finish, mask) != nil {
				return n
			}
		} else if forcedStraight(g, x, y, dx, dy, mask) {
			return n
		}

		x += dx
		y += dy
	}
}

// forcedDiagonal reports an open cell diagonally behind-ahead whose orthogonal
// neighbor on the path side is blocked.
func forcedDiagonal(g *grid.Grid, x, y, dx, dy int, mask grid.Mask) bool {
	return (g.Walkable(x-dx, y+dy, mask) && !g.Walkable(x-dx, y, mask)) ||
		(g.Walkable(x+dx, y-dy, mask) && !g.Walkable(x, y-dy, mask))
}

// forcedStraight reports a blocked cell beside the path with an open cell
// diagonally beyond it.
func forcedStraight(g *grid.Grid, x, y, dx, dy int, mask grid.Mask) bool {
	if dx != 0 {
		return (g.Walkable(x+dx, y+1, mask) && !g.Walkable(x, y+1, mask)) ||
			(g.Walkable(x+dx, y-1, mask) && !g.Walkable(x, y-1, mask))
	}
	return (g.Walkable(x+1, y+dy, mask) && !g.Walkable(x+1, y, mask)) ||
		(g.Walkable(x-1, y+dy, mask) && !g.Walkable(x-1, y, mask))
}
