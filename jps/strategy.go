package jps

import (
	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
)

// Strategy bundles the three replaceable capabilities of a search.
//
// Neighbors appends the candidate successors of n to buf[:0] and returns it;
// results beyond MaxNeighbors are ignored. JumpCost is the cost of moving from
// b to the jump point a along a straight or diagonal run. Heuristic estimates
// the remaining cost from a to b and must not overestimate for optimal paths.
type Strategy interface {
	Neighbors(g *grid.Grid, n *grid.Node, mask grid.Mask, buf []*grid.Node) []*grid.Node
	JumpCost(a, b *grid.Node) float64
	Heuristic(a, b *grid.Node) float64
}

// Pruned is the default Strategy: direction-pruned neighbors, octile jump cost
// and a configurable estimate (Euclidean when Estimate is nil).
type Pruned struct {
	Estimate heuristic.Func
}

// DefaultStrategy returns Pruned with the Euclidean heuristic.
func DefaultStrategy() Strategy {
	return Pruned{Estimate: heuristic.Euclidean}
}

// Neighbors implements Strategy with PrunedNeighbors.
func (Pruned) Neighbors(g *grid.Grid, n *grid.Node, mask grid.Mask, buf []*grid.Node) []*grid.Node {
	return PrunedNeighbors(g, n, mask, buf)
}

// JumpCost implements Strategy with the octile distance.
func (Pruned) JumpCost(a, b *grid.Node) float64 {
	return heuristic.Octile(a.X-b.X, a.Y-b.Y)
}

// Heuristic implements Strategy.
func (p Pruned) Heuristic(a, b *grid.Node) float64 {
	if p.Estimate == nil {
		return heuristic.Euclidean(a.X-b.X, a.Y-b.Y)
	}
	return p.Estimate(a.X-b.X, a.Y-b.Y)
}
