// Package dijkstra provides a reference uniform-cost search over the same
// masked 8-connected grids that package jps searches.
//
// Overview:
//
//   - ShortestPath expands every reachable cell in order of increasing cost,
//     moving one step at a time to any of the eight neighbors traversable under
//     the query mask. Straight steps cost 1, diagonal steps √2.
//   - It never prunes, so it is slow on open maps but trivially correct. Use it
//     to validate jump point search results and to measure the speedup.
//   - Unlike jps.FindPath it keeps its distances and predecessors in private
//     arrays and never writes into grid nodes, so any number of ShortestPath
//     calls may share one grid concurrently.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified cost, saving work in large grids.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = W×H; every cell has at most eight edges.
//   - Each cell is finalized at most once.
//   - Each relaxation may push one new entry (lazy decrease-key).
//   - Space: O(V) for distances, predecessors and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *grid.Grid.
//   - ErrForeignNode:
//     Returned if start or finish is not a node of the grid.
//   - ErrNoPath:
//     Returned if finish cannot be reached under the mask (or within MaxDistance).
//   - ErrBadMaxDistance:
//     Returned if you set MaxDistance to a negative value.
//
// API reference:
//
//	func ShortestPath(
//	    g *grid.Grid,
//	    start, finish *grid.Node,
//	    mask grid.Mask,
//	    opts ...Option,
//	) (Result, error)
//
//	  - Result.Path:     cells start → finish inclusive.
//	  - Result.Cost:     sum of step costs along Path.
//	  - Result.Expanded: cells finalized before finish was reached.
package dijkstra
