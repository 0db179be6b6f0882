// Package jps implements Jump Point Search (JPS) over uniform-cost,
// 8-connected grids.
//
// Overview:
//
//   - JPS is A* that skips the cells of unobstructed straight and diagonal
//     runs. It only pauses at jump points: cells where an obstacle exposes a
//     forced neighbor, or where the goal lies.
//   - No edge graph is built. The search runs directly over a *grid.Grid and a
//     query mask selecting which traversal classes the walker holds.
//   - The sparse chain of jump points is rasterized back into a full cell path
//     in which every two consecutive cells are 8-adjacent.
//
// Components:
//
//   - PrunedNeighbors: reduced candidate set from the direction of travel.
//   - Jump: iterative straight/diagonal scan returning the next jump point.
//   - FindPath: best-first loop over an indexed open list (package openlist),
//     then path reconstruction with Bresenham segments.
//   - Strategy: neighbors, jump cost and heuristic bundle; Pruned with an
//     octile jump cost and Euclidean heuristic is the default.
//
// Outcomes:
//
//   - StatusOK:         full path from start to finish.
//   - StatusTrivial:    start and finish closer than two cells; the path is
//     [start] or [start, finish] without reconstruction.
//   - StatusBlocked:    no path under the mask (ErrBlocked).
//   - StatusBadAlloc:   the allocator refused the open list or the path buffer.
//   - StatusBadRealloc: the allocator refused growing the path buffer.
//   - StatusInvalid:    bad arguments or options.
//
// Whatever the outcome, every node the search touched is restored to its
// default transient state before FindPath returns, so the grid can serve the
// next query unchanged.
//
// Concurrency:
//
//   - FindPath is synchronous and not reentrant on one grid: the transient
//     fields live in the grid's nodes. Serialize searches on a shared grid, or
//     give each goroutine its own grid.Clone (see package batch).
//
// Complexity:
//
//   - Time:  O(N log N) in the number of jump points opened, each jump scan
//     costing O(max(W, H)) cell probes.
//   - Space: O(N) for the open list and the touched-node ledger, plus the path.
package jps
