// Package jumppoint is a Jump Point Search pathfinder for 8-connected grids
// whose cells carry traversal masks.
//
// 🚀 What is inside?
//
//	grid/      - node arena, masks, connected-component labels
//	jps/       - FindPath: pruned neighbors, jump scans, path expansion
//	openlist/  - binary-heap open list with decrease-key
//	heuristic/ - Euclidean, octile, Chebyshev and Manhattan estimates
//	memory/    - byte budgets that make allocation failures observable
//	dijkstra/  - uniform-cost baseline over the same grids
//	mapfile/   - MovingAI .map/.scen codecs, zstd/lz4/brotli files
//	batch/     - concurrent scenario runs with baseline comparison
//	server/    - HTTP path service with metrics and rate limiting
//	cmd/jps/   - command-line front end (path, bench, serve)
//
// A cell is walkable for a query mask m when cell.Mask & m == cell.Mask,
// so a zero mask crosses only open ground and grid.Solid is never crossed.
//
// Quick ASCII example (start s, finish f, walls @):
//
//	s..@.
//	...@.
//	.....
//	...@f
//
// FindPath returns the full cell-by-cell route, its octile cost and a
// Status telling OK, Blocked, Trivial or an allocation failure apart.
//
//	go get github.com/katalvlaran/jumppoint
package jumppoint
