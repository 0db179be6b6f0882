// Package grid stores the dense, row-major node arena that jump point search
// runs over.
//
// What:
//
//   - Grid owns Width×Height Node values in one slice; lookup is y*Width+x.
//   - Every Node carries a traversal Mask. A cell is traversable for a query
//     mask m iff cell.Mask&m == cell.Mask, so one grid encodes several
//     traversal classes (ground, water, trees...) selected per query.
//   - Nodes also carry the transient search fields (G, H, F, Status, Parent,
//     HeapIndex). The search owns them while it runs and restores them to their
//     defaults before it returns.
//   - Label computes 8-connected components of traversable cells for a mask,
//     giving an O(1) "can these two cells ever be joined" test.
//
// Why:
//
//   - Game and simulation maps: one static grid, many path queries.
//   - Robotics occupancy maps with several vehicle classes.
//
// Complexity:
//
//   - New/FromMasks/Parse: O(W×H) time and memory.
//   - InBounds, Node, Index, Traversable: O(1).
//   - Label: O(W×H) time, O(W×H) memory.
//
// Concurrency:
//
//   - A Grid is not safe for concurrent searches. Two searches on one grid race
//     on the same transient node fields. Serialize them externally or give each
//     goroutine its own Clone.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDimensions: width or height is not positive.
//   - ErrBadGlyph: Parse met a character it does not understand.
package grid
