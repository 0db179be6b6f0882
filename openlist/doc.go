// Package openlist implements the open list of jump point search: an
// array-backed binary min-heap of grid nodes ordered by F.
//
// Unlike the lazy-decrease-key heap of a plain Dijkstra, the queue keeps every
// node's HeapIndex equal to its live position, so a node re-opened with a
// lower cost is repositioned in O(log n) instead of being pushed twice.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(log n).
//   - Growth doubles the backing array; each growth is reserved from the
//     memory.Allocator first and fails with ErrBadAlloc when refused.
//
// Ties on F are broken by heap order, which is deterministic for identical
// inputs but not stable.
package openlist
