// Package memory supplies the allocation strategy of a search.
//
// Go allocations do not fail, so a search instead reserves the bytes of every
// buffer it grows (open list, output path) from an Allocator before growing
// it. A Budget refuses reservations beyond its limit, which lets callers bound
// the transient memory of one search and makes the allocation-failure paths of
// the search reachable and testable.
//
// A nil *Budget is a valid, unlimited allocator.
package memory
