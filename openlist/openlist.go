package openlist

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/memory"
)

// ErrBadAlloc indicates the allocator refused to reserve or grow the queue.
var ErrBadAlloc = errors.New("openlist: allocation failed")

// DefaultCapacity is the initial capacity used when New receives capacity <= 0.
const DefaultCapacity = 8

// Queue is a min-heap of *grid.Node by F.
type Queue struct {
	items nodeHeap
	alloc memory.Allocator
}

// New reserves a queue with the given initial capacity from alloc.
// A nil alloc is unlimited.
func New(alloc memory.Allocator, capacity int) (*Queue, error) {
	if alloc == nil {
		alloc = (*memory.Budget)(nil)
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if err := alloc.Acquire(memory.Slots(capacity)); err != nil {
		return nil, fmt.Errorf("%w: reserve %d slots: %w", ErrBadAlloc, capacity, err)
	}

	return &Queue{
		items: make(nodeHeap, 0, capacity),
		alloc: alloc,
	}, nil
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return len(q.items) }

// Cap returns the reserved capacity.
func (q *Queue) Cap() int { return cap(q.items) }

// Insert appends n and sifts it up. If the backing array is full it is doubled
// first; when the allocator refuses, ErrBadAlloc is returned and the queue is
// left unchanged.
func (q *Queue) Insert(n *grid.Node) error {
	if len(q.items) == cap(q.items) {
		if err := q.grow(2 * cap(q.items)); err != nil {
			return err
		}
	}
	heap.Push(&q.items, n)

	return nil
}

// ExtractMin removes and returns the node with the smallest F, or nil when empty.
func (q *Queue) ExtractMin() *grid.Node {
	switch len(q.items) {
	case 0:
		return nil
	case 1:
		n := q.items[0]
		q.items = q.items[:0]
		return n
	default:
		return heap.Pop(&q.items).(*grid.Node)
	}
}

// DecreaseKey restores heap order after n.F changed while n is queued.
// n is located through its HeapIndex.
func (q *Queue) DecreaseKey(n *grid.Node) {
	heap.Fix(&q.items, n.HeapIndex)
}

// Release returns the reserved capacity to the allocator and empties the queue.
// The queue must not be used afterwards.
func (q *Queue) Release() {
	q.alloc.Release(memory.Slots(cap(q.items)))
	q.items = nil
}

func (q *Queue) grow(newCap int) error {
	if err := q.alloc.Acquire(memory.Slots(newCap)); err != nil {
		return fmt.Errorf("%w: grow to %d slots: %w", ErrBadAlloc, newCap, err)
	}
	grown := make(nodeHeap, len(q.items), newCap)
	copy(grown, q.items)
	q.alloc.Release(memory.Slots(cap(q.items)))
	q.items = grown

	return nil
}

// nodeHeap implements heap.Interface; Swap keeps HeapIndex of both nodes live.
type nodeHeap []*grid.Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].F < h[j].F }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].HeapIndex = i
	h[j].HeapIndex = j
}

// Push is called by heap.Push; capacity has already been reserved by Insert.
func (h *nodeHeap) Push(x any) {
	n := x.(*grid.Node)
	n.HeapIndex = len(*h)
	*h = append(*h, n)
}

// Pop is called by heap.Pop after the root was swapped to the end.
func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	*h = old[:last]

	return n
}
