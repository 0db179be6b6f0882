package memory

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrLimitExceeded is returned when a reservation would exceed the budget.
var ErrLimitExceeded = errors.New("memory: limit exceeded")

// PointerSize is the number of bytes reserved per slot of a node buffer.
const PointerSize = 8

// Allocator reserves and releases bytes for buffers a search grows.
// Acquire must not block; it either grants the reservation or fails.
type Allocator interface {
	Acquire(bytes int64) error
	Release(bytes int64)
}

// Budget is an Allocator with an optional hard limit.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
	peak  atomic.Int64
}

// NewBudget creates a Budget. limit <= 0 means unlimited (tracking only).
func NewBudget(limit int64) *Budget {
	b := &Budget{limit: limit}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

// Acquire reserves bytes. Returns ErrLimitExceeded if the limit would be exceeded.
func (b *Budget) Acquire(bytes int64) error {
	if b == nil || bytes <= 0 {
		return nil
	}
	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return ErrLimitExceeded
	}

	used := b.used.Add(bytes)
	for {
		peak := b.peak.Load()
		if used <= peak || b.peak.CompareAndSwap(peak, used) {
			break
		}
	}
	return nil
}

// Release returns bytes previously acquired.
func (b *Budget) Release(bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// InUse returns the bytes currently reserved.
func (b *Budget) InUse() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Peak returns the highest reservation observed.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.peak.Load()
}

// Limit returns the configured limit (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}

// Slots converts a buffer capacity into the bytes reserved for it.
func Slots(n int) int64 {
	return int64(n) * PointerSize
}
