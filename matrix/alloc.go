// SPDX-License-Identifier: MIT

// Package matrix - storage allocators.
//
// Purpose:
//   - Model grid storage as a resource acquired with Allocate and returned with Release.
//   - Let a host cap the number of live cells shared by many solvers (BudgetAllocator).

package matrix

import (
	"fmt"
	"sync"
)

// Allocator hands out zero-initialised n×(n+1) grids and takes them back.
// Release must accept nil and must be called at most once per grid.
type Allocator interface {
	Allocate(n int) (*Augmented, error)
	Release(m *Augmented)
}

// HeapAllocator allocates from the Go heap without limits. Release is a no-op;
// the garbage collector reclaims released grids.
type HeapAllocator struct{}

// Compile-time assertions.
var (
	_ Allocator = HeapAllocator{}
	_ Allocator = (*BudgetAllocator)(nil)
)

// Allocate returns NewAugmented(n).
func (HeapAllocator) Allocate(n int) (*Augmented, error) { return NewAugmented(n) }

// Release does nothing.
func (HeapAllocator) Release(*Augmented) {}

// BudgetAllocator allocates from the heap while keeping the number of live
// cells at or below a fixed limit. It is safe for concurrent use.
type BudgetAllocator struct {
	mu    sync.Mutex
	limit int // maximum live cells
	inUse int // cells currently handed out
}

// NewBudgetAllocator returns an allocator that permits at most limit live cells.
// It panics when limit is negative (programmer error).
func NewBudgetAllocator(limit int) *BudgetAllocator {
	if limit < 0 {
		panic("matrix: NewBudgetAllocator: limit must be non-negative")
	}

	return &BudgetAllocator{limit: limit}
}

// Allocate reserves n*(n+1) cells and returns a fresh grid.
//
// Errors:
//   - ErrInvalidDimensions for n outside [0, MaxSize].
//   - ErrAllocation when the reservation would exceed the limit.
func (b *BudgetAllocator) Allocate(n int) (*Augmented, error) {
	if n < 0 || n > MaxSize {
		return nil, ErrInvalidDimensions
	}
	need := n * (n + 1)

	b.mu.Lock()
	if b.inUse+need > b.limit {
		inUse := b.inUse
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: need %d cells, %d of %d in use", ErrAllocation, need, inUse, b.limit)
	}
	b.inUse += need
	b.mu.Unlock()

	m, err := NewAugmented(n)
	if err != nil {
		b.give(need)
		return nil, err
	}

	return m, nil
}

// Release returns the cells of m to the budget. Release(nil) is a no-op.
func (b *BudgetAllocator) Release(m *Augmented) {
	if m == nil {
		return
	}
	b.give(m.Cells())
}

// InUse reports the number of cells currently handed out.
func (b *BudgetAllocator) InUse() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.inUse
}

// Limit reports the configured cell budget.
func (b *BudgetAllocator) Limit() int { return b.limit }

func (b *BudgetAllocator) give(cells int) {
	b.mu.Lock()
	b.inUse -= cells
	if b.inUse < 0 {
		b.inUse = 0
	}
	b.mu.Unlock()
}
