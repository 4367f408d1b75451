// SPDX-License-Identifier: MIT

// Package matrix provides the augmented coefficient grid used by the
// equation solver, together with its row operations and storage allocators.
//
// What & Why:
//
//	Augmented is an N×(N+1) grid of exact fractions: N coefficient columns
//	followed by one right-hand-side column. Cells live in one contiguous
//	row-major buffer, and each row is addressed through a header slice, so
//	SwapRows exchanges two headers in O(1) without copying cells.
//
//	Row operations (MultiplyRow, DivideRow, AddRows, SubtractScaledRow) apply
//	the overflow-checked kernels of package fraction cell by cell, left to
//	right, and stop at the first overflow. Cells to the right of the failing
//	column are left untouched.
//
//	Storage is acquired and released through an Allocator. HeapAllocator is
//	unbounded; BudgetAllocator caps the number of live cells, which lets a host
//	bound memory across many solvers.
//
// Complexity:
//
//	NewAugmented, Clone and CopyFrom run in O(N²). At, Set and SwapRows run in
//	O(1). Row operations run in O(N) kernel calls.
//
// Indices are 0-based in this package.
package matrix
