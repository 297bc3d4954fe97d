// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

// Triangular stores the strict upper triangle of an n×n symmetric matrix
// with a zero diagonal, used for the pairwise decision values and for the
// multiclass probability A/B coefficient tables. Only entries with i < j
// are stored; At/Set normalize (i, j) before indexing.
type Triangular[T any] struct {
	n    int
	data []T
}

// NewTriangular allocates a Triangular for n classes. The zero value of T
// fills every cell. The backing slice holds every strict-upper-triangle
// cell, n*(n-1)/2 of them, not just the n-1 cells of row 0.
func NewTriangular[T any](n int) *Triangular[T] {
	return &Triangular[T]{n: n, data: make([]T, n*(n-1)/2)}
}

// N returns the number of classes the triangle was built for.
func (t *Triangular[T]) N() int { return t.n }

// At returns the value stored for the unordered pair (i, j), i != j.
func (t *Triangular[T]) At(i, j int) T {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	return t.data[offset(t.n, lo, hi)]
}

// Set stores the value for the unordered pair (i, j), i != j.
func (t *Triangular[T]) Set(i, j int, v T) {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	t.data[offset(t.n, lo, hi)] = v
}

// offset computes the flat index of strict-upper-triangle cell (i, j),
// i < j < n, in row-major order over the rows that remain after i.
//
// Row i has (n-1-i) entries, for j in (i, n). The i==0 row is a contiguous
// run [0, n-1) and is special-cased, matching the reference triangular
// matrix's offset arithmetic.
func offset(n, i, j int) int {
	if i == 0 {
		return j - 1
	}
	// Entries consumed by rows [0, i): sum_{k=0}^{i-1} (n-1-k)
	//   = i*(n-1) - i*(i-1)/2
	rowsBefore := i*(n-1) - i*(i-1)/2
	return rowsBefore + (j - i - 1)
}
