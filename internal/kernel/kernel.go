// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package kernel evaluates the four libSVM kernel functions (linear,
// polynomial, RBF, sigmoid) against a dense or sparse support vector
// matrix, writing one value per row into a caller-supplied output slice.
package kernel

import "github.com/bitjungle/svmrt/internal/simd"

// Dense evaluates a kernel between every row of vectors and a single
// padded feature row, writing len(vectors rows) values into output.
// output must already be sized to vectors.Rows; no allocation occurs.
type Dense interface {
	ComputeDense(vectors *simd.Matrix, feature *simd.Vector, output []float64)
}

// Sparse evaluates a kernel between every row of a sparse matrix and a
// single sparse feature vector.
type Sparse interface {
	ComputeSparse(vectors *simd.SparseMatrix, feature simd.SparseVector, output []float64)
}

// Kernel is a kernel function usable against both dense and sparse
// support vector storage.
type Kernel interface {
	Dense
	Sparse
}
