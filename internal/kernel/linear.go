// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package kernel

import "github.com/bitjungle/svmrt/internal/simd"

// Linear is the plain dot-product kernel, K(x, y) = x . y.
type Linear struct{}

// ComputeDense implements Dense.
func (Linear) ComputeDense(vectors *simd.Matrix, feature *simd.Vector, output []float64) {
	row := feature.Raw()
	for i := 0; i < vectors.Rows; i++ {
		output[i] = simd.Dot(vectors.Row(i), row)
	}
}

// ComputeSparse implements Sparse.
func (Linear) ComputeSparse(vectors *simd.SparseMatrix, feature simd.SparseVector, output []float64) {
	for i, sv := range vectors.Rows {
		output[i] = simd.SparseDot(sv, feature)
	}
}
