// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package kernel

import (
	"math"

	"github.com/bitjungle/svmrt/internal/simd"
)

// Sigmoid is the hyperbolic tangent kernel,
// K(x, y) = tanh(gamma * x.y + coef0).
type Sigmoid struct {
	Gamma float64
	Coef0 float64
}

// ComputeDense implements Dense.
func (s Sigmoid) ComputeDense(vectors *simd.Matrix, feature *simd.Vector, output []float64) {
	row := feature.Raw()
	for i := 0; i < vectors.Rows; i++ {
		dot := simd.Dot(vectors.Row(i), row)
		output[i] = math.Tanh(s.Gamma*dot + s.Coef0)
	}
}

// ComputeSparse implements Sparse.
func (s Sigmoid) ComputeSparse(vectors *simd.SparseMatrix, feature simd.SparseVector, output []float64) {
	for i, sv := range vectors.Rows {
		dot := simd.SparseDot(sv, feature)
		output[i] = math.Tanh(s.Gamma*dot + s.Coef0)
	}
}
