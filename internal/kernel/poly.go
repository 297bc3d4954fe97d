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

// Poly is the polynomial kernel, K(x, y) = (gamma * x.y + coef0)^degree.
type Poly struct {
	Gamma  float64
	Coef0  float64
	Degree int
}

// ComputeDense implements Dense.
func (p Poly) ComputeDense(vectors *simd.Matrix, feature *simd.Vector, output []float64) {
	row := feature.Raw()
	for i := 0; i < vectors.Rows; i++ {
		dot := simd.Dot(vectors.Row(i), row)
		output[i] = powi(p.Gamma*dot+p.Coef0, p.Degree)
	}
}

// ComputeSparse implements Sparse.
func (p Poly) ComputeSparse(vectors *simd.SparseMatrix, feature simd.SparseVector, output []float64) {
	for i, sv := range vectors.Rows {
		dot := simd.SparseDot(sv, feature)
		output[i] = powi(p.Gamma*dot+p.Coef0, p.Degree)
	}
}

// powi raises base to a non-negative integer power by repeated squaring,
// avoiding math.Pow's general (and slower) floating-point exponent path
// for the common small integer degrees libSVM models use.
func powi(base float64, degree int) float64 {
	if degree < 0 {
		return math.Pow(base, float64(degree))
	}
	result := 1.0
	b := base
	for degree > 0 {
		if degree&1 == 1 {
			result *= b
		}
		b *= b
		degree >>= 1
	}
	return result
}
