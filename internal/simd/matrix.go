// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

// Lanes is the SIMD lane width dense rows are padded to. It is a layout
// constant, not a hardware vector width: even on a scalar build, every
// row's stride is a multiple of Lanes so the kernel inner loops never need
// a masked tail iteration.
const Lanes = 8

// PaddedLen rounds n up to the next multiple of Lanes.
func PaddedLen(n int) int {
	if n%Lanes == 0 {
		return n
	}
	return (n/Lanes + 1) * Lanes
}

// Matrix is a row-major dense matrix whose rows are padded to PaddedLen(Cols).
// Padding entries are always zero. One row per support vector; Cols is the
// number of real (unpadded) attributes.
type Matrix struct {
	Rows, Cols int
	stride     int
	data       []float32
}

// NewMatrix allocates a zeroed Matrix able to hold rows×cols real values.
func NewMatrix(rows, cols int) *Matrix {
	stride := PaddedLen(cols)
	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		stride: stride,
		data:   make([]float32, rows*stride),
	}
}

// Stride returns the padded row length (>= Cols, a multiple of Lanes).
func (m *Matrix) Stride() int { return m.stride }

// At returns element (r, c), c < Cols.
func (m *Matrix) At(r, c int) float32 {
	return m.data[r*m.stride+c]
}

// Set assigns element (r, c), c < Cols.
func (m *Matrix) Set(r, c int, v float32) {
	m.data[r*m.stride+c] = v
}

// Row returns the padded backing slice for row r, of length Stride().
// Entries past Cols are guaranteed zero.
func (m *Matrix) Row(r int) []float32 {
	return m.data[r*m.stride : (r+1)*m.stride]
}
