// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

// Vector is a single padded row, used for query features bound to a dense
// SVM. Entries past Len are guaranteed zero so kernel loops can always
// walk the full padded slice.
type Vector struct {
	Len  int
	data []float32
}

// NewVector allocates a zeroed Vector able to hold len real values.
func NewVector(length int) *Vector {
	return &Vector{Len: length, data: make([]float32, PaddedLen(length))}
}

// At returns element i, i < Len.
func (v *Vector) At(i int) float32 { return v.data[i] }

// Set assigns element i, i < Len.
func (v *Vector) Set(i int, val float32) { v.data[i] = val }

// Raw returns the padded backing slice, of length PaddedLen(Len).
func (v *Vector) Raw() []float32 { return v.data }

// Clear zeroes every element (including padding, which is already zero).
func (v *Vector) Clear() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Float64Vector is a plain (unpadded) vector of float64. The per-class
// kernel values, vote tallies and probability arrays of a FeatureVector
// are held as plain slices ([][]float64, []uint32, []float64), not as this
// type.
type Float64Vector []float64

// NewFloat64Vector allocates a zeroed vector of length n.
func NewFloat64Vector(n int) Float64Vector {
	return make(Float64Vector, n)
}

// Zero resets every element to 0 without reallocating.
func (v Float64Vector) Zero() {
	for i := range v {
		v[i] = 0
	}
}
