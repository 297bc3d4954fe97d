// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

import (
	"math"
	"testing"
)

func TestDotScalarUnrolledAgree(t *testing.T) {
	a := NewVector(5)
	b := NewVector(5)
	for i := 0; i < 5; i++ {
		a.Set(i, float32(i+1))
		b.Set(i, float32(5-i))
	}

	scalar := DotScalar(a.Raw(), b.Raw())
	unrolled := DotUnrolled(a.Raw(), b.Raw())
	if math.Abs(scalar-unrolled) > 1e-9 {
		t.Errorf("DotScalar = %v, DotUnrolled = %v, want equal", scalar, unrolled)
	}
}

func TestDotDispatchesConsistently(t *testing.T) {
	a := NewVector(3)
	b := NewVector(3)
	a.Set(0, 1)
	a.Set(1, 2)
	a.Set(2, 3)
	b.Set(0, 4)
	b.Set(1, 5)
	b.Set(2, 6)

	want := float64(1*4 + 2*5 + 3*6)
	if got := Dot(a.Raw(), b.Raw()); math.Abs(got-want) > 1e-9 {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}
