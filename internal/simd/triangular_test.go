// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

import "testing"

func TestTriangularAllPairsRoundTrip(t *testing.T) {
	const n = 6
	tri := NewTriangular[float64](n)

	want := make(map[[2]int]float64)
	k := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			k++
			tri.Set(i, j, k)
			want[[2]int{i, j}] = k
		}
	}

	for pair, v := range want {
		if got := tri.At(pair[0], pair[1]); got != v {
			t.Errorf("At(%d,%d) = %v, want %v", pair[0], pair[1], got, v)
		}
		// symmetric lookup must agree
		if got := tri.At(pair[1], pair[0]); got != v {
			t.Errorf("At(%d,%d) = %v, want %v", pair[1], pair[0], got, v)
		}
	}
}

func TestTriangularOffsetsAreDistinct(t *testing.T) {
	const n = 10
	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			o := offset(n, i, j)
			if seen[o] {
				t.Fatalf("offset(%d,%d,%d) = %d collides with an earlier pair", n, i, j, o)
			}
			seen[o] = true
		}
	}
	maxOffset := n*(n-1)/2 - 1
	if len(seen) != maxOffset+1 {
		t.Fatalf("got %d distinct offsets, want %d", len(seen), maxOffset+1)
	}
}
