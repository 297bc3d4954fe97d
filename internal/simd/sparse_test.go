// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

import "testing"

func TestSparseDotDisjointIsZero(t *testing.T) {
	a := SparseVector{{Index: 0, Value: 1}, {Index: 2, Value: 1}}
	b := SparseVector{{Index: 1, Value: 1}, {Index: 3, Value: 1}}
	if got := SparseDot(a, b); got != 0 {
		t.Errorf("SparseDot = %v, want 0", got)
	}
}

func TestSparseDotOverlap(t *testing.T) {
	a := SparseVector{{Index: 0, Value: 2}, {Index: 2, Value: 3}, {Index: 5, Value: 4}}
	b := SparseVector{{Index: 2, Value: 5}, {Index: 5, Value: 1}, {Index: 9, Value: 7}}
	// overlap at index 2 (3*5=15) and index 5 (4*1=4)
	want := float64(19)
	if got := SparseDot(a, b); got != want {
		t.Errorf("SparseDot = %v, want %v", got, want)
	}
}

func TestMergeWalkVisitsOnlyMatchedIndices(t *testing.T) {
	a := SparseVector{{Index: 0, Value: 1}, {Index: 2, Value: 2}}
	b := SparseVector{{Index: 1, Value: 3}, {Index: 2, Value: 4}}

	var pairs [][2]float32
	MergeWalk(a, b, func(av, bv float32) {
		pairs = append(pairs, [2]float32{av, bv})
	})

	want := [][2]float32{{2, 4}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}

func TestMergeWalkStopsAtFirstExhaustion(t *testing.T) {
	a := SparseVector{{Index: 0, Value: 1}}
	b := SparseVector{{Index: 0, Value: 5}, {Index: 1, Value: 9}}

	var pairs [][2]float32
	MergeWalk(a, b, func(av, bv float32) {
		pairs = append(pairs, [2]float32{av, bv})
	})

	want := [][2]float32{{1, 5}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}
