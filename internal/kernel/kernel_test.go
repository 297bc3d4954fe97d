// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package kernel

import (
	"math"
	"testing"

	"github.com/bitjungle/svmrt/internal/simd"
)

func buildDenseFixture() (*simd.Matrix, *simd.Vector) {
	m := simd.NewMatrix(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 0)
	m.Set(0, 2, 0)
	m.Set(1, 0, 0)
	m.Set(1, 1, 1)
	m.Set(1, 2, 0)

	f := simd.NewVector(3)
	f.Set(0, 1)
	f.Set(1, 1)
	f.Set(2, 0)
	return m, f
}

func TestLinearDense(t *testing.T) {
	m, f := buildDenseFixture()
	out := make([]float64, 2)
	Linear{}.ComputeDense(m, f, out)

	want := []float64{1, 1}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("row %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestRBFDenseMatchesExpExpression(t *testing.T) {
	m, f := buildDenseFixture()
	out := make([]float64, 2)
	r := RBF{Gamma: 0.5}
	r.ComputeDense(m, f, out)

	// row 0: (1,0,0) vs (1,1,0) -> sq dist = 1
	want0 := math.Exp(-0.5 * 1)
	if math.Abs(out[0]-want0) > 1e-9 {
		t.Errorf("row 0 = %v, want %v", out[0], want0)
	}
	// row 1: (0,1,0) vs (1,1,0) -> sq dist = 1
	want1 := math.Exp(-0.5 * 1)
	if math.Abs(out[1]-want1) > 1e-9 {
		t.Errorf("row 1 = %v, want %v", out[1], want1)
	}
}

func TestPolyDenseDegreeOne(t *testing.T) {
	m, f := buildDenseFixture()
	out := make([]float64, 2)
	p := Poly{Gamma: 1, Coef0: 0, Degree: 1}
	p.ComputeDense(m, f, out)

	want := []float64{1, 1}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("row %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSigmoidDenseAgreesWithTanh(t *testing.T) {
	m, f := buildDenseFixture()
	out := make([]float64, 2)
	s := Sigmoid{Gamma: 1, Coef0: 0}
	s.ComputeDense(m, f, out)

	want := math.Tanh(1)
	if math.Abs(out[0]-want) > 1e-9 {
		t.Errorf("row 0 = %v, want %v", out[0], want)
	}
}

func TestPowiMatchesMathPow(t *testing.T) {
	cases := []struct {
		base   float64
		degree int
	}{
		{2, 0}, {2, 1}, {2, 3}, {1.5, 5}, {-2, 4}, {0, 2},
	}
	for _, c := range cases {
		got := powi(c.base, c.degree)
		want := math.Pow(c.base, float64(c.degree))
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("powi(%v, %d) = %v, want %v", c.base, c.degree, got, want)
		}
	}
}

func TestDenseSparseAgree(t *testing.T) {
	dm, df := buildDenseFixture()
	sm := simd.NewSparseMatrix(2)
	// Explicit zeros give every row the same index set as sf: sparse RBF
	// drops indices carried by only one side, so dense and sparse agree
	// only when the supports match.
	sm.Rows[0] = simd.SparseVector{{Index: 0, Value: 1}, {Index: 1, Value: 0}}
	sm.Rows[1] = simd.SparseVector{{Index: 0, Value: 0}, {Index: 1, Value: 1}}
	sf := simd.SparseVector{{Index: 0, Value: 1}, {Index: 1, Value: 1}}

	kernels := []Kernel{Linear{}, Poly{Gamma: 1, Coef0: 0, Degree: 2}, RBF{Gamma: 0.3}, Sigmoid{Gamma: 1, Coef0: 0}}
	for _, k := range kernels {
		dOut := make([]float64, 2)
		sOut := make([]float64, 2)
		k.ComputeDense(dm, df, dOut)
		k.ComputeSparse(sm, sf, sOut)
		for i := range dOut {
			if math.Abs(dOut[i]-sOut[i]) > 1e-9 {
				t.Errorf("%T: dense/sparse mismatch at row %d: %v vs %v", k, i, dOut[i], sOut[i])
			}
		}
	}
}
