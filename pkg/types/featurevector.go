// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import "github.com/bitjungle/svmrt/internal/simd"

// LabelKind discriminates the tagged union Label holds.
type LabelKind int

const (
	// LabelNone means no prediction has been made yet.
	LabelNone LabelKind = iota
	// LabelClass means Label.Class holds a classification result.
	LabelClass
	// LabelValue means Label.Value holds a regression result.
	LabelValue
)

// Label is the outcome of predict_value/predict_probability: either no
// result yet, a class label, or a regression value.
type Label struct {
	Kind  LabelKind
	Class int32
	Value float32
}

// NoneLabel is the zero-value outcome, set before any prediction.
func NoneLabel() Label { return Label{Kind: LabelNone} }

// ClassLabel wraps a classification outcome.
func ClassLabel(class int32) Label { return Label{Kind: LabelClass, Class: class} }

// ValueLabel wraps a regression outcome.
func ValueLabel(value float32) Label { return Label{Kind: LabelValue, Value: value} }

// FeatureVector is mutable per-query scratch memory bound to one SVM. All
// buffers are sized and allocated at construction time; predict_value and
// predict_probability never allocate once a FeatureVector exists, so the
// same instance should be reused across repeated classifications. It must
// not be shared across goroutines.
type FeatureVector struct {
	svm *SVM

	// Dense is non-nil for a dense-bound FeatureVector; Sparse for a
	// sparse-bound one. Exactly one is ever non-nil for a given instance.
	Dense  *simd.Vector
	Sparse simd.SparseVector

	// KernelValues[c] holds one f64 per support vector of class c,
	// overwritten on every kernel accumulation pass.
	KernelValues [][]float64

	// DecisionValues[(i,j)] is the signed margin for class pair i<j.
	DecisionValues *simd.Triangular[float64]

	// Vote[c] tallies how many pairwise decisions favored class c.
	Vote []uint32

	// Pairwise[i][j] is the calibrated probability class i beats class j,
	// used only by predict_probability.
	Pairwise [][]float64

	// Q is the coupling iteration's transition matrix.
	Q [][]float64

	// QP is the coupling iteration's per-class working vector.
	QP []float64

	// Probabilities[c] is the final calibrated probability of class c.
	Probabilities []float64

	Label Label
}

// NewDenseFeatureVector allocates a FeatureVector bound to a dense SVM.
func NewDenseFeatureVector(m *SVM) *FeatureVector {
	fv := newFeatureVector(m)
	fv.Dense = simd.NewVector(m.NumAttributes)
	return fv
}

// NewSparseFeatureVector allocates a FeatureVector bound to a sparse SVM.
func NewSparseFeatureVector(m *SVM) *FeatureVector {
	fv := newFeatureVector(m)
	fv.Sparse = make(simd.SparseVector, 0, m.NumAttributes)
	return fv
}

func newFeatureVector(m *SVM) *FeatureVector {
	n := m.NumClasses()

	kernelValues := make([][]float64, n)
	for c := range m.Classes {
		kernelValues[c] = make([]float64, m.Classes[c].NumSupportVectors)
	}

	pairwise := make([][]float64, n)
	q := make([][]float64, n)
	for i := 0; i < n; i++ {
		pairwise[i] = make([]float64, n)
		q[i] = make([]float64, n)
	}

	return &FeatureVector{
		svm:            m,
		KernelValues:   kernelValues,
		DecisionValues: simd.NewTriangular[float64](n),
		Vote:           make([]uint32, n),
		Pairwise:       pairwise,
		Q:              q,
		QP:             make([]float64, n),
		Probabilities:  make([]float64, n),
		Label:          NoneLabel(),
	}
}

// IsDense reports whether this FeatureVector is bound to dense storage.
func (fv *FeatureVector) IsDense() bool { return fv.Dense != nil }

// SetDense overwrites the dense feature at attribute index i.
func (fv *FeatureVector) SetDense(i int, v float32) { fv.Dense.Set(i, v) }

// SetSparse appends a sparse feature entry; it does not look for or update
// an existing entry with the same index. Entries must be set in strictly
// increasing index order within a clear/set cycle, matching the
// ordered-sparse-vector contract the kernels rely on.
func (fv *FeatureVector) SetSparse(index uint32, v float32) {
	fv.Sparse = append(fv.Sparse, simd.SparseEntry{Index: index, Value: v})
}

// Clear resets a sparse FeatureVector's feature map without shrinking its
// backing array. Dense FeatureVectors need no clear: every element is
// always overwritten before use.
func (fv *FeatureVector) Clear() {
	fv.Sparse = fv.Sparse[:0]
}

// SVM returns the model this FeatureVector is bound to.
func (fv *FeatureVector) SVM() *SVM { return fv.svm }
