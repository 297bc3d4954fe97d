// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import "github.com/bitjungle/svmrt/internal/simd"

// SVMType is the libSVM training algorithm a model was produced by.
type SVMType int

const (
	// CSvc is C-support vector classification.
	CSvc SVMType = iota
	// NuSvc is nu-support vector classification.
	NuSvc
	// ESvr is epsilon-support vector regression.
	ESvr
	// NuSvr is nu-support vector regression.
	NuSvr
)

// String implements fmt.Stringer using libSVM's own header vocabulary.
func (t SVMType) String() string {
	switch t {
	case CSvc:
		return "c_svc"
	case NuSvc:
		return "nu_svc"
	case ESvr:
		return "epsilon_svr"
	case NuSvr:
		return "nu_svr"
	default:
		return "unknown"
	}
}

// IsClassification reports whether this type produces a discrete label
// (as opposed to a regression scalar).
func (t SVMType) IsClassification() bool {
	return t == CSvc || t == NuSvc
}

// KernelType is the kernel function family a model was trained with.
type KernelType int

const (
	// KernelLinear is the dot-product kernel.
	KernelLinear KernelType = iota
	// KernelPoly is the polynomial kernel.
	KernelPoly
	// KernelRBF is the radial basis function (Gaussian) kernel.
	KernelRBF
	// KernelSigmoid is the hyperbolic tangent kernel.
	KernelSigmoid
)

// String implements fmt.Stringer using libSVM's own header vocabulary.
func (k KernelType) String() string {
	switch k {
	case KernelLinear:
		return "linear"
	case KernelPoly:
		return "polynomial"
	case KernelRBF:
		return "rbf"
	case KernelSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// KernelParams fully describes a model's kernel: its family plus whichever
// of gamma/coef0/degree that family requires.
type KernelParams struct {
	Type   KernelType
	Gamma  float64
	Coef0  float64
	Degree int
}

// Class holds one label's support vectors and its coefficient rows. Exactly
// one of Dense/Sparse is non-nil, matching the SVM that owns this Class.
type Class struct {
	// Label is the training-time class identifier; may be negative.
	Label int32

	// NumSupportVectors is this class's support vector count.
	NumSupportVectors int

	// Dense holds support vectors as a lane-padded matrix, or nil for a
	// sparse model.
	Dense *simd.Matrix

	// Sparse holds support vectors as ordered sparse rows, or nil for a
	// dense model.
	Sparse *simd.SparseMatrix

	// Coefficients has one row per other class this class is paired
	// against (length nr_class-1 for classifiers, exactly one row for a
	// regression model's single synthetic class), each of length
	// NumSupportVectors. See the classifier core's coefficient-indexing
	// convention for how row r maps to a specific other class.
	Coefficients [][]float64
}

// IsDense reports whether this class stores dense support vectors.
func (c *Class) IsDense() bool { return c.Dense != nil }

// Probabilities holds the per-class-pair Platt calibration parameters
// (A, B) used by the multiclass probability coupler. Present only when the
// model was trained with probability estimates.
type Probabilities struct {
	A *simd.Triangular[float64]
	B *simd.Triangular[float64]
}

// SVM is an immutable, thread-shareable model loaded from a libSVM text
// file. Construct one via internal/loader and never mutate it afterward;
// all concurrent FeatureVectors bound to it read it by reference only.
type SVM struct {
	Type   SVMType
	Kernel KernelParams

	NumAttributes int
	NumTotalSV    int

	// Rho holds the bias term per class-pair (i,j), i<j, for classifiers.
	// Unused (nil) for regression models, which use RegressionRho instead.
	Rho *simd.Triangular[float64]

	// RegressionRho is the single bias term for ESvr/NuSvr models.
	RegressionRho float64

	// Probabilities is nil when the model was not trained with
	// probability estimates.
	Probabilities *Probabilities

	Classes []Class
}

// NumClasses returns the number of classes (1 for regression's synthetic
// class, nr_class for classifiers).
func (m *SVM) NumClasses() int { return len(m.Classes) }

// ClassIndexForLabel finds the internal index holding the given label.
func (m *SVM) ClassIndexForLabel(label int32) (int, bool) {
	for i := range m.Classes {
		if m.Classes[i].Label == label {
			return i, true
		}
	}
	return 0, false
}

// ClassLabelForIndex is the inverse of ClassIndexForLabel.
func (m *SVM) ClassLabelForIndex(index int) (int32, bool) {
	if index < 0 || index >= len(m.Classes) {
		return 0, false
	}
	return m.Classes[index].Label, true
}

// Attributes returns the model's feature dimensionality. Classes are
// inspected directly via the exported Classes field.
func (m *SVM) Attributes() int { return m.NumAttributes }
