// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package classify orchestrates kernel accumulation, pairwise decision
// values, voting, and probability coupling into the classifier core's two
// public operations, predict_value and predict_probability.
package classify

import (
	"github.com/bitjungle/svmrt/internal/kernel"
	"github.com/bitjungle/svmrt/pkg/types"
)

// Engine binds an SVM to the kernel implementation its header selected.
// The kernel is built once at construction so predict_value/
// predict_probability never box a kernel value into an interface on the
// hot path.
type Engine struct {
	svm    *types.SVM
	kernel kernel.Kernel
}

// NewEngine builds an Engine for m. m must already be a validated model
// (as produced by internal/loader).
func NewEngine(m *types.SVM) *Engine {
	return &Engine{svm: m, kernel: buildKernel(m.Kernel)}
}

// SVM returns the model this Engine predicts against.
func (e *Engine) SVM() *types.SVM { return e.svm }

func buildKernel(p types.KernelParams) kernel.Kernel {
	switch p.Type {
	case types.KernelPoly:
		return kernel.Poly{Gamma: p.Gamma, Coef0: p.Coef0, Degree: p.Degree}
	case types.KernelRBF:
		return kernel.RBF{Gamma: p.Gamma}
	case types.KernelSigmoid:
		return kernel.Sigmoid{Gamma: p.Gamma, Coef0: p.Coef0}
	default:
		return kernel.Linear{}
	}
}

func (e *Engine) accumulateKernelValues(fv *types.FeatureVector) {
	for c := range e.svm.Classes {
		class := &e.svm.Classes[c]
		out := fv.KernelValues[c]
		if fv.IsDense() {
			e.kernel.ComputeDense(class.Dense, fv.Dense, out)
		} else {
			e.kernel.ComputeSparse(class.Sparse, fv.Sparse, out)
		}
	}
}
