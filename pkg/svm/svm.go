// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package svm is the public facade over the classifier runtime: load a
// libSVM text model, build a FeatureVector bound to it, and classify or
// regress. Everything else (internal/loader, internal/classify,
// internal/kernel, internal/prob) is an implementation detail reachable
// only through this package and pkg/types.
package svm

import (
	"github.com/bitjungle/svmrt/internal/classify"
	"github.com/bitjungle/svmrt/internal/loader"
	"github.com/bitjungle/svmrt/pkg/types"
)

// NewDenseSVM parses modelText into an SVM with dense support vector
// storage, rejecting any support vector whose attribute indices are not
// the strictly increasing sequence 0, 1, 2, ….
func NewDenseSVM(modelText string) (*types.SVM, error) {
	return loader.LoadDense(modelText)
}

// NewSparseSVM parses modelText into an SVM with ordered-sparse support
// vector storage. Unlike NewDenseSVM, gaps between attribute indices
// within a row are permitted and simply omitted.
func NewSparseSVM(modelText string) (*types.SVM, error) {
	return loader.LoadSparse(modelText)
}

// NewFeatureVector allocates per-query scratch memory bound to m, sized
// for m's dense or sparse storage as appropriate. The returned
// FeatureVector should be reused across repeated classifications against
// the same SVM: PredictValue and PredictProbability never allocate once
// it exists.
func NewFeatureVector(m *types.SVM) *types.FeatureVector {
	if m.Classes[0].IsDense() {
		return types.NewDenseFeatureVector(m)
	}
	return types.NewSparseFeatureVector(m)
}

// PredictValue computes a classification label or regression value for fv
// against m, setting fv.Label on success.
func PredictValue(m *types.SVM, fv *types.FeatureVector) error {
	return classify.NewEngine(m).PredictValue(fv)
}

// PredictProbability computes a classification label plus a calibrated
// probability vector for fv against m. It returns types.ErrNoProbabilities
// if m was not trained with probability estimates, and falls back to
// PredictValue for regression models, matching libSVM's own behavior.
func PredictProbability(m *types.SVM, fv *types.FeatureVector) error {
	return classify.NewEngine(m).PredictProbability(fv)
}

// MarginDiagnostics reports the mean and standard deviation of the
// absolute pairwise decision margins between fv's winning class and every
// other class, for a fv that already holds a result from PredictValue or
// PredictProbability. It supplements the label/probability outcome and
// needs no probability-calibrated model, unlike PredictProbability.
func MarginDiagnostics(m *types.SVM, fv *types.FeatureVector) (classify.Margin, bool) {
	return classify.MarginDiagnostics(m, fv)
}
