// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package classify

import (
	"github.com/bitjungle/svmrt/internal/prob"
	"github.com/bitjungle/svmrt/pkg/types"
	"gonum.org/v1/gonum/floats"
)

// PredictValue computes a classification label or a regression value for
// fv, which must have been built from (and bound to) e.SVM(). On success
// fv.Label is set; it allocates nothing.
func (e *Engine) PredictValue(fv *types.FeatureVector) error {
	e.accumulateKernelValues(fv)

	if e.svm.Type.IsClassification() {
		e.classify(fv)
	} else {
		e.regress(fv)
	}
	return nil
}

// classify implements the one-vs-one pairwise decision and vote (spec
// §4.1 steps 2-3): for every class pair (i,j), i<j, accumulate each side's
// coefficient-weighted kernel sum, subtract the pair's bias, and credit
// the winning side's vote. The final label is the class with the most
// votes, lowest index breaking ties.
func (e *Engine) classify(fv *types.FeatureVector) {
	n := e.svm.NumClasses()
	for i := range fv.Vote {
		fv.Vote[i] = 0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			coefI := e.svm.Classes[i].Coefficients[j-1]
			coefJ := e.svm.Classes[j].Coefficients[i]

			a := floats.Dot(coefI, fv.KernelValues[i][:len(coefI)])
			b := floats.Dot(coefJ, fv.KernelValues[j][:len(coefJ)])
			d := a + b - e.svm.Rho.At(i, j)

			fv.DecisionValues.Set(i, j, d)
			if d > 0 {
				fv.Vote[i]++
			} else {
				fv.Vote[j]++
			}
		}
	}

	best := 0
	for c := 1; c < n; c++ {
		if fv.Vote[c] > fv.Vote[best] {
			best = c
		}
	}
	fv.Label = types.ClassLabel(e.svm.Classes[best].Label)
}

// regress implements the ESvr/NuSvr decision rule against the single
// synthetic class the loader built.
func (e *Engine) regress(fv *types.FeatureVector) {
	class := e.svm.Classes[0]
	coef := class.Coefficients[0]
	sum := floats.Dot(coef, fv.KernelValues[0]) - e.svm.RegressionRho
	fv.Label = types.ValueLabel(float32(sum))
}

// PredictProbability computes a classification label plus a full
// probability vector. For regression models it falls back to
// PredictValue, matching libSVM's own compatibility behavior. Requires
// e.SVM().Probabilities to be non-nil for classifiers.
func (e *Engine) PredictProbability(fv *types.FeatureVector) error {
	if !e.svm.Type.IsClassification() {
		return e.PredictValue(fv)
	}
	if e.svm.Probabilities == nil {
		return types.ErrNoProbabilities
	}

	if err := e.PredictValue(fv); err != nil {
		return err
	}
	if err := prob.Couple(e.svm, fv); err != nil {
		return err
	}

	best := 0
	for c := 1; c < len(fv.Probabilities); c++ {
		if fv.Probabilities[c] > fv.Probabilities[best] {
			best = c
		}
	}
	fv.Label = types.ClassLabel(e.svm.Classes[best].Label)
	return nil
}
