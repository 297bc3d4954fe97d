// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package classify

import (
	"math"

	"github.com/bitjungle/svmrt/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// Margin summarizes how decisively the winning class beat every other
// class in a classification. It supplements, but never replaces, the
// label/probability outcome: unlike probabilities it needs no calibration
// data, so it is available even for models trained without probability
// estimates.
type Margin struct {
	Mean   float64
	StdDev float64
}

// MarginDiagnostics reports the mean and standard deviation of the
// absolute pairwise decision values between fv's winning class and every
// other class. fv must already hold a classification result from
// PredictValue or PredictProbability; it is a read-only, non-hot-path
// helper and may allocate.
func MarginDiagnostics(svm *types.SVM, fv *types.FeatureVector) (Margin, bool) {
	if fv.Label.Kind != types.LabelClass {
		return Margin{}, false
	}
	winner, ok := svm.ClassIndexForLabel(fv.Label.Class)
	if !ok {
		return Margin{}, false
	}

	n := svm.NumClasses()
	if n < 2 {
		return Margin{}, false
	}

	margins := make([]float64, 0, n-1)
	for j := 0; j < n; j++ {
		if j == winner {
			continue
		}
		margins = append(margins, math.Abs(fv.DecisionValues.At(winner, j)))
	}

	return Margin{
		Mean:   stat.Mean(margins, nil),
		StdDev: stat.StdDev(margins, nil),
	}, true
}
