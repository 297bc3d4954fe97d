// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package prob implements Platt pairwise probability calibration and the
// Wu-Lin-Weng (Method 2) multiclass coupling iteration used to turn
// pairwise decision values into a full class-probability vector.
package prob

import (
	"math"

	"github.com/bitjungle/svmrt/pkg/types"
	"gonum.org/v1/gonum/floats"
)

// minProb bounds pairwise probabilities away from 0/1, matching libSVM's
// own clamp to keep the coupling iteration well-conditioned.
const minProb = 1e-7

// MaxCouplingIterations and CouplingEpsilonFactor are the coupling loop's
// bound and convergence tolerance, overridable via
// internal/config.RuntimeConfig.Apply for callers that need tighter or
// looser numerics than the libSVM defaults (Wu, Lin & Weng 2004).
var (
	MaxCouplingIterations = 100
	CouplingEpsilonFactor = 0.005
)

// PlattPredict evaluates the Platt sigmoid 1/(1+exp(d*a+b)) in the
// numerically stable form that avoids computing exp of a large positive
// argument.
func PlattPredict(d, a, b float64) float64 {
	fApB := d*a + b
	if fApB >= 0 {
		e := math.Exp(-fApB)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(fApB))
}

// Couple fills fv.Probabilities and fv.Pairwise from fv.DecisionValues and
// svm.Probabilities, running the Wu-Lin-Weng coupling iteration for more
// than two classes. svm.Probabilities must be non-nil; callers check this
// (NoProbabilities) before calling Couple.
func Couple(svm *types.SVM, fv *types.FeatureVector) error {
	n := svm.NumClasses()
	a := svm.Probabilities.A
	b := svm.Probabilities.B

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := fv.DecisionValues.At(i, j)
			s := PlattPredict(d, a.At(i, j), b.At(i, j))
			if s < minProb {
				s = minProb
			} else if s > 1-minProb {
				s = 1 - minProb
			}
			fv.Pairwise[i][j] = s
			fv.Pairwise[j][i] = 1 - s
		}
	}

	if n == 2 {
		fv.Probabilities[0] = fv.Pairwise[0][1]
		fv.Probabilities[1] = fv.Pairwise[1][0]
		return nil
	}

	return coupleIterate(fv, n)
}

// coupleIterate runs the bounded Markov-chain-style refinement (Method 2
// in Wu, Lin & Weng, "Probability Estimates for Multi-class Classification
// by Pairwise Coupling", JMLR 5 (2004) 975-1005) over fv.Q/fv.QP/
// fv.Probabilities, which Couple has already sized to n.
func coupleIterate(fv *types.FeatureVector, n int) error {
	maxIter := MaxCouplingIterations
	if n > maxIter {
		maxIter = n
	}
	eps := CouplingEpsilonFactor / float64(n)

	probs := fv.Probabilities
	for t := range probs {
		probs[t] = 1.0 / float64(n)
	}

	q := fv.Q
	for t := 0; t < n; t++ {
		q[t][t] = 0
		for j := 0; j < t; j++ {
			q[t][t] += fv.Pairwise[j][t] * fv.Pairwise[j][t]
			q[t][j] = q[j][t]
		}
		for j := t + 1; j < n; j++ {
			q[t][t] += fv.Pairwise[j][t] * fv.Pairwise[j][t]
			q[t][j] = -fv.Pairwise[j][t] * fv.Pairwise[t][j]
		}
	}

	qp := fv.QP

	for iter := 0; iter <= maxIter; iter++ {
		pqp := 0.0
		for t := 0; t < n; t++ {
			qp[t] = floats.Dot(q[t], probs)
			pqp += probs[t] * qp[t]
		}

		maxError := 0.0
		for t := 0; t < n; t++ {
			if e := math.Abs(qp[t] - pqp); e > maxError {
				maxError = e
			}
		}
		if maxError < eps {
			return nil
		}
		if iter == maxIter {
			return types.NewIterationsExceededError(iter + 1)
		}

		for t := 0; t < n; t++ {
			diff := (pqp - qp[t]) / q[t][t]
			probs[t] += diff
			pqp = (pqp + diff*(diff*q[t][t]+2*qp[t])) / ((1 + diff) * (1 + diff))
			for j := 0; j < n; j++ {
				qp[j] = (qp[j] + diff*q[t][j]) / (1 + diff)
				probs[j] /= 1 + diff
			}
		}
	}
	return types.NewIterationsExceededError(maxIter)
}
