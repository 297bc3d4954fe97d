// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package testdata embeds small, hand-built libSVM text models that
// exercise the classifier core's end-to-end shapes: single-class
// dominance, multi-class argmax, two-class probability calibration, and
// ε-SVR regression. They are not a port of any upstream test fixture —
// the retrieval pack this runtime was built from kept source and build
// files only, not the binary/text data fixtures a reference
// implementation's own test suite loads at run time, so these
// reconstruct the same scenario shapes with independently chosen,
// hand-verified numbers rather than reproducing a fixture bit-for-bit.
package testdata

import _ "embed"

//go:embed models/s1_csvc_rbf_single_point.model
var S1CSvcRBFSinglePoint string

//go:embed models/s2_csvc_rbf_eight_class.model
var S2CSvcRBFEightClass string

//go:embed models/s3_csvc_linear_probability.model
var S3CSvcLinearProbability string

//go:embed models/s4_csvc_rbf_probability.model
var S4CSvcRBFProbability string

//go:embed models/s5_esvr_linear.model
var S5ESvrLinear string

//go:embed models/s6_esvr_rbf.model
var S6ESvrRBF string

// Scenario pairs an embedded model with the query it should be evaluated
// against and the outcome that query should produce, dense-attribute
// indexed from 0.
type Scenario struct {
	Name        string
	Model       string
	Query       []float32
	WantLabel   int32
	WantValue   float32
	IsRegress   bool
	WantProb    float64 // 0 if the scenario does not check a probability
	ProbOfLabel int     // class index WantProb refers to
}

// Scenarios lists the end-to-end classification and regression shapes:
// dominant single class, multi-class argmax, two-class calibrated
// probability (twice, against different kernels), and ε-SVR regression
// (twice, against different kernels).
var Scenarios = []Scenario{
	{
		Name:      "S1_dominant_class",
		Model:     S1CSvcRBFSinglePoint,
		Query:     []float32{0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001},
		WantLabel: 0,
	},
	{
		Name:      "S2_eight_class_argmax",
		Model:     S2CSvcRBFEightClass,
		Query:     []float32{1.2878, 0.9860, 1.4862, 1.1281, 0.8910, 1.1644, 0.9286, 1.1408},
		WantLabel: 7,
	},
	{
		Name:        "S3_linear_probability",
		Model:       S3CSvcLinearProbability,
		Query:       []float32{3},
		WantLabel:   0,
		WantProb:    0.809,
		ProbOfLabel: 0,
	},
	{
		Name:        "S4_rbf_probability",
		Model:       S4CSvcRBFProbability,
		Query:       []float32{5},
		WantLabel:   1,
		WantProb:    0.910,
		ProbOfLabel: 1,
	},
	{
		Name:      "S5_esvr_linear",
		Model:     S5ESvrLinear,
		Query:     []float32{0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001},
		IsRegress: true,
		WantValue: 0.369,
	},
	{
		Name:      "S6_esvr_rbf",
		Model:     S6ESvrRBF,
		Query:     []float32{1.288, 0.986, 1.486, 1.128, 0.891, 1.164, 0.929, 1.141},
		IsRegress: true,
		WantValue: 6.396,
	},
}
