// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package security guards the boundary where untrusted input enters the
// runtime: libSVM model text of unknown provenance and batch CSV feature
// files. It implements bounds checking, not cryptography.
//
// # Input Validation
//
// Generic validators for numeric and string parameters pulled from
// configuration or model headers:
//   - Numeric values with bounds checking
//   - String inputs with length and character restrictions
//
// # Model and Batch Limits
//
// ValidateModelDimensions and ValidateCSVDimensions reject declared
// dimensions beyond these limits. pkg/batch calls ValidateCSVDimensions on
// each CSV input; internal/loader does not call into this package, so model
// text is not checked against them when it is loaded:
//   - Maximum model file size: 500MB
//   - Maximum classes: 10,000
//   - Maximum support vectors: 5,000,000
//   - Maximum attributes: 1,000,000
//   - Maximum CSV rows: 1,000,000
//   - Maximum CSV columns: 10,000
//
// # Usage
//
//	if err := security.ValidateModelDimensions(numClasses, totalSV, numAttributes); err != nil {
//		return nil, err
//	}
package security
