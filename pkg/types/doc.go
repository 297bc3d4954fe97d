// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package types defines the core data structures for the svmrt classifier
// runtime: the immutable SVM model, its classes, and the mutable
// FeatureVector scratchpad bound to a model for repeated classification.
//
// # Core Types
//
//   - SVM: an immutable, thread-shareable model loaded from a libSVM text
//     file (classification or regression, dense or sparse support vectors).
//   - Class: one label's support vectors and its per-pair coefficients.
//   - FeatureVector: per-query scratch memory, reused across calls.
//
// # Error Handling
//
// ClassifierError carries a Kind drawn from the external error taxonomy
// (missing header fields, unordered dense attributes, missing kernel
// parameters, no probability data, coupling non-convergence) plus optional
// Context for debugging.
//
// # Thread Safety
//
// An SVM is read-only after construction and safe for concurrent use by
// reference. A FeatureVector is not safe for concurrent use — each
// goroutine must own its own instance.
package types
