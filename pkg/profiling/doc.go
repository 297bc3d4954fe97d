// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package profiling provides opt-in memory and goroutine instrumentation,
// gated behind SVMRT_PROFILE/SVMRT_DEBUG environment variables so it costs
// nothing when unused, plus VerifyZeroAllocations for asserting that the
// classifier's predict_value/predict_probability hot path allocates
// nothing once its Engine and FeatureVector exist.
package profiling
