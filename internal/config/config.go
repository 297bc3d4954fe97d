// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package config collects the runtime's tunable constants in one place,
// mirroring the teacher's practice of a small typed config struct with a
// documented default rather than scattered package-level constants.
package config

import (
	"github.com/bitjungle/svmrt/internal/prob"
	"github.com/bitjungle/svmrt/internal/simd"
)

// RuntimeConfig holds the knobs that affect classification numerics and
// dispatch, as opposed to the model itself (which is fixed once loaded).
type RuntimeConfig struct {
	// Lanes is the SIMD lane width dense storage rows are padded to, and
	// the unrolled-accumulation width the kernel evaluators use on the
	// fast path. Changing this requires re-padding any already-built
	// simd.Matrix, so it is a build-time constant in practice
	// (internal/simd.Lanes); RuntimeConfig only documents its value for
	// callers that need to reason about padding externally.
	Lanes int

	// MaxCouplingIterations caps the Wu-Lin-Weng probability coupling
	// loop. The algorithm guarantees convergence well within nr_class
	// iterations for well-formed calibration data; this bounds runtime
	// against pathological inputs.
	MaxCouplingIterations int

	// CouplingEpsilon is the convergence threshold for the coupling loop,
	// scaled by 1/nr_class per Wu, Lin & Weng (2004).
	CouplingEpsilon float64

	// EnableDispatch controls whether the RBF/linear kernels use the
	// CPU-feature-detected unrolled accumulation path (internal/simd.Dot)
	// or always fall back to the portable scalar loop. Disabling it is
	// useful for reproducing behavior on a machine that lacks the
	// detected feature, or for isolating a dispatch-related bug.
	EnableDispatch bool
}

// DefaultRuntimeConfig returns the configuration internal/classify and
// internal/prob use when none is supplied explicitly.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Lanes:                 simd.Lanes,
		MaxCouplingIterations: prob.MaxCouplingIterations,
		CouplingEpsilon:       prob.CouplingEpsilonFactor,
		EnableDispatch:        true,
	}
}

// Apply pushes c's tunables into internal/simd and internal/prob's package
// state. It affects every Engine and coupling call made after it returns,
// not just ones constructed afterward, since those packages have no
// per-instance configuration of their own.
func (c RuntimeConfig) Apply() {
	simd.DispatchEnabled = c.EnableDispatch
	prob.MaxCouplingIterations = c.MaxCouplingIterations
	prob.CouplingEpsilonFactor = c.CouplingEpsilon
}
