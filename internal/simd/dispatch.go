// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package simd

import "golang.org/x/sys/cpu"

// DispatchEnabled gates WideAccumulate's hardware probe. internal/config's
// RuntimeConfig.Apply sets this from EnableDispatch; tests and callers that
// need to force the portable scalar path (to reproduce a result on hardware
// that lacks the detected feature, or to isolate a dispatch-related bug)
// can also set it directly.
var DispatchEnabled = true

// WideAccumulate reports whether the current CPU is wide enough to be
// worth the unrolled Lanes-at-a-time accumulation path. It is a hint, not
// a correctness requirement: the scalar path computes the same sum, just
// without the unrolling, and agrees with the unrolled one up to rounding.
//
// This replaces hand-written SIMD intrinsics with a feature probe plus
// plain, autovectorization-friendly Go loops — x/sys/cpu tells us what the
// hardware offers, the compiler decides how to use it.
func WideAccumulate() bool {
	if !DispatchEnabled {
		return false
	}
	switch {
	case cpu.X86.HasAVX2:
		return true
	case cpu.ARM64.HasASIMD:
		return true
	default:
		return false
	}
}

// DotUnrolled computes the dot product of two equal-length, Lanes-padded
// slices using an 8-wide unrolled accumulation. Callers choose between
// this and DotScalar via WideAccumulate. Padding entries are always zero and
// add nothing, but the two paths add the products in a different order, so
// their results agree up to floating-point rounding, not bit for bit.
func DotUnrolled(a, b []float32) float64 {
	var acc [Lanes]float64
	n := len(a)
	full := n - n%Lanes
	for i := 0; i < full; i += Lanes {
		for l := 0; l < Lanes; l++ {
			acc[l] += float64(a[i+l]) * float64(b[i+l])
		}
	}
	var sum float64
	for _, v := range acc {
		sum += v
	}
	for i := full; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// DotScalar computes the same dot product one element at a time.
func DotScalar(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// Dot dispatches to the unrolled or scalar path depending on WideAccumulate.
func Dot(a, b []float32) float64 {
	if WideAccumulate() {
		return DotUnrolled(a, b)
	}
	return DotScalar(a, b)
}
