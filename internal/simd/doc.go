// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package simd provides the row-aligned dense matrix, vector, triangular
// matrix and ordered sparse containers the kernel evaluators and
// classifier core are built on.
//
// Every dense row is padded to a multiple of Lanes so that per-SV
// reductions walk fixed-width chunks with no bounds-check surprises at the
// tail; padding entries are always zero so they never contaminate a sum.
// The padding is a memory-layout convention, not a hardware SIMD
// intrinsic — the inner loops are plain Go, written so the compiler can
// autovectorize them, with WideAccumulate (dispatch.go) selecting between a
// scalar and an unrolled accumulation path at runtime.
package simd
