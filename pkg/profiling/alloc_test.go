// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package profiling

import (
	"testing"

	"github.com/bitjungle/svmrt/internal/classify"
	"github.com/bitjungle/svmrt/internal/loader"
	"github.com/bitjungle/svmrt/pkg/types"
)

const rbfModel = `svm_type c_svc
kernel_type rbf
gamma 0.5
nr_class 2
total_sv 2
rho 0.1
label 0 1
nr_sv 1 1
SV
1 0:1 1:2
-1 0:3 1:4
`

func TestPredictValueAllocatesNothing(t *testing.T) {
	m, err := loader.LoadDense(rbfModel)
	if err != nil {
		t.Fatalf("LoadDense: %v", err)
	}
	engine := classify.NewEngine(m)
	fv := types.NewDenseFeatureVector(m)
	fv.SetDense(0, 1)
	fv.SetDense(1, 2)

	allocs := VerifyZeroAllocations(func() {
		if err := engine.PredictValue(fv); err != nil {
			t.Fatalf("PredictValue: %v", err)
		}
	})
	if allocs != 0 {
		t.Errorf("PredictValue allocated %.2f times per call on average, want 0", allocs)
	}
}
