// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package batch

import (
	"strings"
	"testing"

	"github.com/bitjungle/svmrt/internal/testdata"
	svmrt "github.com/bitjungle/svmrt/pkg/svm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWritesOnePredictionPerRow(t *testing.T) {
	m, err := svmrt.NewDenseSVM(testdata.S1CSvcRBFSinglePoint)
	require.NoError(t, err)

	input := strings.NewReader(
		"id,f0,f1,f2,f3,f4,f5,f6,f7\n" +
			"r1,0.0001,0.0001,0.0001,0.0001,0.0001,0.0001,0.0001,0.0001\n" +
			"r2,5,5,5,5,5,5,5,5\n",
	)
	var out strings.Builder

	require.NoError(t, Classify(m, input, &out, DefaultOptions()))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3, "want header + 2 rows")
	assert.Equal(t, "id,prediction", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "r1,0"), "row1 = %q, want class 0", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "r2,1"), "row2 = %q, want class 1", lines[2])
}

func TestClassifyWithProbabilityAppendsClassColumns(t *testing.T) {
	m, err := svmrt.NewDenseSVM(testdata.S4CSvcRBFProbability)
	require.NoError(t, err)

	input := strings.NewReader("f0\n5\n")
	var out strings.Builder

	opts := DefaultOptions()
	opts.HasRowNames = false
	opts.WithProbability = true
	require.NoError(t, Classify(m, input, &out, opts))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "prediction,probability_0,probability_1", lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 3)
	assert.Equal(t, "1", fields[0])
}

func TestClassifyRejectsFeatureCountMismatch(t *testing.T) {
	m, err := svmrt.NewDenseSVM(testdata.S1CSvcRBFSinglePoint)
	require.NoError(t, err)

	input := strings.NewReader("f0,f1,f2\n1,2,3\n")
	var out strings.Builder

	opts := DefaultOptions()
	opts.HasRowNames = false
	assert.Error(t, Classify(m, input, &out, opts))
}
