// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package batch is a thin CSV convenience layer over pkg/svm: it reads a
// matrix of feature rows and classifies every row against one bound SVM,
// writing a CSV of results. It is a library, not a CLI — every entry
// point takes an io.Reader/io.Writer, never os.Args or a file path.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bitjungle/svmrt/pkg/security"
	svmrt "github.com/bitjungle/svmrt/pkg/svm"
	"github.com/bitjungle/svmrt/pkg/types"
	"github.com/bitjungle/svmrt/pkg/utils"
)

// Options configures how a feature CSV is read and how results are
// written, mirroring the shape (delimiter, header/row-name flags, missing
// value tokens) the rest of this runtime's CSV-adjacent tooling uses.
type Options struct {
	// Delimiter is the field separator. DefaultOptions uses ','.
	Delimiter rune
	// DecimalSeparator is the decimal point character within a field.
	DecimalSeparator rune
	// HasHeaders skips the first input row. The output header row holds
	// the input's first header cell when HasRowNames is set, then the
	// result columns; the feature column names are not copied.
	HasHeaders bool
	// HasRowNames treats the first column as a row identifier, carried
	// through to the output rather than parsed as a feature.
	HasRowNames bool
	// MissingValues lists tokens treated as missing; a missing feature is
	// written into the FeatureVector as 0, matching libSVM's own sparse
	// convention of omitting an attribute rather than modeling "unknown."
	MissingValues []string
	// WithProbability runs PredictProbability instead of PredictValue and
	// appends one probability column per class. m must have been trained
	// with probability estimates.
	WithProbability bool
}

// DefaultOptions returns comma-delimited, dot-decimal, headered,
// row-named options with the runtime's standard missing-value tokens.
func DefaultOptions() Options {
	return Options{
		Delimiter:        ',',
		DecimalSeparator: '.',
		HasHeaders:       true,
		HasRowNames:      true,
		MissingValues:    utils.DefaultMissingValues(),
	}
}

// Classify reads feature rows from input, classifies each against m, and
// writes one CSV result row per input row to output. It reuses a single
// FeatureVector across all rows, so per-row classification allocates
// nothing beyond what the CSV codec itself allocates for string parsing.
func Classify(m *types.SVM, input io.Reader, output io.Writer, opts Options) error {
	reader := csv.NewReader(input)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("empty CSV input")
	}

	startRow := 0
	var header []string
	if opts.HasHeaders {
		header = records[0]
		startRow = 1
	}
	if startRow >= len(records) {
		return fmt.Errorf("no data rows after header")
	}

	startCol := 0
	if opts.HasRowNames {
		startCol = 1
	}
	numFeatures := len(records[startRow]) - startCol
	if numFeatures != m.Attributes() {
		return fmt.Errorf("row has %d features, model expects %d", numFeatures, m.Attributes())
	}
	if err := security.ValidateCSVDimensions(len(records)-startRow, numFeatures); err != nil {
		return fmt.Errorf("validating CSV dimensions: %w", err)
	}

	writer := csv.NewWriter(output)
	defer writer.Flush()

	if opts.HasHeaders {
		if err := writer.Write(buildOutputHeader(header, startCol, m, opts.WithProbability)); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	fv := svmrt.NewFeatureVector(m)
	for _, record := range records[startRow:] {
		if len(record)-startCol != numFeatures {
			return fmt.Errorf("row has %d features, want %d", len(record)-startCol, numFeatures)
		}

		if fv.IsDense() {
			for i, field := range record[startCol:] {
				v, _, err := utils.ParseNumericValueWithMissing(field, opts.DecimalSeparator, opts.MissingValues)
				if err != nil {
					return fmt.Errorf("parsing feature %d: %w", i, err)
				}
				if v != v { // NaN: treat a missing feature as 0.
					v = 0
				}
				fv.SetDense(i, float32(v))
			}
		} else {
			fv.Clear()
			for i, field := range record[startCol:] {
				v, missing, err := utils.ParseNumericValueWithMissing(field, opts.DecimalSeparator, opts.MissingValues)
				if err != nil {
					return fmt.Errorf("parsing feature %d: %w", i, err)
				}
				if missing || v == 0 {
					continue
				}
				fv.SetSparse(uint32(i), float32(v))
			}
		}

		if opts.WithProbability {
			if err := svmrt.PredictProbability(m, fv); err != nil {
				return fmt.Errorf("predicting probability: %w", err)
			}
		} else if err := svmrt.PredictValue(m, fv); err != nil {
			return fmt.Errorf("predicting value: %w", err)
		}

		out := buildOutputRow(record, startCol, opts.HasRowNames, fv, opts.WithProbability)
		if err := writer.Write(out); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	return writer.Error()
}

func buildOutputHeader(header []string, startCol int, m *types.SVM, withProbability bool) []string {
	out := make([]string, 0, 2+len(m.Classes))
	if startCol > 0 && len(header) > 0 {
		out = append(out, header[0])
	}
	out = append(out, "prediction")
	if withProbability {
		for _, c := range m.Classes {
			out = append(out, fmt.Sprintf("probability_%d", c.Label))
		}
	}
	return out
}

func buildOutputRow(record []string, startCol int, hasRowNames bool, fv *types.FeatureVector, withProbability bool) []string {
	out := make([]string, 0, 2+len(fv.Probabilities))
	if hasRowNames {
		out = append(out, record[0])
	}
	out = append(out, formatLabel(fv.Label))
	if withProbability {
		for _, p := range fv.Probabilities {
			out = append(out, strconv.FormatFloat(p, 'g', -1, 64))
		}
	}
	return out
}

func formatLabel(label types.Label) string {
	if label.Kind == types.LabelValue {
		return strconv.FormatFloat(float64(label.Value), 'g', -1, 32)
	}
	return strconv.FormatInt(int64(label.Class), 10)
}
