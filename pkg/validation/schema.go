// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package validation produces a JSON-serializable summary of a loaded SVM
// model for introspection and logging by an embedding application, and
// checks such a summary against an embedded JSON Schema.
package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitjungle/svmrt/pkg/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/v1/*.json
var schemaFS embed.FS

// ClassSummary describes one class of a loaded model.
type ClassSummary struct {
	Label             int32 `json:"label"`
	NumSupportVectors int   `json:"num_support_vectors"`
}

// ModelSummary is a JSON-serializable snapshot of a loaded SVM, suitable
// for logging or for an embedding application's own diagnostics.
type ModelSummary struct {
	SchemaVersion    string         `json:"schema_version"`
	SVMType          string         `json:"svm_type"`
	KernelType       string         `json:"kernel_type"`
	NumAttributes    int            `json:"num_attributes"`
	NumClasses       int            `json:"num_classes"`
	NumTotalSV       int            `json:"num_total_sv"`
	HasProbabilities bool           `json:"has_probabilities"`
	Classes          []ClassSummary `json:"classes"`
}

const schemaVersion = "v1"

// Summarize builds a ModelSummary from a loaded SVM.
func Summarize(svm *types.SVM) ModelSummary {
	classes := make([]ClassSummary, len(svm.Classes))
	for i, c := range svm.Classes {
		classes[i] = ClassSummary{Label: c.Label, NumSupportVectors: c.NumSupportVectors}
	}

	return ModelSummary{
		SchemaVersion:    schemaVersion,
		SVMType:          svm.Type.String(),
		KernelType:       svm.Kernel.Type.String(),
		NumAttributes:    svm.NumAttributes,
		NumClasses:       svm.NumClasses(),
		NumTotalSV:       svm.NumTotalSV,
		HasProbabilities: svm.Probabilities != nil,
		Classes:          classes,
	}
}

// ValidateSummary checks serialized summary JSON against the embedded
// schema for its declared schema_version. This is a diagnostic aid for
// applications that persist summaries; it is never on the prediction path.
func ValidateSummary(data []byte) error {
	var probe struct {
		SchemaVersion string `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	version := probe.SchemaVersion
	if version == "" {
		version = schemaVersion
	}

	schemaPath := fmt.Sprintf("schemas/%s/model-summary.schema.json", version)
	schemaData, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("unknown schema version %q: %w", version, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		return formatValidationErrors(result.Errors())
	}
	return nil
}

func formatValidationErrors(errors []gojsonschema.ResultError) error {
	if len(errors) == 0 {
		return nil
	}

	var msgs []string
	for _, err := range errors {
		field := err.Field()
		if field == "(root)" {
			field = "summary"
		}
		msgs = append(msgs, fmt.Sprintf("  - %s: %s", field, err.Description()))
	}

	return fmt.Errorf("validation failed:\n%s", strings.Join(msgs, "\n"))
}
