// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package security provides resource-exhaustion and malformed-input guards
// for loading untrusted libSVM model files and batch CSV feature data.
package security

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits for untrusted model and batch input, sized to stop a hostile or
// corrupt file from exhausting memory before the loader gets a chance to
// reject it structurally.
const (
	MaxModelFileSize  = 500 * 1024 * 1024 // 500MB max libSVM model text
	MaxCSVRows        = 1000000           // 1M rows max per batch file
	MaxCSVColumns     = 10000             // 10K columns max per batch row
	MaxFieldLength    = 100000            // 100K chars per field
	MaxStringLength   = 10000             // 10K chars for general strings
	MaxClasses        = 10000             // Max classes a loaded model may declare
	MaxSupportVectors = 5000000           // Max total support vectors a model may declare
	MaxAttributes     = 1000000           // Max attribute dimensionality
	MaxKernelGamma    = 1e6               // Max kernel gamma value
	MinKernelGamma    = 1e-6              // Min kernel gamma value
	MaxIterations     = 10000             // Max coupling iterations
)

// ValidateNumericInput validates and sanitizes numeric input within bounds
func ValidateNumericInput(input string, min, max float64, paramName string) (float64, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return 0, fmt.Errorf("%s: empty input", paramName)
	}

	for _, r := range input {
		if !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E' {
			return 0, fmt.Errorf("%s: invalid character '%c' in numeric input", paramName, r)
		}
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid numeric value: %w", paramName, err)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s: invalid numeric value (NaN or Inf)", paramName)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("%s: value %.6f out of range [%.6f, %.6f]", paramName, value, min, max)
	}

	return value, nil
}

// ValidateIntegerInput validates integer input within bounds
func ValidateIntegerInput(input string, min, max int, paramName string) (int, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return 0, fmt.Errorf("%s: empty input", paramName)
	}

	for i, r := range input {
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%s: invalid character '%c' in integer input", paramName, r)
		}
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer value: %w", paramName, err)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("%s: value %d out of range [%d, %d]", paramName, value, min, max)
	}

	return value, nil
}

// ValidateStringInput validates and sanitizes string input
func ValidateStringInput(input string, maxLength int, allowedChars string, paramName string) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("%s: invalid UTF-8 encoding", paramName)
	}

	if len(input) > maxLength {
		return "", fmt.Errorf("%s: string too long (%d > %d)", paramName, len(input), maxLength)
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, input)

	if allowedChars != "" {
		for _, r := range cleaned {
			if !strings.ContainsRune(allowedChars, r) {
				return "", fmt.Errorf("%s: contains disallowed character '%c'", paramName, r)
			}
		}
	}

	return cleaned, nil
}

// ValidateKernelParameters validates SVM kernel parameters pulled from an
// untrusted model header before they reach the kernel evaluators.
func ValidateKernelParameters(kernelType string, gamma, degree float64, coef0 float64) error {
	validKernels := map[string]bool{
		"rbf":        true,
		"polynomial": true,
		"sigmoid":    true,
		"linear":     true,
	}

	if !validKernels[strings.ToLower(kernelType)] {
		return fmt.Errorf("invalid kernel type: %s", kernelType)
	}

	if kernelType == "rbf" || kernelType == "polynomial" || kernelType == "sigmoid" {
		if gamma < MinKernelGamma || gamma > MaxKernelGamma {
			return fmt.Errorf("gamma %.6f out of range [%.6f, %.6f]", gamma, MinKernelGamma, MaxKernelGamma)
		}
	}

	if kernelType == "polynomial" {
		if degree < 1 || degree > 10 {
			return fmt.Errorf("polynomial degree %.0f out of range [1, 10]", degree)
		}
	}

	if kernelType == "polynomial" || kernelType == "sigmoid" {
		if math.Abs(coef0) > 1000 {
			return fmt.Errorf("coef0 %.2f out of range [-1000, 1000]", coef0)
		}
	}

	return nil
}

// ValidateModelDimensions validates a libSVM header's declared class and
// support-vector counts before the loader allocates storage for them,
// preventing a corrupt or hostile header from requesting an unreasonable
// allocation.
func ValidateModelDimensions(numClasses, totalSV, numAttributes int) error {
	if numClasses <= 0 {
		return fmt.Errorf("invalid class count: %d", numClasses)
	}
	if totalSV <= 0 {
		return fmt.Errorf("invalid support vector count: %d", totalSV)
	}
	if numAttributes <= 0 {
		return fmt.Errorf("invalid attribute count: %d", numAttributes)
	}

	if numClasses > MaxClasses {
		return fmt.Errorf("too many classes: %d (max %d)", numClasses, MaxClasses)
	}
	if totalSV > MaxSupportVectors {
		return fmt.Errorf("too many support vectors: %d (max %d)", totalSV, MaxSupportVectors)
	}
	if numAttributes > MaxAttributes {
		return fmt.Errorf("too many attributes: %d (max %d)", numAttributes, MaxAttributes)
	}

	return nil
}

// ValidateCSVDimensions validates a batch CSV feature file's row/column
// counts before allocating per-row FeatureVectors.
func ValidateCSVDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("invalid dimensions: rows=%d, cols=%d", rows, cols)
	}

	if rows > MaxCSVRows {
		return fmt.Errorf("too many rows: %d (max %d)", rows, MaxCSVRows)
	}

	if cols > MaxCSVColumns {
		return fmt.Errorf("too many columns: %d (max %d)", cols, MaxCSVColumns)
	}

	return nil
}

// ValidateCSVDelimiter validates a CSV delimiter character
func ValidateCSVDelimiter(delimiter string) (rune, error) {
	if len(delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character")
	}

	r := rune(delimiter[0])

	validDelimiters := []rune{',', ';', '\t', '|', ' '}
	valid := false
	for _, d := range validDelimiters {
		if r == d {
			valid = true
			break
		}
	}

	if !valid {
		return 0, fmt.Errorf("invalid delimiter: '%c'", r)
	}

	return r, nil
}
