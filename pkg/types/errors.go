// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the external error taxonomy a classifier operation
// can surface.
type ErrorKind string

const (
	// ErrKindMissingAttribute indicates a required header key was absent.
	ErrKindMissingAttribute ErrorKind = "missing_required_attribute"
	// ErrKindAttributesUnordered indicates a dense SV row's indices were
	// not the strictly increasing 0..n sequence the dense layout requires.
	ErrKindAttributesUnordered ErrorKind = "attributes_unordered"
	// ErrKindNoGamma indicates a kernel needing gamma did not have one.
	ErrKindNoGamma ErrorKind = "no_gamma"
	// ErrKindNoCoef0 indicates a kernel needing coef0 did not have one.
	ErrKindNoCoef0 ErrorKind = "no_coef0"
	// ErrKindNoDegree indicates the polynomial kernel lacked a degree.
	ErrKindNoDegree ErrorKind = "no_degree"
	// ErrKindNoProbabilities indicates predict_probability was called on
	// a model that was not trained with probability estimates.
	ErrKindNoProbabilities ErrorKind = "no_probabilities"
	// ErrKindIterationsExceeded indicates the coupling iteration failed to
	// converge within its bound.
	ErrKindIterationsExceeded ErrorKind = "iterations_exceeded"
	// ErrKindUnsupportedKernel indicates a one-class SVM or a precomputed
	// kernel was requested; both are explicitly out of scope.
	ErrKindUnsupportedKernel ErrorKind = "unsupported_kernel"
	// ErrKindValidation indicates a structurally invalid model or input.
	ErrKindValidation ErrorKind = "validation"
)

// ClassifierError is a structured error for svmrt operations. It carries a
// Kind so callers can distinguish error categories with errors.Is/As
// without parsing the message.
type ClassifierError struct {
	Kind    ErrorKind
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *ClassifierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ClassifierError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match two ClassifierErrors purely by Kind, so callers
// can write errors.Is(err, &ClassifierError{Kind: ErrKindNoGamma}) or, more
// conveniently, compare against one of the sentinels below.
func (e *ClassifierError) Is(target error) bool {
	var other *ClassifierError
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// Sentinels for errors.Is against the external taxonomy in spec.md §6.
var (
	ErrMissingRequiredAttribute = &ClassifierError{Kind: ErrKindMissingAttribute, Message: "missing required attribute"}
	ErrNoGamma                  = &ClassifierError{Kind: ErrKindNoGamma, Message: "gamma required but absent"}
	ErrNoCoef0                  = &ClassifierError{Kind: ErrKindNoCoef0, Message: "coef0 required but absent"}
	ErrNoDegree                 = &ClassifierError{Kind: ErrKindNoDegree, Message: "degree required but absent"}
	ErrNoProbabilities          = &ClassifierError{Kind: ErrKindNoProbabilities, Message: "model has no probability data"}
	ErrIterationsExceeded       = &ClassifierError{Kind: ErrKindIterationsExceeded, Message: "coupling iteration did not converge"}
	ErrUnsupportedKernel        = &ClassifierError{Kind: ErrKindUnsupportedKernel, Message: "unsupported svm or kernel type"}
)

// NewValidationError creates a structural/validation error.
func NewValidationError(message string, cause error) *ClassifierError {
	return &ClassifierError{Kind: ErrKindValidation, Message: message, Cause: cause}
}

// NewMissingAttributeError creates a MissingRequiredAttribute error naming
// the missing header key.
func NewMissingAttributeError(key string) *ClassifierError {
	return &ClassifierError{
		Kind:    ErrKindMissingAttribute,
		Message: fmt.Sprintf("header missing required key %q", key),
		Context: map[string]any{"key": key},
	}
}

// AttributesUnorderedError is returned by the dense loader when a support
// vector's attribute indices are not the strictly increasing 0..n sequence
// the dense layout requires. It carries the offending index/value and the
// last index seen, per spec.md §6.
type AttributesUnorderedError struct {
	Index     uint32
	Value     float32
	LastIndex int64 // -1 if this was the first attribute in the row
}

// Error implements the error interface.
func (e *AttributesUnorderedError) Error() string {
	return fmt.Sprintf("attributes_unordered: index %d (value %g) does not follow last index %d", e.Index, e.Value, e.LastIndex)
}

// Kind reports the error taxonomy kind, for callers that switch on it
// rather than doing a type assertion.
func (e *AttributesUnorderedError) Kind() ErrorKind { return ErrKindAttributesUnordered }

// NewIterationsExceededError creates an IterationsExceeded error recording
// how many iterations were attempted.
func NewIterationsExceededError(iterations int) *ClassifierError {
	return &ClassifierError{
		Kind:    ErrKindIterationsExceeded,
		Message: "multiclass probability coupling did not converge",
		Context: map[string]any{"iterations": iterations},
	}
}
