// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rid

import "fmt"

// Component field names as reported by FieldError and
// MissingFieldError.
const (
	FieldService  = "service"
	FieldInstance = "instance"
	FieldType     = "type"
	FieldLocator  = "locator"
)

// ParseError reports that a candidate string does not conform to the
// resource identifier grammar. It carries the full candidate for
// diagnostics but no finer structure: the full-string scan reports
// only overall validity, not which component failed. Construct from
// components (New) to find out which input was wrong.
type ParseError struct {
	// RID is the candidate string that failed to parse, verbatim.
	RID string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("illegal resource identifier format: %q", e.RID)
}

// FieldError reports that a single named component failed its grammar
// during component-wise construction.
type FieldError struct {
	// Field is the component that failed: one of the Field*
	// constants.
	Field string
	// Value is the rejected input, verbatim.
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("illegal %s format: %q", e.Field, e.Value)
}

// MissingFieldError reports that a staged Builder reached Build
// without a required component having been supplied.
type MissingFieldError struct {
	// Field is the component that was never supplied.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("resource identifier %s component was never supplied", e.Field)
}
