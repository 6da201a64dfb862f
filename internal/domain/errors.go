package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
//
// None of them describe malformed user text: parse problems are reported as
// localized messages inside ParseResult, never as Go errors.
var (
	ErrValidation          = errors.New("validation error")
	ErrMissingKeyword      = errors.New("missing keyword configuration")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// MissingKeywordError names the translation key a parser could not do without.
type MissingKeywordError struct {
	Language string
	Key      string
}

func (e *MissingKeywordError) Error() string {
	return fmt.Sprintf("missing keyword %q for language %q", e.Key, e.Language)
}

func (e *MissingKeywordError) Unwrap() error { return ErrMissingKeyword }
