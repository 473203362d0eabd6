package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is returned when a pattern attribute cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
)
