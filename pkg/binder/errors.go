package binder

import (
	"errors"
	"fmt"
)

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON data")
	ErrInvalidTarget        = errors.New("invalid decode target")
	ErrInvalidValue         = errors.New("invalid value")
)

// FieldError reports a value that could not be decoded into its struct field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
