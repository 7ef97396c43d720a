package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required key is absent.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidType is returned when a value has the wrong dynamic type.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when a field has a value outside the allowed set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)
