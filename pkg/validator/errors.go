package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidValue is returned when a value cannot be bound to the field.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a value is outside the declared bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a raw value has the wrong shape or format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidDate is returned when components do not form a calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("referenced entity not found")
)
