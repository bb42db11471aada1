package primitive

import "errors"

var (
	// ErrClassNotSet is returned when an Identifier is used before Of.
	ErrClassNotSet = errors.New("identifier class is not set")

	// ErrWrongType is returned when a value's dynamic type does not match the primitive.
	ErrWrongType = errors.New("value has the wrong type")

	// ErrInvalidRange is returned when bounds or a preset value violate min <= value <= max.
	ErrInvalidRange = errors.New("value violates the configured range")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("unknown representation mode")
)
