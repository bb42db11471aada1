package calendar

import "errors"

var (
	// ErrInvalidArgument is returned when a date or timestamp cannot be constructed from the input.
	ErrInvalidArgument = errors.New("invalid date argument")
)
