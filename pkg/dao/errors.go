package dao

import "errors"

var (
	// ErrNotFound is returned by a DAO when no entity exists for the identifier.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID is returned when an identifier has the wrong type or format for the lookup.
	ErrInvalidID = errors.New("invalid identifier")

	ErrClassNotFound  = errors.New("class is not registered")
	ErrNotConnected   = errors.New("class has no data access object")
	ErrDuplicateClass = errors.New("class is already registered")
	ErrInvalidClass   = errors.New("invalid class")
	ErrMethodNotFound = errors.New("lookup method not found")
	ErrBadSignature   = errors.New("lookup method has an unsupported signature")
	ErrBadDescriptor  = errors.New("malformed static method descriptor")
)
