package form

import "errors"

var (
	ErrDuplicateField     = errors.New("duplicate field name")
	ErrFieldNotFound      = errors.New("field not found")
	ErrFieldType          = errors.New("field has a different type")
	ErrInvalidField       = errors.New("invalid field")
	ErrInvalidDeclaration = errors.New("invalid form declaration")
	ErrUnknownKind        = errors.New("unknown field kind")
)
