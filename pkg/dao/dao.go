package dao

import (
	"context"
	"reflect"
)

// Entity is any domain object exposing a stable identifier.
type Entity interface {
	ID() any
}

// DAO looks up entities of one class.
type DAO interface {
	GetByID(ctx context.Context, id any) (Entity, error)
}

// Func resolves a raw identifier to an entity.
type Func func(ctx context.Context, raw any) (Entity, error)

// IsNil reports whether e is nil or a nil pointer behind the interface.
func IsNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
