package dao

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	entityType  = reflect.TypeOf((*Entity)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	uuidType    = reflect.TypeOf((*uuid.UUID)(nil)).Elem()
)

// unwrapper is implemented by DAO decorators.
type unwrapper interface {
	Unwrap() DAO
}

// Method looks up the named method on d and returns it as a Func.
// Decorators exposing Unwrap are searched through when d itself lacks the method.
//
// Supported signatures, where T is an entity type and K an identifier type:
//
//	func(context.Context, K) (T, error)
//	func(K) (T, error)
//
// The raw identifier is converted to K on every call; a conversion failure is ErrInvalidID.
func Method(d DAO, name string) (Func, error) {
	if d == nil {
		return nil, ErrNotConnected
	}

	m := reflect.ValueOf(d).MethodByName(name)
	for !m.IsValid() {
		u, ok := d.(unwrapper)
		if !ok {
			return nil, fmt.Errorf("%w: %T.%s", ErrMethodNotFound, d, name)
		}
		d = u.Unwrap()
		m = reflect.ValueOf(d).MethodByName(name)
	}

	mt := m.Type()
	withCtx := mt.NumIn() == 2 && mt.In(0).Implements(contextType) && contextType.AssignableTo(mt.In(0))
	if !(withCtx || mt.NumIn() == 1) || mt.NumOut() != 2 ||
		!mt.Out(0).Implements(entityType) || mt.Out(1) != errorType {
		return nil, fmt.Errorf("%w: %T.%s is %s", ErrBadSignature, d, name, mt)
	}
	keyType := mt.In(mt.NumIn() - 1)

	return func(ctx context.Context, raw any) (Entity, error) {
		key, err := convertID(raw, keyType)
		if err != nil {
			return nil, err
		}

		args := []reflect.Value{key}
		if withCtx {
			args = []reflect.Value{reflect.ValueOf(&ctx).Elem(), key}
		}
		out := m.Call(args)

		if errV := out[1]; !errV.IsNil() {
			return nil, errV.Interface().(error)
		}
		if v := out[0]; v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil, nil
			}
		}
		return out[0].Interface().(Entity), nil
	}, nil
}

func convertID(raw any, to reflect.Type) (reflect.Value, error) {
	if raw == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil", ErrInvalidID)
	}

	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(to) {
		return rv, nil
	}

	if to == uuidType {
		id, err := UUID(raw)
		return reflect.ValueOf(id), err
	}

	out := reflect.New(to).Elem()
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := IntID(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrInvalidID, n, to)
		}
		out.SetInt(n)
		return out, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := IntID(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if n < 0 || out.OverflowUint(uint64(n)) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrInvalidID, n, to)
		}
		out.SetUint(uint64(n))
		return out, nil
	case reflect.String:
		s, err := StringID(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetString(s)
		return out, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrInvalidID, raw, to)
}
