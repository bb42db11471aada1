package primitive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ruFelix/hesper/pkg/dao"
)

// DefaultMethod names the lookup used when no other resolution method is configured.
const DefaultMethod = "GetByID"

// Identifier binds a reference to a persisted entity.
type Identifier struct {
	Base
	registry *dao.Registry
	class    *dao.Class
	resolver Resolver
	value    dao.Entity
}

// IdentifierOption configures an Identifier.
type IdentifierOption func(*Identifier)

// WithRegistry makes Of and static method descriptors use r instead of dao.Default.
func WithRegistry(r *dao.Registry) IdentifierOption {
	return func(f *Identifier) {
		if r != nil {
			f.registry = r
		}
	}
}

func NewIdentifier(name string, opts ...IdentifierOption) *Identifier {
	f := &Identifier{Base: Base{name: name}, registry: dao.Default}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Of sets the expected entity class: a registered class name, a sample entity, or a *dao.Class.
// The class must have a DAO. Changing the class resets the resolution method to the default.
func (f *Identifier) Of(class any) error {
	c, err := f.registry.Class(class)
	if err != nil {
		return err
	}
	if c.DAO() == nil {
		return fmt.Errorf("%w: %s", dao.ErrNotConnected, c.Name())
	}
	f.class = c
	f.resolver = nil
	return nil
}

// Class returns the configured class, nil before Of.
func (f *Identifier) Class() *dao.Class {
	return f.class
}

// DAO returns the data access object of the configured class.
func (f *Identifier) DAO() (dao.DAO, error) {
	if f.class == nil {
		return nil, f.errClassNotSet()
	}
	return f.class.DAO(), nil
}

// SetMethodName selects how raw identifiers are resolved. m is one of:
//   - a Resolver, ResolverFunc, dao.Func or func(context.Context, any) (dao.Entity, error);
//   - the name of a method on the class DAO, such as "GetBySlug";
//   - a "Type::method" descriptor of a function registered with dao.Registry.RegisterFunc.
//
// Names and descriptors are checked now, not at import time.
func (f *Identifier) SetMethodName(m any) error {
	switch v := m.(type) {
	case Resolver:
		f.resolver = v
	case dao.Func:
		f.resolver = ResolverFunc(v)
	case func(context.Context, any) (dao.Entity, error):
		f.resolver = ResolverFunc(v)
	case string:
		if !strings.Contains(v, "::") {
			d, err := f.DAO()
			if err != nil {
				return err
			}
			fn, err := dao.Method(d, v)
			if err != nil {
				return err
			}
			f.resolver = ResolverFunc(fn)
			return nil
		}

		fn, err := f.registry.Func(v)
		if err != nil {
			return err
		}
		f.resolver = ResolverFunc(fn)
	default:
		return fmt.Errorf("%w: unsupported resolution method %T", ErrWrongType, m)
	}
	return nil
}

// SetResolver is SetMethodName for a Resolver.
func (f *Identifier) SetResolver(r Resolver) {
	f.resolver = r
}

// Value returns the resolved entity, nil when none.
func (f *Identifier) Value() dao.Entity {
	return f.value
}

// Clean drops the resolved entity and raw input.
func (f *Identifier) Clean() {
	f.clean()
	f.value = nil
}

// Import resolves the field's entry in scope.
//
// An entity of the expected class already present in scope is taken as is.
// A blank entry is ResultEmpty. Unknown or malformed identifiers are ResultFailed.
// An entity of another class returned by the resolver is ResultFailed with a reason
// wrapping ErrWrongType. The error is non-nil when Of was not called or when the resolver
// fails with anything other than dao.ErrNotFound or dao.ErrInvalidID.
func (f *Identifier) Import(ctx context.Context, scope Scope) (Result, error) {
	if f.class == nil {
		return ResultFailed, f.errClassNotSet()
	}
	f.Clean()

	if e, ok := scope[f.name].(dao.Entity); ok && !dao.IsNil(e) {
		if !f.class.Is(e) {
			f.raw = e
			return f.fail(fmt.Errorf("%w: %q expects %s, got %T", ErrWrongType, f.name, f.class.Name(), e)), nil
		}
		f.raw = e.ID()
		f.value = e
		f.imported = true
		return ResultImported, nil
	}

	raw, r := f.importRaw(scope)
	if r != ResultImported {
		return r, nil
	}

	e, err := f.resolve(ctx, raw)
	switch {
	case errors.Is(err, dao.ErrNotFound), errors.Is(err, dao.ErrInvalidID):
		return f.fail(err), nil
	case err != nil:
		return ResultFailed, fmt.Errorf("resolve %q: %w", f.name, err)
	case dao.IsNil(e):
		return f.fail(fmt.Errorf("%w: %v", dao.ErrNotFound, raw)), nil
	case !f.class.Is(e):
		return f.fail(fmt.Errorf("%w: %q resolved %T, expected %s", ErrWrongType, f.name, e, f.class.Name())), nil
	}

	f.value = e
	f.imported = true
	return ResultImported, nil
}

// ImportValue binds v. An entity must be of the configured class, otherwise the import
// fails without resolution; its identifier is then resolved like submitted input.
// Any other value is imported as a raw identifier.
func (f *Identifier) ImportValue(ctx context.Context, v any) (Result, error) {
	if f.class == nil {
		return ResultFailed, f.errClassNotSet()
	}

	if e, ok := v.(dao.Entity); ok && !dao.IsNil(e) {
		if !f.class.Is(e) {
			f.Clean()
			f.raw = e
			return f.fail(fmt.Errorf("%w: %q expects %s, got %T", ErrWrongType, f.name, f.class.Name(), e)), nil
		}
		return f.Import(ctx, Scope{f.name: e.ID()})
	}

	return f.Import(ctx, Scope{f.name: v})
}

// Export returns the identifier of the resolved entity as it was submitted, nil when none.
func (f *Identifier) Export() any {
	if f.value == nil {
		return nil
	}
	return f.raw
}

func (f *Identifier) resolve(ctx context.Context, raw any) (dao.Entity, error) {
	if f.resolver != nil {
		return f.resolver.Resolve(ctx, raw)
	}
	return f.class.DAO().GetByID(ctx, raw)
}

func (f *Identifier) errClassNotSet() error {
	return fmt.Errorf("%w: %q", ErrClassNotSet, f.name)
}
