package dao

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
)

// Class describes a registered entity type and its DAO.
type Class struct {
	name string
	typ  reflect.Type
	dao  DAO
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Type() reflect.Type {
	return c.typ
}

// DAO returns the class DAO, nil when the class is not DAO-connected.
func (c *Class) DAO() DAO {
	return c.dao
}

// Is reports whether e is an instance of the class.
func (c *Class) Is(e Entity) bool {
	return e != nil && reflect.TypeOf(e) == c.typ
}

// Registry maps class names and entity types to classes, and descriptors to static lookup functions.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Class
	byType map[reflect.Type]*Class
	funcs  map[string]Func
}

// Default is the registry used by primitives that are not given one explicitly.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Class),
		byType: make(map[reflect.Type]*Class),
		funcs:  make(map[string]Func),
	}
}

// Register adds the class of sample under name. An empty name falls back to the type name.
// A nil d registers a class that exists but cannot be used for lookups.
func (r *Registry) Register(name string, sample Entity, d DAO) (*Class, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: nil sample for %q", ErrInvalidClass, name)
	}

	typ := reflect.TypeOf(sample)
	if name == "" {
		name = typeName(typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, name)
	}
	if existing, ok := r.byType[typ]; ok {
		return nil, fmt.Errorf("%w: %s already registered as %s", ErrDuplicateClass, typ, existing.name)
	}

	c := &Class{name: name, typ: typ, dao: d}
	r.byName[name] = c
	r.byType[typ] = c
	return c, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, sample Entity, d DAO) *Class {
	c, err := r.Register(name, sample, d)
	if err != nil {
		panic(err)
	}
	return c
}

// Class finds a class by name, by a sample entity, by reflect.Type, or returns a *Class as is.
func (r *Registry) Class(ref any) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		c  *Class
		ok bool
	)
	switch v := ref.(type) {
	case *Class:
		if v != nil {
			return v, nil
		}
	case string:
		c, ok = r.byName[strings.TrimPrefix(v, "\\")]
	case reflect.Type:
		c, ok = r.byType[v]
	case Entity:
		c, ok = r.byType[reflect.TypeOf(v)]
	}

	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrClassNotFound, ref)
	}
	return c, nil
}

// RegisterFunc adds a static lookup function under a "Type::method" descriptor.
func (r *Registry) RegisterFunc(descriptor string, fn Func) error {
	if _, _, err := ParseDescriptor(descriptor); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil function for %s", ErrBadSignature, descriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[descriptor] = fn
	return nil
}

// Func returns the static lookup function registered under descriptor.
func (r *Registry) Func(descriptor string) (Func, error) {
	if _, _, err := ParseDescriptor(descriptor); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[descriptor]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, descriptor)
	}
	return fn, nil
}

// ParseDescriptor splits "Type::method". Type may be package-qualified with dots.
func ParseDescriptor(s string) (typ, method string, err error) {
	typ, method, ok := strings.Cut(s, "::")
	if !ok || strings.Contains(method, "::") {
		return "", "", fmt.Errorf("%w: %q", ErrBadDescriptor, s)
	}
	for _, part := range strings.Split(typ, ".") {
		if !isIdent(part) {
			return "", "", fmt.Errorf("%w: %q", ErrBadDescriptor, s)
		}
	}
	if !isIdent(method) {
		return "", "", fmt.Errorf("%w: %q", ErrBadDescriptor, s)
	}
	return typ, method, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
