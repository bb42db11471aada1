package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ruFelix/hesper/pkg/calendar"
	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/logger"
	"github.com/ruFelix/hesper/pkg/primitive"
	"github.com/ruFelix/hesper/pkg/validator"
)

// Field is the behaviour shared by primitive.Date and primitive.Identifier.
type Field interface {
	Name() string
	Required() bool
	Import(ctx context.Context, scope primitive.Scope) (primitive.Result, error)
	Export() any
	Raw() any
	Reason() error
	Clean()
}

var (
	_ Field = (*primitive.Date)(nil)
	_ Field = (*primitive.Identifier)(nil)
)

// Form is an ordered set of uniquely named fields.
type Form struct {
	name   string
	fields []Field
	index  map[string]int
	errs   validator.ValidationErrors
	log    *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger for field failures (debug) and faults (error).
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithName names the form in log records.
func WithName(name string) Option {
	return func(f *Form) {
		f.name = name
	}
}

func New(opts ...Option) *Form {
	f := &Form{
		index: make(map[string]int),
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("form"))
	if f.name != "" {
		f.log = f.log.With(logger.Form(f.name))
	}
	return f
}

func (f *Form) Name() string {
	return f.name
}

// Add appends fields. Names must be non-empty and unique within the form.
func (f *Form) Add(fields ...Field) error {
	for _, field := range fields {
		if field == nil || field.Name() == "" {
			return fmt.Errorf("%w: field without a name", ErrInvalidField)
		}
		if _, ok := f.index[field.Name()]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, field.Name())
		}
		f.index[field.Name()] = len(f.fields)
		f.fields = append(f.fields, field)
	}
	return nil
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []Field {
	return f.fields
}

func (f *Form) Get(name string) (Field, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.fields[i], true
}

// Date returns the named date or timestamp field.
func (f *Form) Date(name string) (*primitive.Date, error) {
	return lookup[*primitive.Date](f, name)
}

// Identifier returns the named identifier field.
func (f *Form) Identifier(name string) (*primitive.Identifier, error) {
	return lookup[*primitive.Identifier](f, name)
}

func lookup[T Field](f *Form, name string) (T, error) {
	var zero T
	field, ok := f.Get(name)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	typed, ok := field.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T", ErrFieldType, name, field)
	}
	return typed, nil
}

// Import imports every field from scope.
//
// It returns nil when all fields imported or were left blank without being required,
// validator.ValidationErrors describing each rejected field otherwise. A fault reported
// by a field stops the import and is returned wrapped with the field name.
func (f *Form) Import(ctx context.Context, scope primitive.Scope) error {
	f.errs = nil

	for _, field := range f.fields {
		res, err := field.Import(ctx, scope)
		if err != nil {
			f.log.ErrorContext(ctx, "field import fault", logger.Field(field.Name()), logger.Error(err))
			return fmt.Errorf("field %q: %w", field.Name(), err)
		}

		switch res {
		case primitive.ResultEmpty:
			if field.Required() {
				f.errs.Add(validator.Required(field.Name(), true).Error)
			}
		case primitive.ResultFailed:
			f.log.DebugContext(ctx, "field rejected",
				logger.Field(field.Name()),
				logger.Result(res),
				logger.Error(field.Reason()),
			)
			f.errs = append(f.errs, explain(field)...)
		}
	}

	if f.errs.IsEmpty() {
		return nil
	}
	return f.errs
}

// Errors returns the validation errors of the last Import.
func (f *Form) Errors() validator.ValidationErrors {
	return f.errs
}

// Valid reports whether the last Import produced no validation errors.
func (f *Form) Valid() bool {
	return f.errs.IsEmpty()
}

// Export returns every field's raw export keyed by name.
func (f *Form) Export() primitive.Scope {
	out := make(primitive.Scope, len(f.fields))
	for _, field := range f.fields {
		out[field.Name()] = field.Export()
	}
	return out
}

// Clean resets every field and the collected errors.
func (f *Form) Clean() {
	for _, field := range f.fields {
		field.Clean()
	}
	f.errs = nil
}

// explain turns a failed field's reason into validation errors carrying translation keys.
func explain(field Field) validator.ValidationErrors {
	name, reason := field.Name(), field.Reason()

	if verrs := validator.ExtractValidationErrors(reason); verrs != nil {
		return verrs
	}

	var rule validator.Rule
	switch {
	case errors.Is(reason, validator.ErrFieldRequired):
		rule = validator.Required(name, true)
	case errors.Is(reason, dao.ErrNotFound):
		rule = validator.Exists(name, field.Raw(), false)
	case errors.Is(reason, calendar.ErrInvalidArgument),
		errors.Is(reason, validator.ErrInvalidFormat),
		errors.Is(reason, dao.ErrInvalidID),
		errors.Is(reason, primitive.ErrWrongType):
		rule = validator.Format(name, false)
	default:
		rule = validator.Invalid(name)
	}
	return validator.ValidationErrors{rule.Error}
}
