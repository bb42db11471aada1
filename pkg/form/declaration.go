package form

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ruFelix/hesper/pkg/calendar"
	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/primitive"
)

// Field kinds accepted in declarations.
const (
	KindDate       = "date"
	KindTimestamp  = "timestamp"
	KindIdentifier = "identifier"
)

// Declaration describes a form in YAML.
type Declaration struct {
	Name   string             `yaml:"name"`
	Fields []FieldDeclaration `yaml:"fields"`
}

// FieldDeclaration describes one field. Min, Max and Default apply to date and timestamp
// kinds; Class and Method to identifiers.
type FieldDeclaration struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Mode     string `yaml:"mode,omitempty"`
	Required bool   `yaml:"required,omitempty"`
	Min      string `yaml:"min,omitempty"`
	Max      string `yaml:"max,omitempty"`
	Default  string `yaml:"default,omitempty"`
	Class    string `yaml:"class,omitempty"`
	Method   string `yaml:"method,omitempty"`
}

// Decode reads one declaration. Unknown keys are rejected.
func Decode(r io.Reader) (Declaration, error) {
	return decodeNamed(r, "")
}

// LoadFile decodes the declaration at path. A missing name defaults to the file's base name.
func LoadFile(filename string) (Declaration, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Declaration{}, err
	}
	defer file.Close()

	return decodeNamed(file, filepath.Base(filename))
}

// LoadDir decodes every *.yaml and *.yml file at the top of fsys, keyed by declaration name.
func LoadDir(fsys fs.FS) (map[string]Declaration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	out := make(map[string]Declaration)
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		file, err := fsys.Open(entry.Name())
		if err != nil {
			return nil, err
		}
		decl, err := decodeNamed(file, entry.Name())
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		if _, ok := out[decl.Name]; ok {
			return nil, fmt.Errorf("%w: form %q declared twice", ErrInvalidDeclaration, decl.Name)
		}
		out[decl.Name] = decl
	}
	return out, nil
}

func decodeNamed(r io.Reader, filename string) (Declaration, error) {
	var decl Declaration
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&decl); err != nil {
		return Declaration{}, fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}
	if decl.Name == "" && filename != "" {
		base := path.Base(filename)
		decl.Name = strings.TrimSuffix(base, path.Ext(base))
	}
	if err := decl.Validate(); err != nil {
		return Declaration{}, err
	}
	return decl, nil
}

// Validate checks names, kinds, modes and date literals without touching a registry.
func (d Declaration) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing form name", ErrInvalidDeclaration)
	}

	var errs []error
	seen := make(map[string]bool, len(d.Fields))
	for i, fd := range d.Fields {
		if fd.Name == "" {
			errs = append(errs, fmt.Errorf("%w: field #%d has no name", ErrInvalidDeclaration, i))
			continue
		}
		if seen[fd.Name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateField, fd.Name))
		}
		seen[fd.Name] = true

		if err := fd.validate(); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", fd.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (fd FieldDeclaration) validate() error {
	if _, err := primitive.ParseMode(fd.Mode); err != nil {
		return err
	}

	switch fd.Kind {
	case KindDate, KindTimestamp:
		if fd.Class != "" || fd.Method != "" {
			return fmt.Errorf("%w: class and method apply to identifiers only", ErrInvalidDeclaration)
		}
		_, _, _, err := fd.bounds()
		return err
	case KindIdentifier:
		if fd.Class == "" {
			return fmt.Errorf("%w: identifier needs a class", ErrInvalidDeclaration)
		}
		if fd.Min != "" || fd.Max != "" || fd.Default != "" {
			return fmt.Errorf("%w: min, max and default apply to dates only", ErrInvalidDeclaration)
		}
		if strings.Contains(fd.Method, "::") {
			if _, _, err := dao.ParseDescriptor(fd.Method); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, fd.Kind)
}

// bounds parses Min, Max and Default for the field kind; blank literals are nil.
func (fd FieldDeclaration) bounds() (lower, upper, def calendar.Value, err error) {
	parse := func(s string) (calendar.Value, error) {
		if s == "" {
			return nil, nil
		}
		if fd.Kind == KindTimestamp {
			return calendar.ParseTimestamp(s)
		}
		return calendar.ParseDate(s)
	}

	if lower, err = parse(fd.Min); err != nil {
		return nil, nil, nil, fmt.Errorf("min: %w", err)
	}
	if upper, err = parse(fd.Max); err != nil {
		return nil, nil, nil, fmt.Errorf("max: %w", err)
	}
	if def, err = parse(fd.Default); err != nil {
		return nil, nil, nil, fmt.Errorf("default: %w", err)
	}
	return lower, upper, def, nil
}

// Build creates a fresh form. Identifier classes and methods are resolved against reg,
// or dao.Default when reg is nil.
func (d Declaration) Build(reg *dao.Registry, opts ...Option) (*Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = dao.Default
	}

	f := New(append([]Option{WithName(d.Name)}, opts...)...)
	for _, fd := range d.Fields {
		field, err := fd.build(reg)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		if err := f.Add(field); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (fd FieldDeclaration) build(reg *dao.Registry) (Field, error) {
	mode, err := primitive.ParseMode(fd.Mode)
	if err != nil {
		return nil, err
	}

	if fd.Kind == KindIdentifier {
		id := primitive.NewIdentifier(fd.Name, primitive.WithRegistry(reg))
		id.SetRequired(fd.Required)
		id.SetMode(mode)
		if err := id.Of(fd.Class); err != nil {
			return nil, err
		}
		if fd.Method != "" && fd.Method != primitive.DefaultMethod {
			if err := id.SetMethodName(fd.Method); err != nil {
				return nil, err
			}
		}
		return id, nil
	}

	date := primitive.NewDate(fd.Name)
	if fd.Kind == KindTimestamp {
		date = primitive.NewTimestamp(fd.Name)
	}
	date.SetRequired(fd.Required)
	date.SetMode(mode)

	lower, upper, def, err := fd.bounds()
	if err != nil {
		return nil, err
	}
	if err := date.SetMin(lower); err != nil {
		return nil, err
	}
	if err := date.SetMax(upper); err != nil {
		return nil, err
	}
	if err := date.SetDefault(def); err != nil {
		return nil, err
	}
	return date, nil
}
