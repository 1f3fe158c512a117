package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-reform/internal/label"
	"github.com/goliatone/go-reform/pkg/field"
)

var (
	ErrEmptyFieldName = errors.New("form: field name is required")
	ErrDuplicateField = errors.New("form: duplicate field name")
	ErrNilField       = errors.New("form: field is nil")
)

// Entry pairs a field name with its field. Definitions keep entries in the
// order they are supplied.
type Entry struct {
	Name  string
	Field field.Field
}

// F is shorthand for Entry{Name: name, Field: f}.
func F(name string, f field.Field) Entry {
	return Entry{Name: name, Field: f}
}

// Source is implemented by Definition and Instance; both can be cloned.
type Source interface {
	cloneFields() []field.Field
	sourcePrefix() string
}

// Definition is an immutable, ordered schema of named fields.
type Definition struct {
	fields []field.Field
	index  map[string]int
}

// New builds a Definition from entries. Each supplied field is copied, so the
// caller's values are never retained or modified. The copy receives its name
// and, when no label was configured, a label derived from the name.
func New(entries ...Entry) (*Definition, error) {
	def := &Definition{
		fields: make([]field.Field, 0, len(entries)),
		index:  make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, ErrEmptyFieldName
		}
		if entry.Field == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilField, name)
		}
		if _, exists := def.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}

		f := entry.Field.Clone()
		attrs := f.Attrs()
		attrs.Name = name
		attrs.Error = ""
		if attrs.Label == "" {
			attrs.Label = label.Make(name)
		}

		def.index[name] = len(def.fields)
		def.fields = append(def.fields, f)
	}

	return def, nil
}

// MustNew panics when New fails. Useful for package-level definitions.
func MustNew(entries ...Entry) *Definition {
	def, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return def
}

// Len returns the number of fields.
func (d *Definition) Len() int {
	if d == nil {
		return 0
	}
	return len(d.fields)
}

// Names returns field names in definition order.
func (d *Definition) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.fields))
	for _, f := range d.fields {
		names = append(names, f.Attrs().Name)
	}
	return names
}

// Field returns a copy of the named field.
func (d *Definition) Field(name string) (field.Field, bool) {
	if d == nil {
		return nil, false
	}
	idx, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.fields[idx].Clone(), true
}

// Clone returns a new Instance of the definition. See the package-level Clone.
func (d *Definition) Clone(data Data, prefix string) *Instance {
	return Clone(d, data, prefix)
}

func (d *Definition) cloneFields() []field.Field {
	return cloneAll(d.fields)
}

func (d *Definition) sourcePrefix() string {
	return ""
}

func cloneAll(fields []field.Field) []field.Field {
	out := make([]field.Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}
