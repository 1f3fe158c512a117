package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-reform/pkg/field"
)

// Data is the raw submitted mapping, keyed by (prefixed) field name.
type Data map[string]string

// Instance is a per-request copy of a Definition, optionally bound to
// submitted data.
type Instance struct {
	fields []field.Field
	index  map[string]int
	prefix string

	bound   bool
	data    Data
	cleaned map[string]any
	errors  map[string]string
}

// Clone deep-copies every field of src into a new Instance. A non-empty prefix
// is applied to every copied field; otherwise fields keep the prefix they had
// in src. When data is non-nil the instance is bound to it immediately.
func Clone(src Source, data Data, prefix string) *Instance {
	fields := src.cloneFields()
	inst := &Instance{
		fields: fields,
		index:  make(map[string]int, len(fields)),
		prefix: src.sourcePrefix(),
	}
	if prefix != "" {
		inst.prefix = prefix
	}
	for i, f := range fields {
		attrs := f.Attrs()
		if prefix != "" {
			attrs.Prefix = prefix
		}
		inst.index[attrs.Name] = i
	}
	if data != nil {
		inst.Bind(data)
	}
	return inst
}

// Clone returns a new Instance copied from this one. Bound data, cleaned data
// and errors are not carried over; field attributes (including any displayed
// values and inline errors) are.
func (i *Instance) Clone(data Data, prefix string) *Instance {
	return Clone(i, data, prefix)
}

// Bind attaches submitted data. Keys carrying the instance prefix that name a
// field update that field's displayed value. Binding does not validate.
func (i *Instance) Bind(data Data) *Instance {
	i.bound = true
	i.data = make(Data, len(data))
	for key, value := range data {
		i.data[key] = value

		if !strings.HasPrefix(key, i.prefix) {
			continue
		}
		if idx, ok := i.index[strings.TrimPrefix(key, i.prefix)]; ok {
			i.fields[idx].Attrs().Initial = value
		}
	}
	return i
}

// Validate cleans every field against the bound data and reports whether all
// of them passed. Every field is attempted even after a failure. Unbound
// instances are never valid and are left untouched. Repeated calls produce the
// same cleaned data and errors.
//
// Clean failures other than *field.ValidationError are programming errors and
// cause a panic.
func (i *Instance) Validate() bool {
	if !i.bound {
		return false
	}

	i.cleaned = make(map[string]any, len(i.fields))
	i.errors = make(map[string]string)
	valid := true

	for _, f := range i.fields {
		attrs := f.Attrs()
		attrs.Error = ""

		raw := i.data[i.prefix+attrs.Name]
		value, err := f.Clean(raw)
		if err == nil {
			i.cleaned[attrs.Name] = value
			continue
		}

		vErr, ok := field.AsValidationError(err)
		if !ok {
			panic(fmt.Errorf("form: clean field %q: %w", attrs.Name, err))
		}
		i.errors[attrs.Name] = vErr.Message
		attrs.Error = vErr.Message
		valid = false
	}

	return valid
}

// Valid is an alias for Validate.
func (i *Instance) Valid() bool {
	return i.Validate()
}

// Render validates bound instances so errors show inline, then joins every
// field's markup in definition order. An empty tagStyle renders list items.
func (i *Instance) Render(tagStyle string) string {
	if i.bound {
		i.Validate()
	}
	if strings.TrimSpace(tagStyle) == "" {
		tagStyle = field.DefaultTagStyle
	}

	parts := make([]string, 0, len(i.fields))
	for _, f := range i.fields {
		parts = append(parts, f.Render(tagStyle))
	}
	return strings.Join(parts, "\n")
}

// IsBound reports whether data has been bound.
func (i *Instance) IsBound() bool {
	return i.bound
}

// Prefix returns the namespace applied to field names.
func (i *Instance) Prefix() string {
	return i.prefix
}

// Data returns a copy of the bound data, or nil when unbound.
func (i *Instance) Data() Data {
	if !i.bound {
		return nil
	}
	out := make(Data, len(i.data))
	for key, value := range i.data {
		out[key] = value
	}
	return out
}

// CleanedData returns a copy of the values produced by the last validation
// pass, or nil before any pass ran.
func (i *Instance) CleanedData() map[string]any {
	if i.cleaned == nil {
		return nil
	}
	out := make(map[string]any, len(i.cleaned))
	for key, value := range i.cleaned {
		out[key] = value
	}
	return out
}

// Errors returns a copy of the messages recorded by the last validation pass,
// or nil before any pass ran.
func (i *Instance) Errors() map[string]string {
	if i.errors == nil {
		return nil
	}
	out := make(map[string]string, len(i.errors))
	for key, value := range i.errors {
		out[key] = value
	}
	return out
}

// Names returns field names in definition order.
func (i *Instance) Names() []string {
	names := make([]string, 0, len(i.fields))
	for _, f := range i.fields {
		names = append(names, f.Attrs().Name)
	}
	return names
}

// Fields returns copies of the instance fields in definition order.
func (i *Instance) Fields() []field.Field {
	return cloneAll(i.fields)
}

// Field returns a copy of the named field.
func (i *Instance) Field(name string) (field.Field, bool) {
	idx, ok := i.index[name]
	if !ok {
		return nil, false
	}
	return i.fields[idx].Clone(), true
}

func (i *Instance) cloneFields() []field.Field {
	return cloneAll(i.fields)
}

func (i *Instance) sourcePrefix() string {
	return i.prefix
}
