// Package field defines the typed, named validation and rendering units that
// make up a form. Every variant implements Field independently; shared
// attributes live in the embedded Attributes struct.
package field

// Kind identifies a field variant.
type Kind string

const (
	KindText        Kind = "text"
	KindPassword    Kind = "password"
	KindTextArea    Kind = "textarea"
	KindEmail       Kind = "email"
	KindInteger     Kind = "integer"
	KindDropdown    Kind = "dropdown"
	KindRadioChoice Kind = "radio"
	KindButton      Kind = "button"
)

// Kinds lists every built-in variant in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindText, KindPassword, KindTextArea, KindEmail,
		KindInteger, KindDropdown, KindRadioChoice, KindButton,
	}
}

// Field is the capability every variant implements.
//
// Clean validates and normalises one raw submitted value. A failed validation
// is reported as a *ValidationError; any other error is a programming error.
// Render produces the markup fragment for the field wrapped in tagStyle.
// Clone returns a copy that shares no mutable storage with the receiver.
type Field interface {
	Kind() Kind
	Attrs() *Attributes
	Clean(raw string) (any, error)
	Render(tagStyle string) string
	Clone() Field
}

// Choice is a (value, label) pair offered by choice variants.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Attributes holds the state shared by every variant. Name is assigned once
// when a form definition is built; Prefix, Initial and Error change only on
// per-request form instances.
type Attributes struct {
	Name      string
	Label     string
	HelpText  string
	Required  bool
	Initial   any
	InputType string
	Prefix    string
	Choices   []Choice
	Error     string
}

// Attrs returns a pointer to the receiver so variants embedding Attributes
// satisfy that part of Field.
func (a *Attributes) Attrs() *Attributes {
	return a
}

// FullName is the field name with the instance prefix prepended.
func (a *Attributes) FullName() string {
	return a.Prefix + a.Name
}

func (a Attributes) clone() Attributes {
	out := a
	if a.Choices != nil {
		out.Choices = append([]Choice(nil), a.Choices...)
	}
	return out
}

func newAttributes(inputType string, options []Option) Attributes {
	attrs := Attributes{
		Required:  true,
		Initial:   "",
		InputType: inputType,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&attrs)
	}
	return attrs
}
