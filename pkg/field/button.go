package field

import "github.com/goliatone/go-reform/pkg/render/template"

// Button renders a submit control. It is never required and its Clean accepts
// any value.
type Button struct {
	Attributes
}

// NewButton constructs a submit button. Required options are ignored.
func NewButton(options ...Option) *Button {
	attrs := newAttributes("submit", options)
	attrs.Required = false
	return &Button{Attributes: attrs}
}

func (f *Button) Kind() Kind { return KindButton }

// Clean returns raw unchanged.
func (f *Button) Clean(raw string) (any, error) {
	return raw, nil
}

func (f *Button) Render(tagStyle string) string {
	return template.Substitute(buttonTemplate, baseContext(&f.Attributes, tagStyle))
}

func (f *Button) Clone() Field {
	clone := &Button{Attributes: f.Attributes.clone()}
	clone.Required = false
	return clone
}
