package field

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-reform/pkg/render/template"
)

// emailPattern accepts local@domain where the domain has at least one dot.
var emailPattern = regexp.MustCompile(`^[\w.\-]+@[\w\-]+(?:\.[\w\-]+)+$`)

// Email is a text input whose non-empty values must look like an address.
type Email struct {
	Attributes
}

// NewEmail constructs a required email field.
func NewEmail(options ...Option) *Email {
	return &Email{Attributes: newAttributes("email", options)}
}

func (f *Email) Kind() Kind { return KindEmail }

func (f *Email) Clean(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return cleanEmpty(&f.Attributes)
	}
	if !emailPattern.MatchString(trimmed) {
		return nil, Invalid(MessageInvalidEmail)
	}
	return trimmed, nil
}

func (f *Email) Render(tagStyle string) string {
	return template.Substitute(inputTemplate, baseContext(&f.Attributes, tagStyle))
}

func (f *Email) Clone() Field {
	return &Email{Attributes: f.Attributes.clone()}
}
