package field

import (
	"strings"

	"github.com/goliatone/go-reform/pkg/render/template"
)

// Text is a single-line free text input.
type Text struct {
	Attributes
}

// NewText constructs a required text field.
func NewText(options ...Option) *Text {
	return &Text{Attributes: newAttributes("text", options)}
}

func (f *Text) Kind() Kind { return KindText }

// Clean trims raw and rejects empty input on required fields. Optional fields
// clean empty input to nil.
func (f *Text) Clean(raw string) (any, error) {
	return cleanText(&f.Attributes, raw)
}

func (f *Text) Render(tagStyle string) string {
	return template.Substitute(inputTemplate, baseContext(&f.Attributes, tagStyle))
}

func (f *Text) Clone() Field {
	return &Text{Attributes: f.Attributes.clone()}
}

// Password behaves like Text but renders a masked input.
type Password struct {
	Attributes
}

// NewPassword constructs a required password field.
func NewPassword(options ...Option) *Password {
	return &Password{Attributes: newAttributes("password", options)}
}

func (f *Password) Kind() Kind { return KindPassword }

func (f *Password) Clean(raw string) (any, error) {
	return cleanText(&f.Attributes, raw)
}

func (f *Password) Render(tagStyle string) string {
	return template.Substitute(inputTemplate, baseContext(&f.Attributes, tagStyle))
}

func (f *Password) Clone() Field {
	return &Password{Attributes: f.Attributes.clone()}
}

// TextArea behaves like Text but renders a multi-line control.
type TextArea struct {
	Attributes
}

// NewTextArea constructs a required multi-line text field.
func NewTextArea(options ...Option) *TextArea {
	return &TextArea{Attributes: newAttributes("textarea", options)}
}

func (f *TextArea) Kind() Kind { return KindTextArea }

func (f *TextArea) Clean(raw string) (any, error) {
	return cleanText(&f.Attributes, raw)
}

func (f *TextArea) Render(tagStyle string) string {
	return template.Substitute(textAreaTemplate, baseContext(&f.Attributes, tagStyle))
}

func (f *TextArea) Clone() Field {
	return &TextArea{Attributes: f.Attributes.clone()}
}

func cleanText(a *Attributes, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		return trimmed, nil
	}
	return cleanEmpty(a)
}
