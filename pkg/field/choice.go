package field

import "github.com/goliatone/go-reform/pkg/render/template"

// Dropdown renders its choices as a <select> element.
type Dropdown struct {
	Attributes
}

// NewDropdown constructs a required dropdown. Choices are supplied with
// WithChoices.
func NewDropdown(options ...Option) *Dropdown {
	return &Dropdown{Attributes: newAttributes("select", options)}
}

func (f *Dropdown) Kind() Kind { return KindDropdown }

func (f *Dropdown) Clean(raw string) (any, error) {
	return cleanChoice(&f.Attributes, raw)
}

func (f *Dropdown) Render(tagStyle string) string {
	ctx := baseContext(&f.Attributes, tagStyle)
	ctx["choices"] = renderChoices(&f.Attributes, optionTemplate, "selected", " selected")
	return template.Substitute(selectTemplate, ctx)
}

func (f *Dropdown) Clone() Field {
	return &Dropdown{Attributes: f.Attributes.clone()}
}

// RadioChoice renders its choices as a group of radio inputs.
type RadioChoice struct {
	Attributes
}

// NewRadioChoice constructs a required radio group.
func NewRadioChoice(options ...Option) *RadioChoice {
	return &RadioChoice{Attributes: newAttributes("radio", options)}
}

func (f *RadioChoice) Kind() Kind { return KindRadioChoice }

func (f *RadioChoice) Clean(raw string) (any, error) {
	return cleanChoice(&f.Attributes, raw)
}

func (f *RadioChoice) Render(tagStyle string) string {
	ctx := baseContext(&f.Attributes, tagStyle)
	ctx["choices"] = renderChoices(&f.Attributes, radioTemplate, "checked", ` checked="checked"`)
	return template.Substitute(radioGroupTemplate, ctx)
}

func (f *RadioChoice) Clone() Field {
	return &RadioChoice{Attributes: f.Attributes.clone()}
}

// cleanChoice scans choices in order for an exact, untrimmed match.
func cleanChoice(a *Attributes, raw string) (any, error) {
	for _, choice := range a.Choices {
		if choice.Value == raw {
			return choice.Value, nil
		}
	}
	return cleanEmpty(a)
}
