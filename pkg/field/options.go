package field

import "strings"

// Option configures a field at construction time.
type Option func(*Attributes)

// Required sets whether an empty submission fails validation. Fields are
// required unless configured otherwise; Button ignores this option.
func Required(required bool) Option {
	return func(a *Attributes) {
		a.Required = required
	}
}

// Optional is shorthand for Required(false).
func Optional() Option {
	return Required(false)
}

// WithLabel sets an explicit label. When left empty the form definition derives
// one from the field name.
func WithLabel(label string) Option {
	return func(a *Attributes) {
		a.Label = label
	}
}

// WithHelpText sets the assistive copy rendered next to the control.
func WithHelpText(text string) Option {
	return func(a *Attributes) {
		a.HelpText = text
	}
}

// WithInitial sets the value displayed before any data is bound.
func WithInitial(value any) Option {
	return func(a *Attributes) {
		a.Initial = value
	}
}

// WithInputType overrides the input type render hint (for example "tel" or
// "url" on a Text field).
func WithInputType(inputType string) Option {
	return func(a *Attributes) {
		if trimmed := strings.TrimSpace(inputType); trimmed != "" {
			a.InputType = trimmed
		}
	}
}

// WithChoices sets the ordered options offered by Dropdown and RadioChoice.
// Other variants keep the choices but never consult them.
func WithChoices(choices ...Choice) Option {
	return func(a *Attributes) {
		a.Choices = append([]Choice(nil), choices...)
	}
}

// Pairs builds choices from [value, label] pairs. Entries with fewer than two
// elements use the value as label.
func Pairs(pairs ...[]string) []Choice {
	out := make([]Choice, 0, len(pairs))
	for _, pair := range pairs {
		switch len(pair) {
		case 0:
			continue
		case 1:
			out = append(out, Choice{Value: pair[0], Label: pair[0]})
		default:
			out = append(out, Choice{Value: pair[0], Label: pair[1]})
		}
	}
	return out
}
