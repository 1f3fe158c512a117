package field

import "fmt"

// New constructs a field of the given kind. It is used by declarative loaders
// that only know the variant by name.
func New(kind Kind, options ...Option) (Field, error) {
	switch kind {
	case KindText:
		return NewText(options...), nil
	case KindPassword:
		return NewPassword(options...), nil
	case KindTextArea:
		return NewTextArea(options...), nil
	case KindEmail:
		return NewEmail(options...), nil
	case KindInteger:
		return NewInteger(options...), nil
	case KindDropdown:
		return NewDropdown(options...), nil
	case KindRadioChoice:
		return NewRadioChoice(options...), nil
	case KindButton:
		return NewButton(options...), nil
	default:
		return nil, fmt.Errorf("field: unknown kind %q", kind)
	}
}

var (
	_ Field = (*Text)(nil)
	_ Field = (*Password)(nil)
	_ Field = (*TextArea)(nil)
	_ Field = (*Email)(nil)
	_ Field = (*Integer)(nil)
	_ Field = (*Dropdown)(nil)
	_ Field = (*RadioChoice)(nil)
	_ Field = (*Button)(nil)
)
