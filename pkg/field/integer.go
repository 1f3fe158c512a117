package field

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-reform/pkg/render/template"
)

// Integer accepts unsigned base-10 digits and cleans them to an int.
type Integer struct {
	Attributes
}

// NewInteger constructs a required integer field.
func NewInteger(options ...Option) *Integer {
	return &Integer{Attributes: newAttributes("text", options)}
}

func (f *Integer) Kind() Kind { return KindInteger }

// Clean rejects any non-digit character, including signs and decimal points.
// Values that overflow int are rejected with the same message.
func (f *Integer) Clean(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return cleanEmpty(&f.Attributes)
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return nil, Invalid(MessageInvalidInt)
		}
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, Invalid(MessageInvalidInt)
	}
	return value, nil
}

func (f *Integer) Render(tagStyle string) string {
	return template.Substitute(inputTemplate, baseContext(&f.Attributes, tagStyle))
}

func (f *Integer) Clone() Field {
	return &Integer{Attributes: f.Attributes.clone()}
}
