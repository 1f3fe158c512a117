package field

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-reform/pkg/render/template"
)

// DefaultTagStyle wraps each field when no tag style is supplied.
const DefaultTagStyle = "li"

const inputTemplate = `<((tag))>
  <label for="id_((name))">((label))</label>
  ((help_text))
  ((error))
  <input type="((input_type))"
         name="((name))"
         id="id_((name))"
         value="((value))" />
</((tag))>`

const textAreaTemplate = `<((tag))>
  <label for="id_((name))">((label))</label>
  ((help_text))
  ((error))
  <textarea name="((name))"
            id="id_((name))">((value))</textarea>
</((tag))>`

const selectTemplate = `<((tag))>
  <label for="id_((name))">((label))</label>
  ((help_text))
  ((error))
  <select name="((name))" id="id_((name))">
((choices))
  </select>
</((tag))>`

const optionTemplate = `    <option value="((value))"((selected))>((label))</option>`

const radioGroupTemplate = `<((tag))>
  <span class="label">((label))</span>
  ((help_text))
  ((error))
((choices))
</((tag))>`

const radioTemplate = `  <label for="id_((name))_((index))"><input type="radio" name="((name))" id="id_((name))_((index))" value="((value))"((checked)) /> ((label))</label>`

const buttonTemplate = `<((tag))>
  <button type="((input_type))"
          name="((name))"
          id="id_((name))"
          value="((value))">((label))</button>
</((tag))>`

// baseContext builds the substitution context shared by all variants.
func baseContext(a *Attributes, tagStyle string) template.Context {
	tag := strings.TrimSpace(tagStyle)
	if tag == "" {
		tag = DefaultTagStyle
	}

	ctx := template.Context{
		"tag":        tag,
		"name":       a.FullName(),
		"label":      a.Label,
		"value":      a.Initial,
		"input_type": a.InputType,
		"help_text":  "",
		"error":      "",
	}
	if a.HelpText != "" {
		ctx["help_text"] = `<p class="help">` + a.HelpText + `</p>`
	}
	if a.Error != "" {
		ctx["error"] = `<p class="error">` + a.Error + `</p>`
	}
	return ctx
}

// renderChoices renders one fragment per choice in declaration order. marker
// is the attribute written when the choice matches the current value.
func renderChoices(a *Attributes, tpl, markerKey, marker string) string {
	if len(a.Choices) == 0 {
		return ""
	}
	current := displayValue(a.Initial)
	parts := make([]string, 0, len(a.Choices))
	for idx, choice := range a.Choices {
		ctx := template.Context{
			"name":    a.FullName(),
			"value":   choice.Value,
			"label":   choice.Label,
			"index":   idx,
			markerKey: "",
		}
		if choice.Value == current {
			ctx[markerKey] = marker
		}
		parts = append(parts, template.Substitute(tpl, ctx))
	}
	return strings.Join(parts, "\n")
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
