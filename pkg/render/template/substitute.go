package template

import (
	"fmt"
	"regexp"
)

// Context maps placeholder names to the values substituted for them.
type Context map[string]any

var placeholderPattern = regexp.MustCompile(`\(\(\s*(\w+)\s*\)\)`)

// Substitute replaces every ((word)) token in tpl with the matching context
// value coerced to a string. Whitespace inside the parentheses is ignored.
// Missing keys and nil values render as the empty string.
func Substitute(tpl string, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(token string) string {
		match := placeholderPattern.FindStringSubmatch(token)
		if len(match) < 2 {
			return ""
		}
		value, ok := ctx[match[1]]
		if !ok || value == nil {
			return ""
		}
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprint(value)
	})
}
