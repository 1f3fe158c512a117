package render

import (
	"strings"

	"github.com/goliatone/go-reform/pkg/form"
)

// FieldError is one validation failure, in definition order.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

// MergeMessages concatenates and normalises banner messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// ErrorSummary lists the errors recorded on inst in definition order. It does
// not trigger validation; unbound or unvalidated instances yield nil.
func ErrorSummary(inst *form.Instance) []FieldError {
	if inst == nil {
		return nil
	}
	errs := inst.Errors()
	if len(errs) == 0 {
		return nil
	}

	out := make([]FieldError, 0, len(errs))
	for _, name := range inst.Names() {
		message, ok := errs[name]
		if !ok {
			continue
		}
		entry := FieldError{Field: name, Message: message}
		if f, ok := inst.Field(name); ok {
			entry.Label = f.Attrs().Label
		}
		out = append(out, entry)
	}
	return out
}

// StatusMessage returns the banner line for a bound instance: whether it
// validated. Unbound instances yield "".
func StatusMessage(inst *form.Instance, valid, invalid string) string {
	if inst == nil || !inst.IsBound() {
		return ""
	}
	if inst.Validate() {
		return valid
	}
	return invalid
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
