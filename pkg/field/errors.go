package field

import "errors"

// Messages reported by the built-in variants.
const (
	MessageRequired     = "This field is required."
	MessageInvalidEmail = "Invalid email address."
	MessageInvalidInt   = "This field must contain a non-decimal number."
)

// ValidationError signals that a raw value did not pass a field's Clean. It is
// the only error Clean is expected to return.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid constructs a ValidationError carrying message.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// AsValidationError reports whether err is (or wraps) a ValidationError and
// returns it.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// cleanEmpty applies the shared required/optional branch for an empty value.
func cleanEmpty(a *Attributes) (any, error) {
	if a.Required {
		return nil, Invalid(MessageRequired)
	}
	return nil, nil
}
