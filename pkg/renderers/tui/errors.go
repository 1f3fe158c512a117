package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalid is returned when collected answers still fail validation,
	// which only happens with drivers that skip the per-field validator.
	ErrInvalid = errors.New("tui: collected values are invalid")
)
