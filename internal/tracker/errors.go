package tracker

import "errors"

// Validation errors reported by break add/edit. Callers match them with
// errors.Is; the wrapped message carries the offending values.
var (
	ErrMissingField    = errors.New("start and end time required")
	ErrInvalidInterval = errors.New("invalid break times")
)

var (
	ErrBreakNotFound      = errors.New("break not found")
	ErrNotEditing         = errors.New("no break is being edited")
	ErrInvalidShiftLength = errors.New("shift length must be a positive number of hours")
	ErrInvalidTime        = errors.New("invalid time of day")
)
