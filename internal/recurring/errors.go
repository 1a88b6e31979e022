package recurring

import "errors"

var (
	ErrMissingRecurrence = errors.New("template has no recurrence code")
	ErrInvalidRecurrence = errors.New("template recurrence code is not valid")
	ErrInvalidCount      = errors.New("instance count must be positive")
)
