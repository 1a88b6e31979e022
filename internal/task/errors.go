package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput          = errors.New("input text is empty")
	ErrNoTasksParsed       = errors.New("no tasks parsed from input")
	ErrTaskNotFound        = errors.New("task not found")
	ErrDependencyNotFound  = errors.New("dependency task not found")
	ErrDependencyCycle     = errors.New("dependency would create a cycle")
	ErrInvalidRecurrence   = errors.New("invalid recurrence code")
	ErrNotTemplate         = errors.New("task is not a recurrence template")
	ErrTemplateNotComplete = errors.New("recurrence templates cannot be completed")
	ErrInvalidCount        = errors.New("instance count out of range")
	ErrTaskClosed          = errors.New("task is not pending")
)
