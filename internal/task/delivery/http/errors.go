package http

import (
	"errors"
	"net/http"

	"task-intelligence/internal/task"
	pkgErrors "task-intelligence/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrNoTasksParsed),
		errors.Is(err, task.ErrInvalidRecurrence),
		errors.Is(err, task.ErrInvalidCount),
		errors.Is(err, task.ErrNotTemplate):
		return pkgErrors.NewBadRequest("%v", err)
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrDependencyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrDependencyCycle),
		errors.Is(err, task.ErrTaskClosed),
		errors.Is(err, task.ErrTemplateNotComplete):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
