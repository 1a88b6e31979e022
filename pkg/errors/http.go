package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common HTTP errors shared by delivery packages.
var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// NewBadRequest formats a 400 error.
func NewBadRequest(format string, args ...any) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}
