package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-intelligence/pkg/errors"
)

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error sends a failure envelope. An *errors.HTTPError anywhere in the chain
// decides the status; anything else is a 400. Messages of 5xx errors are
// replaced with DefaultErrorMessage.
func Error(c *gin.Context, err error, data map[string]any) {
	status := http.StatusBadRequest
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}

	if status >= http.StatusInternalServerError {
		c.JSON(status, Resp{
			ErrorCode: status,
			Message:   DefaultErrorMessage,
		})
		return
	}

	code := CodeInvalid
	if httpErr != nil {
		code = status
	}
	if data == nil {
		data = map[string]any{}
	}
	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Data:      data,
	})
}

// Abort stops the handler chain with a bare status envelope.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Resp{
		ErrorCode: status,
		Message:   message,
	})
}
