package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-intelligence/pkg/log"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with an ID so log lines can be correlated.
// An incoming X-Request-ID header is reused.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
