package middleware

import (
	"task-intelligence/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates a Middleware. A requestsPerMin of zero or less disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
