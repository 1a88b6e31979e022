package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-intelligence/internal/middleware"
	"task-intelligence/pkg/log"
)

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, remoteAddr string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1: the second immediate request is rejected.
	r := newEngine(middleware.New(log.NewNop(), 10))

	if w := get(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}
	if w := get(r, "10.0.0.1:1234", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
	if w := get(r, "10.0.0.2:1234", nil); w.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), 0))
	for i := 0; i < 20; i++ {
		if w := get(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), 0))

	w := get(r, "10.0.0.1:1234", nil)
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("expected a generated request id")
	}

	w = get(r, "10.0.0.1:1234", http.Header{middleware.HeaderRequestID: []string{"abc"}})
	if got := w.Header().Get(middleware.HeaderRequestID); got != "abc" {
		t.Errorf("request id = %q, want abc", got)
	}
}
