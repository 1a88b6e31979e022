package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/response"
)

const (
	ServiceName    = "task-intelligence"
	ServiceVersion = "1.0.0"
)

// statusResp is the body of every probe.
type statusResp struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Timezone string `json:"timezone"`
	Calendar bool   `json:"calendar"`
}

func (srv HTTPServer) status(s string) statusResp {
	return statusResp{
		Status:   s,
		Service:  ServiceName,
		Version:  ServiceVersion,
		Timezone: srv.dates.Location().String(),
		Calendar: srv.calendar != nil,
	}
}

// healthCheck reports the service identity and engine settings.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck answers 200 once the task store responds to a ping.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp "Store unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.db != nil {
		if err := srv.db.Ping(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: store ping: %v", err)
			response.Abort(c, http.StatusServiceUnavailable, "Store unavailable")
			return
		}
	}
	response.OK(c, srv.status("ready"))
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
