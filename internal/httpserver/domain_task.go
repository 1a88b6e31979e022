package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-intelligence/internal/middleware"
	"task-intelligence/internal/recurring"
	taskHTTP "task-intelligence/internal/task/delivery/http"
	taskUC "task-intelligence/internal/task/usecase"
	"task-intelligence/internal/taskparse"
)

// setupTaskDomain initializes the task domain and registers its routes under /api/v1.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	parser := taskparse.New(srv.dates)

	var opts []taskUC.Option
	if srv.calendar != nil {
		opts = append(opts, taskUC.WithCalendar(srv.calendar))
		srv.l.Infof(ctx, "Calendar export enabled for generated instances")
	}

	uc := taskUC.New(srv.l, srv.taskRepo, parser, srv.scorer, recurring.NewGenerator(), srv.ucConfig, opts...)
	h := taskHTTP.New(srv.l, uc, parser, srv.dates, srv.scorer)

	taskHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
