package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"task-intelligence/internal/task/repository"
	"task-intelligence/internal/task/usecase"
	"task-intelligence/internal/urgency"
	"task-intelligence/pkg/datemath"
	"task-intelligence/pkg/log"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int

	// Task domain
	taskRepo repository.Repository
	db       Pinger
	dates    *datemath.Parser
	scorer   *urgency.Scorer
	ucConfig usecase.Config
	calendar usecase.Calendar
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Task domain
	TaskRepository repository.Repository
	DB             Pinger
	Dates          *datemath.Parser
	Scorer         *urgency.Scorer
	UseCase        usecase.Config
	Calendar       usecase.Calendar // optional
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimitPerMin,
		taskRepo:    cfg.TaskRepository,
		db:          cfg.DB,
		dates:       cfg.Dates,
		scorer:      cfg.Scorer,
		ucConfig:    cfg.UseCase,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskRepo == nil {
		return errors.New("task repository is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.scorer == nil {
		return errors.New("urgency scorer is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
