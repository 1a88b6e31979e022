package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-intelligence/config"
	_ "task-intelligence/docs" // Swagger docs
	"task-intelligence/internal/httpserver"
	"task-intelligence/internal/task/repository"
	"task-intelligence/internal/task/repository/postgre"
	"task-intelligence/internal/task/repository/sqlite"
	"task-intelligence/internal/task/usecase"
	"task-intelligence/internal/urgency"
	"task-intelligence/pkg/datemath"
	"task-intelligence/pkg/gcalendar"
	"task-intelligence/pkg/log"
)

// @title       Task Intelligence API
// @description Task text parsing, date resolution, urgency ranking, recurrence and dependency checks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Intelligence...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	repo, db, closeDB, err := openRepository(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open task store: ", err)
		return
	}
	defer closeDB()

	// 4. Engine
	dates, err := datemath.NewParser(cfg.Engine.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}
	scorer := urgency.NewScorer(cfg.Urgency)

	// 5. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			if errors.Is(calErr, gcalendar.ErrMissingToken) {
				logger.Warnf(ctx, "→ Run `go run ./scripts/gcal-auth %s %s`", cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
			}
		} else {
			calendar = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: rateLimit(cfg.RateLimit),
		TaskRepository:  repo,
		DB:              db,
		Dates:           dates,
		Scorer:          scorer,
		UseCase: usecase.Config{
			Timezone:      dates.Location().String(),
			DefaultCount:  cfg.Recurrence.DefaultCount,
			MaxCount:      cfg.Recurrence.MaxCount,
			CalendarID:    cfg.GoogleCalendar.CalendarID,
			EventDuration: cfg.GoogleCalendar.EventDuration,
		},
		Calendar: calendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openRepository connects the configured task store.
func openRepository(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (repository.Repository, httpserver.Pinger, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgre.EnsureTable(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("ensure tasks table: %w", err)
		}
		logger.Info(ctx, "Task store: postgres")
		return postgre.New(pool, logger), pool, pool.Close, nil
	default:
		store, err := sqlite.New(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Infof(ctx, "Task store: sqlite at %s", cfg.SQLitePath)
		return store, store, func() { store.Close() }, nil
	}
}

func rateLimit(cfg config.RateLimitConfig) int {
	if !cfg.Enabled {
		return 0
	}
	return cfg.PerMinute
}
