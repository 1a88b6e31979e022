package usecase

import (
	"context"
	"time"

	"task-intelligence/internal/recurring"
	"task-intelligence/internal/task"
	"task-intelligence/internal/task/repository"
	"task-intelligence/internal/taskparse"
	"task-intelligence/internal/urgency"
	"task-intelligence/pkg/gcalendar"
	pkgLog "task-intelligence/pkg/log"

	"github.com/google/uuid"
)

// Calendar is the subset of the Google Calendar client the use case needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config holds the tunables for the task use case.
type Config struct {
	Timezone      string
	DefaultCount  int
	MaxCount      int
	CalendarID    string
	EventDuration time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	parser    *taskparse.Parser
	scorer    *urgency.Scorer
	generator *recurring.Generator
	calendar  Calendar
	cfg       Config
	clock     func() time.Time
	newID     func() string
}

// Option configures the use case.
type Option func(*implUseCase)

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.clock = clock
	}
}

// WithIDFunc replaces the task UUID source.
func WithIDFunc(fn func() string) Option {
	return func(uc *implUseCase) {
		uc.newID = fn
	}
}

// WithCalendar enables calendar events for generated instances.
func WithCalendar(c Calendar) Option {
	return func(uc *implUseCase) {
		uc.calendar = c
	}
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *taskparse.Parser,
	scorer *urgency.Scorer,
	generator *recurring.Generator,
	cfg Config,
	opts ...Option,
) task.UseCase {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 1
	}
	if cfg.MaxCount < cfg.DefaultCount {
		cfg.MaxCount = cfg.DefaultCount
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = time.Hour
	}

	uc := &implUseCase{
		l:         l,
		repo:      repo,
		parser:    parser,
		scorer:    scorer,
		generator: generator,
		cfg:       cfg,
		clock:     time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
