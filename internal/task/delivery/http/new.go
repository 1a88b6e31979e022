package http

import (
	"time"

	"task-intelligence/internal/task"
	"task-intelligence/internal/taskparse"
	"task-intelligence/internal/urgency"
	"task-intelligence/pkg/datemath"
	"task-intelligence/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     task.UseCase
	parser *taskparse.Parser
	dates  *datemath.Parser
	scorer *urgency.Scorer
	clock  func() time.Time
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, parser *taskparse.Parser, dates *datemath.Parser, scorer *urgency.Scorer) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		dates:  dates,
		scorer: scorer,
		clock:  time.Now,
	}
}

// now returns override when the caller sent one, else the wall clock.
func (h *handler) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return h.clock()
}
