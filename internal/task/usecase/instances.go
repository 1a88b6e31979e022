package usecase

import (
	"context"
	"fmt"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task"
	"task-intelligence/internal/task/repository"
	"task-intelligence/pkg/gcalendar"
)

// GenerateInstances stores the next instances of a recurring template and, when a calendar
// is configured, mirrors each one as an event.
func (uc *implUseCase) GenerateInstances(ctx context.Context, input task.GenerateInstancesInput) (task.GenerateInstancesOutput, error) {
	count := input.Count
	if count == 0 {
		count = uc.cfg.DefaultCount
	}
	if count < 0 || count > uc.cfg.MaxCount {
		return task.GenerateInstancesOutput{}, fmt.Errorf("%w: %d (max %d)", task.ErrInvalidCount, count, uc.cfg.MaxCount)
	}

	tmpl, err := uc.getTask(ctx, input.TemplateUUID)
	if err != nil {
		return task.GenerateInstancesOutput{}, err
	}
	if tmpl.Status != model.StatusRecurring || tmpl.Recur == "" {
		return task.GenerateInstancesOutput{}, task.ErrNotTemplate
	}

	children, err := uc.repo.GetAllTasks(ctx, repository.ListOptions{Parent: tmpl.UUID})
	if err != nil {
		return task.GenerateInstancesOutput{}, fmt.Errorf("failed to load instances: %w", err)
	}
	existing := make([]int, 0, len(children))
	for _, c := range children {
		existing = append(existing, c.Imask)
	}

	now := uc.clock()
	instances, err := uc.generator.Generate(tmpl, count, existing, now)
	if err != nil {
		return task.GenerateInstancesOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidRecurrence, err)
	}

	out := task.GenerateInstancesOutput{
		Instances:     make([]model.Task, 0, len(instances)),
		CalendarLinks: map[string]string{},
	}
	for _, inst := range instances {
		inst.Entry = now
		inst.Modified = now
		if err := uc.repo.InsertTask(ctx, inst); err != nil {
			uc.l.Errorf(ctx, "GenerateInstances: failed to store instance %d of %s: %v", inst.Imask, tmpl.UUID, err)
			return out, fmt.Errorf("failed to store instance: %w", err)
		}
		out.Instances = append(out.Instances, inst)

		if link := uc.tryCreateCalendarEvent(ctx, inst); link != "" {
			out.CalendarLinks[inst.UUID] = link
		}
	}

	uc.l.Infof(ctx, "GenerateInstances: template=%s created=%d", tmpl.UUID, len(out.Instances))
	return out, nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, inst model.Task) string {
	if uc.calendar == nil || inst.Due == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     inst.Description,
		Description: fmt.Sprintf("Instance #%d of recurring task %s (%s)", inst.Imask, inst.Parent, inst.Recur),
		StartTime:   *inst.Due,
		EndTime:     inst.Due.Add(uc.cfg.EventDuration),
		Timezone:    uc.cfg.Timezone,
		AllDay:      isMidnight(*inst.Due),
		TaskUUID:    inst.UUID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "GenerateInstances: calendar event creation failed for %s (non-fatal): %v", inst.UUID, err)
		return ""
	}
	return event.HtmlLink
}

// isMidnight reports whether t carries a date only, as produced by ISO and named date expressions.
func isMidnight(t time.Time) bool {
	h, m, sec := t.Clock()
	return h == 0 && m == 0 && sec == 0 && t.Nanosecond() == 0
}
