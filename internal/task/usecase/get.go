package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"task-intelligence/internal/dependency"
	"task-intelligence/internal/model"
	"task-intelligence/internal/task"
	"task-intelligence/internal/task/repository"
	"task-intelligence/internal/urgency"
)

// Get returns one task with its urgency breakdown.
func (uc *implUseCase) Get(ctx context.Context, uuid string) (task.TaskWithUrgency, error) {
	t, err := uc.getTask(ctx, uuid)
	if err != nil {
		return task.TaskWithUrgency{}, err
	}

	all, err := uc.repo.GetAllTasks(ctx, repository.ListOptions{})
	if err != nil {
		return task.TaskWithUrgency{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	counts := dependency.CountAll(all)
	return uc.withUrgency(t, counts[t.UUID], uc.clock()), nil
}

// List scores every matching task and sorts by urgency descending. Ties keep the oldest entry first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	status := input.Status
	if status == "" {
		status = model.StatusPending
	}

	all, err := uc.repo.GetAllTasks(ctx, repository.ListOptions{})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	now := uc.clock()
	counts := dependency.CountAll(all)

	ranked := make([]task.TaskWithUrgency, 0, len(all))
	for _, t := range all {
		if t.Status != status && !(status == model.StatusPending && t.Status == "") {
			continue
		}
		if input.Project != "" && t.Project != input.Project {
			continue
		}
		ranked = append(ranked, uc.withUrgency(t, counts[t.UUID], now))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Urgency != b.Urgency {
			return a.Urgency > b.Urgency
		}
		if !a.Task.Entry.Equal(b.Task.Entry) {
			return a.Task.Entry.Before(b.Task.Entry)
		}
		return a.Task.UUID < b.Task.UUID
	})

	return task.ListOutput{Tasks: ranked, Count: len(ranked)}, nil
}

func (uc *implUseCase) withUrgency(t model.Task, c dependency.Counts, now time.Time) task.TaskWithUrgency {
	b := uc.scorer.Breakdown(urgency.SnapshotOf(t), c.Blocking, c.Blocked, now)
	return task.TaskWithUrgency{
		Task:      t,
		Urgency:   b.Total,
		Breakdown: b,
		Blocking:  c.Blocking,
		Blocked:   c.Blocked,
	}
}

// getTask maps a missing row to task.ErrTaskNotFound.
func (uc *implUseCase) getTask(ctx context.Context, uuid string) (model.Task, error) {
	t, err := uc.repo.GetTaskByUUID(ctx, uuid)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to load task %s: %w", uuid, err)
	}
	if t.Status == model.StatusDeleted {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
