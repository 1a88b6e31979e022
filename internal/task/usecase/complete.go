package usecase

import (
	"context"
	"fmt"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task"
)

// Complete marks a pending task as completed and stamps its end time.
func (uc *implUseCase) Complete(ctx context.Context, uuid string) (model.Task, error) {
	t, err := uc.getTask(ctx, uuid)
	if err != nil {
		return model.Task{}, err
	}

	switch {
	case t.Status == model.StatusRecurring:
		return model.Task{}, task.ErrTemplateNotComplete
	case !t.IsPending():
		return model.Task{}, task.ErrTaskClosed
	}

	now := uc.clock()
	t.Status = model.StatusCompleted
	t.End = &now
	t.Modified = now

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "Complete: failed to update task %s: %v", t.UUID, err)
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}
