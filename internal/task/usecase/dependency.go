package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"task-intelligence/internal/dependency"
	"task-intelligence/internal/model"
	"task-intelligence/internal/task"
	"task-intelligence/internal/task/repository"
)

// AddDependency makes input.TaskUUID depend on input.DependsOn unless the new edge closes a cycle.
func (uc *implUseCase) AddDependency(ctx context.Context, input task.AddDependencyInput) (model.Task, error) {
	t, err := uc.getTask(ctx, input.TaskUUID)
	if err != nil {
		return model.Task{}, err
	}
	if _, err := uc.getTask(ctx, input.DependsOn); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return model.Task{}, task.ErrDependencyNotFound
		}
		return model.Task{}, err
	}

	if slices.Contains(t.Depends, input.DependsOn) {
		return t, nil
	}

	all, err := uc.repo.GetAllTasks(ctx, repository.ListOptions{})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	if dependency.WouldCreateCycle(t.UUID, input.DependsOn, dependency.BuildGraph(all)) {
		uc.l.Warnf(ctx, "AddDependency: rejected %s -> %s (cycle)", t.UUID, input.DependsOn)
		return model.Task{}, task.ErrDependencyCycle
	}

	t.Depends = append(slices.Clone(t.Depends), input.DependsOn)
	t.Modified = uc.clock()
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "AddDependency: failed to update task %s: %v", t.UUID, err)
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.l.Infof(ctx, "AddDependency: %s now depends on %s", t.UUID, input.DependsOn)
	return t, nil
}
