package repository

import (
	"context"

	"task-intelligence/internal/model"
)

// Repository is the task storage used by the use case layer.
//
//go:generate mockery --name Repository
type Repository interface {
	GetAllTasks(ctx context.Context, opt ListOptions) ([]model.Task, error)
	GetTaskByUUID(ctx context.Context, uuid string) (model.Task, error)
	InsertTask(ctx context.Context, t model.Task) error
	UpdateTask(ctx context.Context, t model.Task) error
}
