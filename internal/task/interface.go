package task

import (
	"context"

	"task-intelligence/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateFromText splits free text into tasks, parses inline metadata and stores them.
	CreateFromText(ctx context.Context, input CreateFromTextInput) (CreateFromTextOutput, error)

	// Get returns one task with its current urgency.
	Get(ctx context.Context, uuid string) (TaskWithUrgency, error)

	// List returns tasks ranked by urgency, highest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// AddDependency records that a task depends on another, rejecting edges that close a cycle.
	AddDependency(ctx context.Context, input AddDependencyInput) (model.Task, error)

	// GenerateInstances materializes the next instances of a recurring template.
	GenerateInstances(ctx context.Context, input GenerateInstancesInput) (GenerateInstancesOutput, error)

	// Complete marks a pending task as done.
	Complete(ctx context.Context, uuid string) (model.Task, error)
}
