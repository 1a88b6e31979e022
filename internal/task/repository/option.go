package repository

import "task-intelligence/internal/model"

// ListOptions filters GetAllTasks. Zero values match everything.
type ListOptions struct {
	Status model.Status // Filter by status
	Parent string       // Filter by recurrence template UUID
}
