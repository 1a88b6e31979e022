package model_test

import (
	"testing"
	"time"

	"task-intelligence/internal/model"
)

func TestTaskClone(t *testing.T) {
	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	orig := model.Task{
		UUID:    "a",
		Tags:    []string{"home"},
		Depends: []string{"b"},
		Due:     &due,
	}

	c := orig.Clone()
	c.Tags[0] = "work"
	c.Depends[0] = "z"
	*c.Due = due.AddDate(0, 0, 1)

	if orig.Tags[0] != "home" {
		t.Errorf("clone shares tags slice")
	}
	if orig.Depends[0] != "b" {
		t.Errorf("clone shares depends slice")
	}
	if !orig.Due.Equal(due) {
		t.Errorf("clone shares due pointer")
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []model.Priority{model.PriorityNone, model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		if !p.IsValid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if model.Priority("X").IsValid() {
		t.Errorf("X should not be valid")
	}
}

func TestTaskIsPending(t *testing.T) {
	tests := []struct {
		status model.Status
		want   bool
	}{
		{status: model.StatusPending, want: true},
		{status: "", want: true},
		{status: model.StatusCompleted},
		{status: model.StatusDeleted},
		{status: model.StatusRecurring},
	}
	for _, tt := range tests {
		if got := (model.Task{Status: tt.status}).IsPending(); got != tt.want {
			t.Errorf("IsPending(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
