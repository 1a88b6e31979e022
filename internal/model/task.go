package model

import "time"

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityHigh   Priority = "H"
	PriorityMedium Priority = "M"
	PriorityLow    Priority = "L"
)

// IsValid reports whether p is one of the known priorities, including none.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityNone, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusDeleted   Status = "deleted"
	StatusRecurring Status = "recurring" // recurrence template
)

// Task is the persisted task record handled by repositories.
type Task struct {
	UUID        string
	Description string
	Status      Status
	Priority    Priority
	Project     string
	Tags        []string

	Entry     time.Time // creation time
	Modified  time.Time
	Due       *time.Time
	Scheduled *time.Time
	Start     *time.Time // set while the task is active
	End       *time.Time
	Until     *time.Time // hard stop for recurrence

	Recur  string // recurrence code, e.g. "P1W"
	Parent string // template UUID for recurrence instances
	Imask  int    // instance index within the parent's series

	Depends []string // UUIDs this task depends on
}

// IsPending reports whether the task still counts as outstanding.
func (t Task) IsPending() bool {
	return t.Status == StatusPending || t.Status == ""
}

// Clone returns a copy of t that shares no slices or time pointers with it.
func (t Task) Clone() Task {
	c := t
	c.Tags = cloneStrings(t.Tags)
	c.Depends = cloneStrings(t.Depends)
	c.Due = cloneTime(t.Due)
	c.Scheduled = cloneTime(t.Scheduled)
	c.Start = cloneTime(t.Start)
	c.End = cloneTime(t.End)
	c.Until = cloneTime(t.Until)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
