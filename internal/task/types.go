package task

import (
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/taskparse"
	"task-intelligence/internal/urgency"
)

// CreateFromTextInput is the input for text-based task creation.
type CreateFromTextInput struct {
	Text  string     // One or many task lines with inline metadata
	Recur string     // Optional recurrence code; marks every created task as a template
	Until *time.Time // Optional last allowed due date for generated instances
}

// CreateFromTextOutput pairs each stored task with the parse it came from.
type CreateFromTextOutput struct {
	Tasks  []model.Task
	Parsed []taskparse.ParsedTask
}

// TaskWithUrgency is a task annotated with its score.
type TaskWithUrgency struct {
	Task      model.Task
	Urgency   float64
	Breakdown urgency.Breakdown
	Blocking  int
	Blocked   int
}

// ListInput filters List. An empty Status lists pending tasks.
type ListInput struct {
	Status  model.Status
	Project string
}

// ListOutput is the ranked result of List.
type ListOutput struct {
	Tasks []TaskWithUrgency
	Count int
}

// AddDependencyInput makes TaskUUID depend on DependsOn.
type AddDependencyInput struct {
	TaskUUID  string
	DependsOn string
}

// GenerateInstancesInput asks for Count more instances of a template. Zero uses the configured default.
type GenerateInstancesInput struct {
	TemplateUUID string
	Count        int
}

// GenerateInstancesOutput lists the stored instances. CalendarLinks is keyed by instance UUID
// and only holds entries for events that were created.
type GenerateInstancesOutput struct {
	Instances     []model.Task
	CalendarLinks map[string]string
}
