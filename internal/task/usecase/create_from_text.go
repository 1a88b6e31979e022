package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task"
	"task-intelligence/internal/taskparse"
	"task-intelligence/pkg/recurrence"
)

// CreateFromText splits the input into task lines, parses each and stores the results.
func (uc *implUseCase) CreateFromText(ctx context.Context, input task.CreateFromTextInput) (task.CreateFromTextOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateFromTextOutput{}, task.ErrEmptyInput
	}

	recur := strings.TrimSpace(input.Recur)
	if recur != "" {
		if _, ok := recurrence.Parse(recur); !ok {
			return task.CreateFromTextOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidRecurrence, recur)
		}
	}

	now := uc.clock()
	parsed := uc.parser.ParseMany(input.Text, now)
	if len(parsed) == 0 {
		return task.CreateFromTextOutput{}, task.ErrNoTasksParsed
	}

	uc.l.Infof(ctx, "CreateFromText: parsed %d tasks from input_length=%d", len(parsed), len(input.Text))

	out := task.CreateFromTextOutput{
		Tasks:  make([]model.Task, 0, len(parsed)),
		Parsed: make([]taskparse.ParsedTask, 0, len(parsed)),
	}
	for _, p := range parsed {
		t := uc.newTask(p, recur, input, now)
		if err := uc.repo.InsertTask(ctx, t); err != nil {
			uc.l.Errorf(ctx, "CreateFromText: failed to store task %q: %v", t.Description, err)
			return out, fmt.Errorf("failed to store task %q: %w", t.Description, err)
		}
		out.Tasks = append(out.Tasks, t)
		out.Parsed = append(out.Parsed, p)
	}

	return out, nil
}

func (uc *implUseCase) newTask(p taskparse.ParsedTask, recur string, input task.CreateFromTextInput, now time.Time) model.Task {
	t := model.Task{
		UUID:        uc.newID(),
		Description: p.Description,
		Status:      model.StatusPending,
		Priority:    p.Priority,
		Project:     p.Project,
		Tags:        p.Tags,
		Entry:       now,
		Modified:    now,
		Due:         p.Due,
	}
	if recur != "" {
		t.Status = model.StatusRecurring
		t.Recur = recur
		if input.Until != nil {
			until := *input.Until
			t.Until = &until
		}
	}
	return t
}
