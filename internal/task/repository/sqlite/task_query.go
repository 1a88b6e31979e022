package sqlite

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
)

const taskColumns = `uuid, description, status, priority, project, tags, entry, modified,
	due, scheduled, start_at, end_at, until_at, recur, parent, imask, depends`

// buildListQuery builds the WHERE clause + args for GetAllTasks.
func (s *Store) buildListQuery(opt repository.ListOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.Parent != "" {
		conditions = append(conditions, "parent = ?")
		args = append(args, opt.Parent)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (model.Task, error) {
	var t model.Task
	var status, priority, tags, depends string
	var due, scheduled, start, end, until sql.NullTime
	err := row.Scan(&t.UUID, &t.Description, &status, &priority, &t.Project, &tags, &t.Entry, &t.Modified,
		&due, &scheduled, &start, &end, &until, &t.Recur, &t.Parent, &t.Imask, &depends)
	if err != nil {
		return model.Task{}, err
	}

	t.Status = model.Status(status)
	t.Priority = model.Priority(priority)
	t.Due = fromNullTime(due)
	t.Scheduled = fromNullTime(scheduled)
	t.Start = fromNullTime(start)
	t.End = fromNullTime(end)
	t.Until = fromNullTime(until)

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return model.Task{}, err
	}
	if err := json.Unmarshal([]byte(depends), &t.Depends); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// taskArgs returns the column values in taskColumns order.
func taskArgs(t model.Task) ([]any, error) {
	tags, err := json.Marshal(nonNil(t.Tags))
	if err != nil {
		return nil, err
	}
	depends, err := json.Marshal(nonNil(t.Depends))
	if err != nil {
		return nil, err
	}
	return []any{
		t.UUID, t.Description, string(t.Status), string(t.Priority), t.Project, string(tags),
		t.Entry.UTC(), t.Modified.UTC(),
		toNullTime(t.Due), toNullTime(t.Scheduled), toNullTime(t.Start), toNullTime(t.End), toNullTime(t.Until),
		t.Recur, t.Parent, t.Imask, string(depends),
	}, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
