package postgre

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
)

const taskColumns = `uuid, description, status, priority, project, tags, entry, modified,
	due, scheduled, start_at, end_at, until_at, recur, parent, imask, depends`

// buildListQuery builds the WHERE clause + args for GetAllTasks.
func (r *implRepository) buildListQuery(opt repository.ListOptions) (string, []any) {
	conditions := []string{"1=1"}
	var args []any

	if opt.Status != "" {
		args = append(args, string(opt.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if opt.Parent != "" {
		args = append(args, opt.Parent)
		conditions = append(conditions, fmt.Sprintf("parent = $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	var status, priority string
	err := row.Scan(&t.UUID, &t.Description, &status, &priority, &t.Project, &t.Tags, &t.Entry, &t.Modified,
		&t.Due, &t.Scheduled, &t.Start, &t.End, &t.Until, &t.Recur, &t.Parent, &t.Imask, &t.Depends)
	if err != nil {
		return model.Task{}, err
	}
	t.Status = model.Status(status)
	t.Priority = model.Priority(priority)
	return t, nil
}

func taskArgs(t model.Task) []any {
	tags, depends := t.Tags, t.Depends
	if tags == nil {
		tags = []string{}
	}
	if depends == nil {
		depends = []string{}
	}
	return []any{
		t.UUID, t.Description, string(t.Status), string(t.Priority), t.Project, tags, t.Entry, t.Modified,
		t.Due, t.Scheduled, t.Start, t.End, t.Until, t.Recur, t.Parent, t.Imask, depends,
	}
}
