package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
)

// GetAllTasks returns tasks matching opt, oldest entry first.
func (s *Store) GetAllTasks(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	mods, args := s.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY entry ASC, uuid ASC`, taskColumns, mods)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("GetAllTasks"), err)
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			s.l.Errorf(ctx, "%s scan: %v", s.dsn("GetAllTasks"), err)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTaskByUUID returns repository.ErrNotFound when no task has the UUID.
func (s *Store) GetTaskByUUID(ctx context.Context, uuid string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE uuid = ?`, taskColumns)

	t, err := scanTask(s.db.QueryRowContext(ctx, query, uuid))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("GetTaskByUUID"), err)
		return model.Task{}, fmt.Errorf("query task: %w", err)
	}
	return t, nil
}

// InsertTask stores a new task. A second insert with the same UUID returns repository.ErrDuplicate.
func (s *Store) InsertTask(ctx context.Context, t model.Task) error {
	args, err := taskArgs(t)
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO tasks (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, taskColumns)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repository.ErrDuplicate
		}
		s.l.Errorf(ctx, "%s: %v", s.dsn("InsertTask"), err)
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// UpdateTask overwrites every column of an existing task.
func (s *Store) UpdateTask(ctx context.Context, t model.Task) error {
	args, err := taskArgs(t)
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}

	const query = `
		UPDATE tasks SET description = ?, status = ?, priority = ?, project = ?, tags = ?, entry = ?, modified = ?,
			due = ?, scheduled = ?, start_at = ?, end_at = ?, until_at = ?, recur = ?, parent = ?, imask = ?, depends = ?
		WHERE uuid = ?`
	// taskArgs starts with the uuid; move it to the WHERE position.
	args = append(args[1:], args[0])

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("UpdateTask"), err)
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
