package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
)

const uniqueViolation = "23505"

func (r *implRepository) GetAllTasks(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY entry ASC, uuid ASC`, taskColumns, mods)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAllTasks"), err)
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetAllTasks"), err)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *implRepository) GetTaskByUUID(ctx context.Context, uuid string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE uuid = $1`, taskColumns)

	t, err := scanTask(r.pool.QueryRow(ctx, query, uuid))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTaskByUUID"), err)
		return model.Task{}, fmt.Errorf("get task %s: %w", uuid, err)
	}
	return t, nil
}

func (r *implRepository) InsertTask(ctx context.Context, t model.Task) error {
	query := fmt.Sprintf(`INSERT INTO tasks (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`, taskColumns)

	if _, err := r.pool.Exec(ctx, query, taskArgs(t)...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertTask"), err)
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) error {
	const query = `
		UPDATE tasks SET description = $2, status = $3, priority = $4, project = $5, tags = $6, entry = $7,
			modified = $8, due = $9, scheduled = $10, start_at = $11, end_at = $12, until_at = $13,
			recur = $14, parent = $15, imask = $16, depends = $17
		WHERE uuid = $1`

	tag, err := r.pool.Exec(ctx, query, taskArgs(t)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
