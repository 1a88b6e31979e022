package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-intelligence/internal/task/repository"
	"task-intelligence/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed task repository.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("postgre: pool is nil")
	}
	return &implRepository{pool: pool, l: l}
}

// EnsureTable creates the tasks table if it doesn't exist.
func EnsureTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			uuid        TEXT PRIMARY KEY,
			description TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'pending',
			priority    TEXT NOT NULL DEFAULT '',
			project     TEXT NOT NULL DEFAULT '',
			tags        TEXT[] NOT NULL DEFAULT '{}',
			entry       TIMESTAMPTZ NOT NULL,
			modified    TIMESTAMPTZ NOT NULL,
			due         TIMESTAMPTZ,
			scheduled   TIMESTAMPTZ,
			start_at    TIMESTAMPTZ,
			end_at      TIMESTAMPTZ,
			until_at    TIMESTAMPTZ,
			recur       TEXT NOT NULL DEFAULT '',
			parent      TEXT NOT NULL DEFAULT '',
			imask       INTEGER NOT NULL DEFAULT 0,
			depends     TEXT[] NOT NULL DEFAULT '{}'
		)`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent) WHERE parent != ''`)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
