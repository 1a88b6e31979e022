package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"task-intelligence/internal/task/repository"
	"task-intelligence/pkg/log"
)

// Store is the SQLite-backed task repository.
type Store struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*Store)(nil)

// New opens (creating if needed) the database at dbPath and runs migrations.
func New(dbPath string, l log.Logger) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, l: l}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS tasks (
		uuid        TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'pending',
		priority    TEXT NOT NULL DEFAULT '',
		project     TEXT NOT NULL DEFAULT '',
		tags        TEXT NOT NULL DEFAULT '[]',
		entry       DATETIME NOT NULL,
		modified    DATETIME NOT NULL,
		due         DATETIME,
		scheduled   DATETIME,
		start_at    DATETIME,
		end_at      DATETIME,
		until_at    DATETIME,
		recur       TEXT NOT NULL DEFAULT '',
		parent      TEXT NOT NULL DEFAULT '',
		imask       INTEGER NOT NULL DEFAULT 0,
		depends     TEXT NOT NULL DEFAULT '[]'
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent);
	`
	_, err := s.db.Exec(schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *Store) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
