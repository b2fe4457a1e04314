// Package history keeps a SQLite ledger of per-file outcomes across runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one file outcome within a run.
type Entry struct {
	ID       int64
	RunID    string
	Path     string
	State    string
	Kind     string
	Message  string
	Backend  string
	Model    string
	Duration time.Duration
	At       time.Time
}

// Store is the ledger handle.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the ledger at path and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends e to the ledger. A zero At is stamped with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO file_runs (
            run_id, source_path, state, error_kind, message, backend, model, duration_ms, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID,
		e.Path,
		e.State,
		nullableString(e.Kind),
		nullableString(e.Message),
		nullableString(e.Backend),
		nullableString(e.Model),
		e.Duration.Milliseconds(),
		e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. failedOnly keeps only failures.
func (s *Store) Recent(ctx context.Context, limit int, failedOnly bool) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, run_id, source_path, state, error_kind, message, backend, model, duration_ms, finished_at
        FROM file_runs`
	args := []any{}
	if failedOnly {
		query += ` WHERE state = ?`
		args = append(args, StateFailed)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                         Entry
			kind, msg, backend, model sql.NullString
			durationMs                int64
			finishedAt                string
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Path, &e.State, &kind, &msg, &backend, &model, &durationMs, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Kind = kind.String
		e.Message = msg.String
		e.Backend = backend.String
		e.Model = model.String
		e.Duration = time.Duration(durationMs) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, finishedAt); err == nil {
			e.At = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// StateFailed matches the processor's failed state label.
const StateFailed = "failed"

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
