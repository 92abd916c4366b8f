package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"svw.info/numbers/internal/ctxlog"
	"svw.info/numbers/internal/domain"
	"svw.info/numbers/internal/ports"

	_ "modernc.org/sqlite"
)

var _ ports.Storage = (*SQLite)(nil)

const schema = `CREATE TABLE IF NOT EXISTS scores (
	difficulty TEXT NOT NULL,
	name       TEXT NOT NULL,
	attempts   INTEGER NOT NULL,
	PRIMARY KEY (difficulty, name)
)`

// SQLite keeps one row per (difficulty, name).
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	db, err := sql.Open("sqlite", filepath.Clean(path)+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrCorrupt, err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the SQLite handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Load(ctx context.Context) (domain.Leaderboard, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT difficulty, name, attempts FROM scores`)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()
	lb := domain.NewLeaderboard()
	for rows.Next() {
		var diff, name string
		var attempts int
		if err := rows.Scan(&diff, &name, &attempts); err != nil {
			return nil, fmt.Errorf("%w: scan score: %v", ErrCorrupt, err)
		}
		if lb[diff] == nil {
			lb[diff] = domain.Scores{}
		}
		lb[diff][name] = attempts
	}
	return lb, rows.Err()
}

// Save applies the same keep-best, top-5 rule as the file store inside one
// transaction.
func (s *SQLite) Save(ctx context.Context, name string, attempts int, d domain.Difficulty) error {
	name, err := validateEntry(name, attempts)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	key := d.String()
	current, err := scoresFor(ctx, tx, key)
	if err != nil {
		return err
	}
	next := current.Record(name, attempts)

	if _, err := tx.ExecContext(ctx, `DELETE FROM scores WHERE difficulty = ?`, key); err != nil {
		return fmt.Errorf("delete scores: %w", err)
	}
	for n, a := range next {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scores (difficulty, name, attempts) VALUES (?, ?, ?)`, key, n, a); err != nil {
			return fmt.Errorf("insert score: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("score saved", "difficulty", key, "name", name, "attempts", attempts)
	return nil
}

func (s *SQLite) Top(ctx context.Context, d domain.Difficulty) ([]domain.Entry, error) {
	scores, err := scoresFor(ctx, s.db, d.String())
	if err != nil {
		return nil, err
	}
	return scores.Top(), nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("clear scores: %w", err)
	}
	ctxlog.FromContext(ctx).Info("leaderboard cleared")
	return nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scoresFor(ctx context.Context, q querier, difficulty string) (domain.Scores, error) {
	rows, err := q.QueryContext(ctx, `SELECT name, attempts FROM scores WHERE difficulty = ?`, difficulty)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()
	out := domain.Scores{}
	for rows.Next() {
		var name string
		var attempts int
		if err := rows.Scan(&name, &attempts); err != nil {
			return nil, fmt.Errorf("%w: scan score: %v", ErrCorrupt, err)
		}
		out[name] = attempts
	}
	return out, rows.Err()
}
