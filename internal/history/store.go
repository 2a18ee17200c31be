// Package history keeps a local log of past searches: what was asked and how
// many messages matched. It records queries, never mailbox contents.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/001_initial.sql
var initialMigration string

// Search is one recorded invocation
type Search struct {
	ID          string     `json:"id"`
	Keywords    []string   `json:"keywords"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	ResultCount int        `json:"result_count"`
	RanAt       time.Time  `json:"ran_at"`
}

// Store wraps the SQL database connection
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path
func Open(path string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	// Open database with common settings
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	var tableCount int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='searches'
	`).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.db.Exec(initialMigration); err != nil {
			return fmt.Errorf("failed to run initial migration: %w", err)
		}
	}

	return nil
}

// Record inserts a search into the history
func (s *Store) Record(ctx context.Context, rec *Search) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.RanAt.IsZero() {
		rec.RanAt = time.Now().UTC()
	}

	keywords, err := json.Marshal(rec.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO searches (id, keywords, start_date, end_date, result_count, ran_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.ID, string(keywords), nullTime(rec.Start), nullTime(rec.End),
		rec.ResultCount, rec.RanAt.Format(time.RFC3339),
	)
	return err
}

// ListRecent returns up to limit searches, newest first
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Search, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, keywords, start_date, end_date, result_count, ran_at
		FROM searches
		ORDER BY ran_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []Search
	for rows.Next() {
		var (
			rec              Search
			keywords         string
			startStr, endStr sql.NullString
			ranAt            string
		)

		if err := rows.Scan(&rec.ID, &keywords, &startStr, &endStr, &rec.ResultCount, &ranAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(keywords), &rec.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords for %s: %w", rec.ID, err)
		}
		if rec.Start, err = parseNullTime(startStr); err != nil {
			return nil, err
		}
		if rec.End, err = parseNullTime(endStr); err != nil {
			return nil, err
		}
		if rec.RanAt, err = time.Parse(time.RFC3339, ranAt); err != nil {
			return nil, fmt.Errorf("failed to parse ran_at for %s: %w", rec.ID, err)
		}

		searches = append(searches, rec)
	}

	return searches, rows.Err()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
