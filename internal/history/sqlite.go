// sqlite.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the local-development generation-history
// backend on top of SQLite, following the same open/pragma/migrate
// pattern as the pack's go-server db.go.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS generation_history (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	dice_set_name TEXT NOT NULL,
	width         INTEGER NOT NULL,
	height        INTEGER NOT NULL,
	layout        TEXT NOT NULL,
	num_words     INTEGER NOT NULL,
	score         INTEGER NOT NULL,
	longest       INTEGER NOT NULL,
	tries         INTEGER NOT NULL,
	created_at    DATETIME NOT NULL
);`

// SqliteStore is a Store backed by a local SQLite database.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore opens (and creates if missing) a SQLite database at
// dsn, applying WAL journaling and a busy timeout, then ensures the
// generation_history table exists.
func NewSqliteStore(dsn string) (*SqliteStore, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Record(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_history
			(dice_set_name, width, height, layout, num_words, score, longest, tries, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.DiceSetName, rec.Width, rec.Height, rec.Layout,
		rec.NumWords, rec.Score, rec.Longest, rec.Tries, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("history: insert record: %w", err)
	}
	return nil
}

func (s *SqliteStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT dice_set_name, width, height, layout, num_words, score, longest, tries, created_at
		FROM generation_history
		ORDER BY created_at DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query recent: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var r Record
		var createdAt time.Time
		if err := rows.Scan(
			&r.DiceSetName, &r.Width, &r.Height, &r.Layout,
			&r.NumWords, &r.Score, &r.Longest, &r.Tries, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("history: scan record: %w", err)
		}
		r.CreatedAt = createdAt
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}
