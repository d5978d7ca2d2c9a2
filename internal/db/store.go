package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// LookupRecord is one resolved citation as it went through the pipeline.
// It is an audit trail, not a cache: verse text is never stored or
// served from here.
type LookupRecord struct {
	ID        int64  `json:"id"`
	Query     string `json:"query"`
	Code      string `json:"code"`
	Reference string `json:"reference"`
	Locale    string `json:"locale"`
	OK        bool   `json:"ok"`
	CreatedAt string `json:"created_at"`
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("путь к SQLite пустой")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию БД: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия БД: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragma := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, stmt := range pragma {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ошибка PRAGMA: %w", err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS lookups (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	query TEXT NOT NULL,
	code TEXT,
	reference TEXT,
	locale TEXT,
	ok INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}
	return nil
}

// RecordLookup stores one pipeline run. Failed resolutions are stored
// too, with an empty code.
func (s *Store) RecordLookup(ctx context.Context, query, code, reference, locale string, ok bool) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO lookups (query, code, reference, locale, ok)
VALUES (?, ?, ?, ?, ?)
`, query, code, reference, locale, ok)
	if err != nil {
		return fmt.Errorf("ошибка записи истории: %w", err)
	}
	return nil
}

// RecentLookups returns the latest records, newest first.
func (s *Store) RecentLookups(ctx context.Context, limit int) ([]LookupRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, query, code, reference, locale, ok, created_at
FROM lookups
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения истории: %w", err)
	}
	defer rows.Close()

	var items []LookupRecord
	for rows.Next() {
		var item LookupRecord
		var code, reference, locale sql.NullString
		if err := rows.Scan(&item.ID, &item.Query, &code, &reference, &locale, &item.OK, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка скана истории: %w", err)
		}
		item.Code = code.String
		item.Reference = reference.String
		item.Locale = locale.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка rows: %w", err)
	}
	return items, nil
}
