package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"quicksave/internal/model"
	"quicksave/migrations"
)

// timeLayout keeps full timestamp precision with a fixed width, so
// the TEXT created_at column stays lexicographically ordered.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
// Migrations are idempotent, so reopening an existing database is safe.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateSave inserts a new save and populates its ID and CreatedAt.
// A blank URL is rejected with ErrEmptyURL before any database work.
// Missing title/note default to empty strings, nil tags to an empty
// set, and an unrecognized type to "other".
func (s *SQLite) CreateSave(ctx context.Context, save *model.Save) error {
	if strings.TrimSpace(save.URL) == "" {
		return ErrEmptyURL
	}
	save.Type = model.NormalizeType(string(save.Type))
	if save.Tags == nil {
		save.Tags = []string{}
	}

	tags, err := json.Marshal(save.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	now := time.Now().UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (url, title, note, tags, type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		save.URL, save.Title, save.Note, string(tags), string(save.Type), now,
	)
	if err != nil {
		return fmt.Errorf("insert save: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	save.ID = id
	save.CreatedAt, _ = time.Parse(timeLayout, now)
	return nil
}

// GetSave returns a single save by its ID, or ErrNotFound.
func (s *SQLite) GetSave(ctx context.Context, id int64) (*model.Save, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, title, note, tags, type, created_at FROM saves WHERE id = ?`, id,
	)
	save, err := scanSave(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return save, err
}

// ListSaves returns all saves, newest first. Saves created within the
// same second keep insertion order via the descending ID tiebreak.
func (s *SQLite) ListSaves(ctx context.Context) ([]model.Save, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, title, note, tags, type, created_at FROM saves
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query saves: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanSaves(rows)
}

// SearchSaves returns every save whose URL, title, note, or any tag
// contains query, case-insensitively. A blank query returns the full
// collection. Results keep the ListSaves order.
func (s *SQLite) SearchSaves(ctx context.Context, query string) ([]model.Save, error) {
	all, err := s.ListSaves(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	matched := make([]model.Save, 0, len(all))
	for _, save := range all {
		if save.Matches(q) {
			matched = append(matched, save)
		}
	}
	return matched, nil
}

// ListByType returns saves whose type equals t or whose tag set
// contains t; tags double as ad-hoc filter keys. An empty string or
// "all" returns the full collection.
func (s *SQLite) ListByType(ctx context.Context, t string) ([]model.Save, error) {
	all, err := s.ListSaves(ctx)
	if err != nil {
		return nil, err
	}
	if t == "" || t == "all" {
		return all, nil
	}

	matched := make([]model.Save, 0, len(all))
	for _, save := range all {
		if string(save.Type) == t || save.HasTag(t) {
			matched = append(matched, save)
		}
	}
	return matched, nil
}

// DeleteSave removes a save by its ID. Deleting a missing ID is a
// silent no-op.
func (s *SQLite) DeleteSave(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

// CountSaves returns the total number of saves.
func (s *SQLite) CountSaves(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count saves: %w", err)
	}
	return count, nil
}

// GetStats returns per-type counts. Any persisted type outside the
// fixed label set is counted under Other.
func (s *SQLite) GetStats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	rows, err := s.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM saves GROUP BY type`)
	if err != nil {
		return stats, fmt.Errorf("query stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return stats, fmt.Errorf("scan stats: %w", err)
		}
		stats.Total += n
		switch model.Type(typ) {
		case model.TypePaper:
			stats.Paper += n
		case model.TypeGithub:
			stats.Github += n
		case model.TypeTweet:
			stats.Tweet += n
		case model.TypeArticle:
			stats.Article += n
		case model.TypeVideo:
			stats.Video += n
		default:
			stats.Other += n
		}
	}
	return stats, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSave(row scannable) (*model.Save, error) {
	var save model.Save
	var tags, typ string
	var created sql.NullString
	err := row.Scan(&save.ID, &save.URL, &save.Title, &save.Note, &tags, &typ, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan save: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &save.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	save.Type = model.Type(typ)
	if created.Valid {
		save.CreatedAt, _ = time.Parse(timeLayout, created.String)
	}
	return &save, nil
}

func scanSaves(rows *sql.Rows) ([]model.Save, error) {
	var saves []model.Save
	for rows.Next() {
		save, err := scanSave(rows)
		if err != nil {
			return nil, err
		}
		saves = append(saves, *save)
	}
	return saves, rows.Err()
}
