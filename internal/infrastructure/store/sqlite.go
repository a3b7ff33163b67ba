// Package store persists articles in a file-backed SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tesso57/writepilot/internal/domain/article"
)

const schema = `
CREATE TABLE IF NOT EXISTS articles (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	audience   TEXT NOT NULL DEFAULT 'general',
	tone       TEXT NOT NULL DEFAULT 'friendly',
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// timeLayout is how timestamps are stored. Lexicographic order matches
// chronological order, so no driver-specific time handling is needed.
const timeLayout = time.RFC3339Nano

// Store is a SQLite-backed article repository.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open failed: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: schema init failed: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new article and returns the stored value.
func (s *Store) Create(ctx context.Context, title, audience, tone, content string) (article.Article, error) {
	if article.IsBlank(content) {
		return article.Article{}, article.ErrBlankContent
	}

	now := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (title, audience, tone, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, audience, tone, content, now.Format(timeLayout), now.Format(timeLayout))
	if err != nil {
		return article.Article{}, fmt.Errorf("store: insert failed: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return article.Article{}, fmt.Errorf("store: insert id: %w", err)
	}

	return article.Article{
		ID:        id,
		Title:     title,
		Audience:  audience,
		Tone:      tone,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Get returns the article with the given id, or article.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (article.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, audience, tone, content, created_at, updated_at
		 FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

// List returns all articles ordered newest-id first.
func (s *Store) List(ctx context.Context) ([]article.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, audience, tone, content, created_at, updated_at
		 FROM articles ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]article.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Update applies the non-nil patch fields, refreshes updated_at, and returns
// the stored value. The whole mutation is committed in a single statement, so
// a failed update leaves the row untouched.
func (s *Store) Update(ctx context.Context, id int64, patch article.Patch) (article.Article, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return article.Article{}, err
	}

	next := patch.Apply(current)
	if article.IsBlank(next.Content) {
		return article.Article{}, article.ErrBlankContent
	}
	next.UpdatedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE articles SET title = ?, audience = ?, tone = ?, content = ?, updated_at = ?
		 WHERE id = ?`,
		next.Title, next.Audience, next.Tone, next.Content,
		next.UpdatedAt.Format(timeLayout), id)
	if err != nil {
		return article.Article{}, fmt.Errorf("store: update failed: %w", err)
	}
	return next, nil
}

// Delete removes the article with the given id. Deleting a missing id is an
// error, not a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete rows: %w", err)
	}
	if n == 0 {
		return article.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (article.Article, error) {
	var (
		a                  article.Article
		createdAt, updated string
	)
	err := row.Scan(&a.ID, &a.Title, &a.Audience, &a.Tone, &a.Content, &createdAt, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return article.Article{}, article.ErrNotFound
	}
	if err != nil {
		return article.Article{}, fmt.Errorf("store: scan failed: %w", err)
	}
	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return article.Article{}, fmt.Errorf("store: bad created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return article.Article{}, fmt.Errorf("store: bad updated_at: %w", err)
	}
	return a, nil
}
