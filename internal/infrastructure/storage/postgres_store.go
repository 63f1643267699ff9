package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/ports"
)

// PostgresStore backs the deduplication oracle and run telemetry with the
// published_urls / scrape_logs / filter_keywords tables.
type PostgresStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

var _ ports.Store = (*PostgresStore)(nil)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return New(db), nil
}

// New wires an existing database handle.
func New(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// IsPublished reports whether the URL was already republished by an earlier run.
func (s *PostgresStore) IsPublished(ctx context.Context, url string) (bool, error) {
	query, args, err := s.sb.
		Select("id").
		From("published_urls").
		Where(sq.Eq{"url": url}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build dedup query: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query published url: %w", err)
	}
	return true, nil
}

// RecordPublished marks a URL as republished. Callers must not treat a
// failure here as a reason to undo the publish.
func (s *PostgresStore) RecordPublished(ctx context.Context, rec domain.PublishedRecord) error {
	query, args, err := s.sb.
		Insert("published_urls").
		Columns("url", "title", "source_site", "category", "wp_post_id").
		Values(rec.URL, rec.Title, rec.SourceID, string(rec.Category), rec.PostID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build published insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert published url: %w", err)
	}
	return nil
}

// RecordRunSummary appends one row of run telemetry.
func (s *PostgresStore) RecordRunSummary(ctx context.Context, summary domain.RunSummary) error {
	runError := sql.NullString{String: summary.FatalError, Valid: summary.FatalError != ""}

	query, args, err := s.sb.
		Insert("scrape_logs").
		Columns("source_site", "articles_found", "articles_published", "articles_filtered", "error").
		Values(summary.SourceID, summary.ArticlesFound, summary.ArticlesPublished, summary.ArticlesFiltered, runError).
		ToSql()
	if err != nil {
		return fmt.Errorf("build run log insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert run log: %w", err)
	}
	return nil
}

// FilterKeywords loads the configurable blacklist. An empty result is valid;
// the caller decides whether to fall back to the built-in list.
func (s *PostgresStore) FilterKeywords(ctx context.Context) ([]string, error) {
	query, args, err := s.sb.
		Select("keyword").
		From("filter_keywords").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build keyword query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query filter keywords: %w", err)
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var keyword string
		if err := rows.Scan(&keyword); err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		keywords = append(keywords, keyword)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return keywords, nil
}
