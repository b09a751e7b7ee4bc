package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shortspan/internal/shortener"
)

// PostgresStore is a PostgreSQL implementation of RecordRepository and
// ClickRepository.
//
// Expected schema:
//
//	CREATE TABLE links (
//	    shortcode   TEXT PRIMARY KEY,
//	    long_url    TEXT NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL,
//	    expiry_time TIMESTAMPTZ NOT NULL
//	);
//	CREATE TABLE clicks (
//	    id         BIGSERIAL PRIMARY KEY,
//	    shortcode  TEXT NOT NULL,
//	    clicked_at TIMESTAMPTZ NOT NULL,
//	    referrer   TEXT NOT NULL,
//	    location   TEXT NOT NULL
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// InsertIfAbsent relies on the primary key: ON CONFLICT DO NOTHING makes
// the check-then-insert atomic, and the affected-row count tells the caller
// whether it won.
func (p *PostgresStore) InsertIfAbsent(ctx context.Context, record *shortener.Record) (bool, error) {
	query := `
		INSERT INTO links (shortcode, long_url, created_at, expiry_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shortcode) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query,
		record.Shortcode,
		record.LongURL,
		record.CreatedAt,
		record.ExpiryTime,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (p *PostgresStore) Find(ctx context.Context, shortcode string) (*shortener.Record, error) {
	query := `
		SELECT shortcode, long_url, created_at, expiry_time
		FROM links
		WHERE shortcode = $1
	`

	var record shortener.Record

	err := p.pool.QueryRow(ctx, query, shortcode).Scan(
		&record.Shortcode,
		&record.LongURL,
		&record.CreatedAt,
		&record.ExpiryTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

func (p *PostgresStore) GetAll(ctx context.Context) ([]shortener.Record, error) {
	query := `
		SELECT shortcode, long_url, created_at, expiry_time
		FROM links
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []shortener.Record

	for rows.Next() {
		var record shortener.Record

		if err := rows.Scan(
			&record.Shortcode,
			&record.LongURL,
			&record.CreatedAt,
			&record.ExpiryTime,
		); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (p *PostgresStore) Append(ctx context.Context, click shortener.Click) error {
	query := `
		INSERT INTO clicks (shortcode, clicked_at, referrer, location)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query,
		click.Shortcode,
		click.Timestamp,
		click.Referrer,
		click.Location,
	)

	return err
}

func (p *PostgresStore) ListAll(ctx context.Context) ([]shortener.Click, error) {
	query := `
		SELECT shortcode, clicked_at, referrer, location
		FROM clicks
		ORDER BY clicked_at
	`

	return p.queryClicks(ctx, query)
}

func (p *PostgresStore) ListByShortcode(ctx context.Context, shortcode string) ([]shortener.Click, error) {
	query := `
		SELECT shortcode, clicked_at, referrer, location
		FROM clicks
		WHERE shortcode = $1
		ORDER BY clicked_at
	`

	return p.queryClicks(ctx, query, shortcode)
}

func (p *PostgresStore) queryClicks(ctx context.Context, query string, args ...any) ([]shortener.Click, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clicks []shortener.Click

	for rows.Next() {
		var click shortener.Click

		if err := rows.Scan(
			&click.Shortcode,
			&click.Timestamp,
			&click.Referrer,
			&click.Location,
		); err != nil {
			return nil, err
		}

		clicks = append(clicks, click)
	}

	return clicks, rows.Err()
}
