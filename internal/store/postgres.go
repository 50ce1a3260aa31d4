// AngelaMos | 2026
// postgres.go

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresKV keeps each collection blob in one jsonb row. Writes are plain
// upserts of the whole blob, so the collection-level last-write-wins
// semantics are identical to the other backends even though the database
// could do better.
type PostgresKV struct {
	db *sqlx.DB
}

func NewPostgresKV(db *sqlx.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

// EnsureSchema creates the blob table if it does not exist yet.
func (p *PostgresKV) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_blobs (
			key        text PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`

	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure kv schema: %w", err)
	}

	return nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT doc FROM kv_blobs WHERE key = $1`

	var doc []byte
	err := p.db.GetContext(ctx, &doc, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", key, err)
	}

	return doc, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, doc)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`

	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set blob %s: %w", key, err)
	}

	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_blobs WHERE key = $1`

	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}

func (p *PostgresKV) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
