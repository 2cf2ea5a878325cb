package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the lookup cache table in Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLookupCacheQuery := `
	CREATE TABLE IF NOT EXISTS lookup_cache (
		cache_key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_lookup_cache_expires_at
	ON lookup_cache(expires_at);
	`

	statements := []string{
		createLookupCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PurgeExpired deletes expired entries and returns how many were removed.
func PurgeExpired(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errors.New("purge lookup cache: DB is nil")
	}

	res, err := db.ExecContext(ctx, `DELETE FROM lookup_cache WHERE expires_at <= now();`)
	if err != nil {
		return 0, fmt.Errorf("purge lookup cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge lookup cache: rows affected: %w", err)
	}
	return n, nil
}
