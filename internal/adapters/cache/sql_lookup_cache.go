package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"globetrotter/internal/platform/obs"
)

// SQLLookupCache is a Postgres-backed store for provider responses.
type SQLLookupCache struct {
	DB *sql.DB
}

func NewSQLLookupCache(db *sql.DB) *SQLLookupCache {
	return &SQLLookupCache{DB: db}
}

// Get returns the unexpired value stored under key.
func (s *SQLLookupCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "lookup.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("lookup cache: db is nil")
	}

	q := `
	SELECT value
	FROM lookup_cache
	WHERE cache_key = $1 AND expires_at > now();
	`

	var value []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get lookup cache: query lookup_cache table: %w", err)
	}

	return value, true, nil
}

// Put stores value under key until ttl elapses.
func (s *SQLLookupCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.DB == nil {
		return errors.New("lookup cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert lookup cache: empty key")
	}

	q := `
	INSERT INTO lookup_cache (cache_key, value, expires_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (cache_key) DO UPDATE
	SET value = EXCLUDED.value,
		expires_at = EXCLUDED.expires_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value, time.Now().Add(ttl).UTC()); err != nil {
		return fmt.Errorf("insert lookup cache key=%q: %w", key, err)
	}

	return nil
}
