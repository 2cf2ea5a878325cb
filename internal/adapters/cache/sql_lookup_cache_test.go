package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"globetrotter/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres when DATABASE_URL is set.
func TestSQLLookupCache(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, url)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(ctx, conn))

	c := NewSQLLookupCache(conn)
	key := "test:" + time.Now().Format(time.RFC3339Nano)

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, key, []byte(`{"a":1}`), time.Minute))
	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, c.Put(ctx, key, []byte(`{}`), -time.Minute))
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := PurgeExpired(ctx, conn)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}

func TestSQLLookupCacheNilDB(t *testing.T) {
	c := NewSQLLookupCache(nil)
	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, c.Put(context.Background(), "k", nil, time.Minute))
}
