package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type cachedStats struct {
	Total int `json:"total"`
}

func newCacheRepo(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheRepository(client, zap.NewNop()), mr
}

func TestCacheRoundTripAndExpiry(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "dashboard:student:1", cachedStats{Total: 3}, time.Minute))

	var got cachedStats
	require.NoError(t, repo.Get(ctx, "dashboard:student:1", &got))
	assert.Equal(t, 3, got.Total)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, repo.Get(ctx, "dashboard:student:1", &got), appErrors.ErrCacheMiss)
}

func TestCacheUndecodableEntryIsMiss(t *testing.T) {
	repo, mr := newCacheRepo(t)
	require.NoError(t, mr.Set("dashboard:student:2", "not-json"))

	var got cachedStats
	err := repo.Get(context.Background(), "dashboard:student:2", &got)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.False(t, mr.Exists("dashboard:student:2"))
}

func TestCacheDeleteByPattern(t *testing.T) {
	repo, mr := newCacheRepo(t)
	for _, key := range []string{"dashboard:student:1", "dashboard:recruiter:2", "other:1"} {
		require.NoError(t, mr.Set(key, "{}"))
	}

	n, err := repo.DeleteByPattern(context.Background(), "dashboard:*")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, mr.Exists("other:1"))
	assert.False(t, mr.Exists("dashboard:student:1"))
}

func TestCacheWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.Set(ctx, "k", 1, time.Minute))
	var v int
	assert.ErrorIs(t, repo.Get(ctx, "k", &v), appErrors.ErrCacheMiss)
	n, err := repo.DeleteByPattern(ctx, "*")
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, repo.Close())
}
