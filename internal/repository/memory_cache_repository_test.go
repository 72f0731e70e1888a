package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
)

func TestMemoryCacheRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "agg:final_scores:all", []int{1, 2, 3}, time.Minute))

	var out []int
	require.NoError(t, repo.Get(ctx, "agg:final_scores:all", &out))
	require.Equal(t, []int{1, 2, 3}, out)
}

func TestMemoryCacheRepositoryMissOnAbsentKey(t *testing.T) {
	repo := NewMemoryCacheRepository()

	var out string
	err := repo.Get(context.Background(), "agg:missing", &out)
	require.True(t, errors.Is(err, appErrors.ErrCacheMiss))
}

func TestMemoryCacheRepositoryExpiry(t *testing.T) {
	repo := NewMemoryCacheRepository()
	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "agg:total_clicks:all", 42, 5*time.Minute))

	var out int
	require.NoError(t, repo.Get(ctx, "agg:total_clicks:all", &out))
	require.Equal(t, 42, out)

	current = current.Add(5*time.Minute + time.Second)
	err := repo.Get(ctx, "agg:total_clicks:all", &out)
	require.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	require.Zero(t, repo.Len())

	// Last writer wins after expiry.
	require.NoError(t, repo.Set(ctx, "agg:total_clicks:all", 99, 5*time.Minute))
	require.NoError(t, repo.Get(ctx, "agg:total_clicks:all", &out))
	require.Equal(t, 99, out)
}

func TestMemoryCacheRepositoryDeleteByPattern(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "agg:final_scores:all", 1, 0))
	require.NoError(t, repo.Set(ctx, "agg:final_scores:10", 2, 0))
	require.NoError(t, repo.Set(ctx, "dash:overview:all", 3, 0))

	require.NoError(t, repo.DeleteByPattern(ctx, "agg:final_scores:*"))
	require.Equal(t, 1, repo.Len())

	var out int
	require.NoError(t, repo.Get(ctx, "dash:overview:all", &out))
	require.Equal(t, 3, out)
}
