package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/vle-dashboard-api/internal/repository"
)

func TestCacheServiceDisabledIsNoop(t *testing.T) {
	svc := NewCacheService(repository.NewMemoryCacheRepository(), nil, time.Minute, zap.NewNop(), false)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k", "v", 0))

	var out string
	hit, err := svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
	require.Empty(t, out)
}

func TestCacheServiceMissThenHit(t *testing.T) {
	svc := NewCacheService(repository.NewMemoryCacheRepository(), nil, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	var out string
	hit, err := svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, svc.Set(ctx, "k", "v", 0))

	hit, err = svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "v", out)
}

func TestCacheServiceInvalidate(t *testing.T) {
	svc := NewCacheService(repository.NewMemoryCacheRepository(), nil, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "agg:final_scores:all", 1, 0))
	require.NoError(t, svc.Invalidate(ctx, "agg:*"))

	var out int
	hit, err := svc.Get(ctx, "agg:final_scores:all", &out)
	require.NoError(t, err)
	require.False(t, hit)
}
