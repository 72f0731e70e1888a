package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
	"github.com/noah-isme/vle-dashboard-api/internal/repository"
)

type fakeAnalyticsRepo struct {
	finalScoreCalls int
	clicksCalls     int
	moduleCalls     int

	scores []models.FinalScore
	clicks []models.TotalClicks
}

func (f *fakeAnalyticsRepo) FinalScores(_ context.Context, presentationID *int64) ([]models.FinalScore, error) {
	f.finalScoreCalls++
	if presentationID == nil {
		return f.scores, nil
	}
	var scoped []models.FinalScore
	for _, s := range f.scores {
		if s.PresentationID == *presentationID {
			scoped = append(scoped, s)
		}
	}
	return scoped, nil
}

func (f *fakeAnalyticsRepo) TotalClicks(context.Context, *int64) ([]models.TotalClicks, error) {
	f.clicksCalls++
	return f.clicks, nil
}

func (f *fakeAnalyticsRepo) FinalResultsDistribution(context.Context, int64) ([]models.ResultCount, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) VLEAvgTimeline(context.Context, int64) ([]models.TimelinePoint, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) AssessmentScoresByEnrollment(context.Context, int64) ([]models.AssessmentScore, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) StudentsByModuleCounts(context.Context) ([]models.ModuleCount, error) {
	f.moduleCalls++
	return []models.ModuleCount{{ModuleCode: "AAA", StudentCount: 5}}, nil
}

func newCachedAnalyticsService(repo AnalyticsRepository) *AnalyticsService {
	cacheSvc := NewCacheService(repository.NewMemoryCacheRepository(), nil, 5*time.Minute, zap.NewNop(), true)
	return NewAnalyticsService(repo, cacheSvc, nil, zap.NewNop())
}

func TestAnalyticsServiceCachesFinalScores(t *testing.T) {
	repo := &fakeAnalyticsRepo{scores: []models.FinalScore{
		{EnrollmentID: 1, PresentationID: 10, StudentID: 100, FinalScore: 72.0},
	}}
	svc := newCachedAnalyticsService(repo)
	ctx := context.Background()

	scores, hit, err := svc.FinalScores(ctx, nil)
	require.NoError(t, err)
	require.False(t, hit)
	require.Len(t, scores, 1)

	scores, hit, err = svc.FinalScores(ctx, nil)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, scores, 1)
	require.InDelta(t, 72.0, scores[0].FinalScore, 1e-9)
	require.Equal(t, 1, repo.finalScoreCalls)
}

func TestAnalyticsServiceScopedAndGlobalKeysAreDistinct(t *testing.T) {
	repo := &fakeAnalyticsRepo{scores: []models.FinalScore{
		{EnrollmentID: 1, PresentationID: 10, FinalScore: 60},
		{EnrollmentID: 2, PresentationID: 20, FinalScore: 80},
	}}
	svc := newCachedAnalyticsService(repo)
	ctx := context.Background()

	all, _, err := svc.FinalScores(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	id := int64(10)
	scoped, hit, err := svc.FinalScores(ctx, &id)
	require.NoError(t, err)
	require.False(t, hit)
	require.Len(t, scoped, 1)
	require.Equal(t, 2, repo.finalScoreCalls)

	// And the global entry survives untouched.
	all, hit, err = svc.FinalScores(ctx, nil)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, all, 2)
}

func TestAnalyticsServiceWorksWithoutCache(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, nil, nil, zap.NewNop())

	_, hit, err := svc.ModuleCounts(context.Background())
	require.NoError(t, err)
	require.False(t, hit)

	_, hit, err = svc.ModuleCounts(context.Background())
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 2, repo.moduleCalls)
}

func TestMakeAggregationKey(t *testing.T) {
	require.Equal(t, "agg:final_scores:all", makeAggregationKey("final_scores", "all"))
	require.Equal(t, "agg:final_scores:10", makeAggregationKey("final_scores", "10"))
	// Colons inside parts must not fabricate key segments.
	require.Equal(t, "agg:x|y", makeAggregationKey("x:y"))
}
