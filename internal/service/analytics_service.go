package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// AnalyticsRepository describes the aggregation queries required by
// AnalyticsService.
type AnalyticsRepository interface {
	FinalScores(ctx context.Context, presentationID *int64) ([]models.FinalScore, error)
	TotalClicks(ctx context.Context, presentationID *int64) ([]models.TotalClicks, error)
	FinalResultsDistribution(ctx context.Context, presentationID int64) ([]models.ResultCount, error)
	VLEAvgTimeline(ctx context.Context, presentationID int64) ([]models.TimelinePoint, error)
	AssessmentScoresByEnrollment(ctx context.Context, enrollmentID int64) ([]models.AssessmentScore, error)
	StudentsByModuleCounts(ctx context.Context) ([]models.ModuleCount, error)
}

// AnalyticsService fronts the aggregation queries with the result cache.
// Keys combine the operation id with the parameter tuple; the unfiltered case
// is a distinct key from any concrete presentation id, so a scoped result can
// never shadow the global one.
type AnalyticsService struct {
	repo    AnalyticsRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(repo AnalyticsRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, metrics: metrics, logger: logger}
}

// FinalScores returns weighted final scores, optionally scoped to one
// presentation. The boolean indicates whether data originated from cache.
func (s *AnalyticsService) FinalScores(ctx context.Context, presentationID *int64) ([]models.FinalScore, bool, error) {
	cacheKey := makeAggregationKey("final_scores", optionalIDKey(presentationID))
	var cached []models.FinalScore
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get final scores cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	scores, err := s.repo.FinalScores(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("final_scores", time.Since(start))
	}
	s.store(ctx, cacheKey, scores)
	return scores, false, nil
}

// TotalClicks returns zero-defaulted click totals per enrollment.
func (s *AnalyticsService) TotalClicks(ctx context.Context, presentationID *int64) ([]models.TotalClicks, bool, error) {
	cacheKey := makeAggregationKey("total_clicks", optionalIDKey(presentationID))
	var cached []models.TotalClicks
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get total clicks cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	clicks, err := s.repo.TotalClicks(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("total_clicks", time.Since(start))
	}
	s.store(ctx, cacheKey, clicks)
	return clicks, false, nil
}

// ResultDistribution returns the final-result buckets for one presentation.
func (s *AnalyticsService) ResultDistribution(ctx context.Context, presentationID int64) ([]models.ResultCount, bool, error) {
	cacheKey := makeAggregationKey("results_distribution", strconv.FormatInt(presentationID, 10))
	var cached []models.ResultCount
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get results distribution cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	counts, err := s.repo.FinalResultsDistribution(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("results_distribution", time.Since(start))
	}
	s.store(ctx, cacheKey, counts)
	return counts, false, nil
}

// Timeline returns the per-date average click timeline for one presentation.
func (s *AnalyticsService) Timeline(ctx context.Context, presentationID int64) ([]models.TimelinePoint, bool, error) {
	cacheKey := makeAggregationKey("vle_timeline", strconv.FormatInt(presentationID, 10))
	var cached []models.TimelinePoint
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get vle timeline cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	points, err := s.repo.VLEAvgTimeline(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("vle_timeline", time.Since(start))
	}
	s.store(ctx, cacheKey, points)
	return points, false, nil
}

// AssessmentScores returns the left-join completion rows for one enrollment.
func (s *AnalyticsService) AssessmentScores(ctx context.Context, enrollmentID int64) ([]models.AssessmentScore, bool, error) {
	cacheKey := makeAggregationKey("assessment_scores", strconv.FormatInt(enrollmentID, 10))
	var cached []models.AssessmentScore
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get assessment scores cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	rows, err := s.repo.AssessmentScoresByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("assessment_scores", time.Since(start))
	}
	s.store(ctx, cacheKey, rows)
	return rows, false, nil
}

// ModuleCounts returns enrollment counts per module code.
func (s *AnalyticsService) ModuleCounts(ctx context.Context) ([]models.ModuleCount, bool, error) {
	cacheKey := makeAggregationKey("module_counts")
	var cached []models.ModuleCount
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get module counts cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	counts, err := s.repo.StudentsByModuleCounts(ctx)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("module_counts", time.Since(start))
	}
	s.store(ctx, cacheKey, counts)
	return counts, false, nil
}

// SystemMetrics returns the instrumentation snapshot.
func (s *AnalyticsService) SystemMetrics() models.SystemMetrics {
	if s.metrics == nil {
		return models.SystemMetrics{}
	}
	return s.metrics.Snapshot()
}

func (s *AnalyticsService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, 0); err != nil && s.logger != nil {
		s.logger.Warn("cache aggregation", zap.String("key", key), zap.Error(err))
	}
}

func makeAggregationKey(parts ...string) string {
	var builder strings.Builder
	builder.Grow(len(parts) * 16)
	builder.WriteString("agg")
	for _, part := range parts {
		if part == "" {
			continue
		}
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}

func optionalIDKey(id *int64) string {
	if id == nil {
		return "all"
	}
	return strconv.FormatInt(*id, 10)
}
