package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
	"github.com/noah-isme/vle-dashboard-api/pkg/response"
)

type aggregationService interface {
	FinalScores(ctx context.Context, presentationID *int64) ([]models.FinalScore, bool, error)
	TotalClicks(ctx context.Context, presentationID *int64) ([]models.TotalClicks, bool, error)
	ResultDistribution(ctx context.Context, presentationID int64) ([]models.ResultCount, bool, error)
	Timeline(ctx context.Context, presentationID int64) ([]models.TimelinePoint, bool, error)
	AssessmentScores(ctx context.Context, enrollmentID int64) ([]models.AssessmentScore, bool, error)
	ModuleCounts(ctx context.Context) ([]models.ModuleCount, bool, error)
	SystemMetrics() models.SystemMetrics
}

type enrollmentAuditor interface {
	OrphanCount(ctx context.Context) (int, error)
}

// AnalyticsHandler exposes the raw aggregation endpoints plus the data-quality
// audit and the system metrics snapshot.
type AnalyticsHandler struct {
	service aggregationService
	auditor enrollmentAuditor
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(service aggregationService, auditor enrollmentAuditor) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, auditor: auditor}
}

// optionalPresentationID parses the optional presentation_id query param.
func optionalPresentationID(c *gin.Context) (*int64, error) {
	raw := c.Query("presentation_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "presentation_id must be a positive integer")
	}
	return &id, nil
}

// FinalScores godoc
// @Summary Weighted final scores per enrollment
// @Tags Analytics
// @Produce json
// @Param presentation_id query int false "Restrict to one presentation"
// @Success 200 {object} response.Envelope
// @Router /analytics/final-scores [get]
func (h *AnalyticsHandler) FinalScores(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	presentationID, err := optionalPresentationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	scores, cacheHit, err := h.service.FinalScores(c.Request.Context(), presentationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, scores)
}

// TotalClicks godoc
// @Summary Total VLE clicks per enrollment
// @Tags Analytics
// @Produce json
// @Param presentation_id query int false "Restrict to one presentation"
// @Success 200 {object} response.Envelope
// @Router /analytics/total-clicks [get]
func (h *AnalyticsHandler) TotalClicks(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	presentationID, err := optionalPresentationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	clicks, cacheHit, err := h.service.TotalClicks(c.Request.Context(), presentationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, clicks)
}

// ResultDistribution godoc
// @Summary Final result distribution for one presentation
// @Tags Analytics
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} response.Envelope
// @Router /analytics/presentations/{id}/results [get]
func (h *AnalyticsHandler) ResultDistribution(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	counts, cacheHit, err := h.service.ResultDistribution(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, counts)
}

// Timeline godoc
// @Summary Average daily VLE clicks for one presentation
// @Tags Analytics
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} response.Envelope
// @Router /analytics/presentations/{id}/timeline [get]
func (h *AnalyticsHandler) Timeline(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	points, cacheHit, err := h.service.Timeline(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, points)
}

// AssessmentScores godoc
// @Summary Assessment completion rows for one enrollment
// @Tags Analytics
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Router /analytics/enrollments/{id}/assessments [get]
func (h *AnalyticsHandler) AssessmentScores(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	rows, cacheHit, err := h.service.AssessmentScores(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, rows)
}

// ModuleCounts godoc
// @Summary Enrollment counts per module
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/module-counts [get]
func (h *AnalyticsHandler) ModuleCounts(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	counts, cacheHit, err := h.service.ModuleCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, counts)
}

// OrphanEnrollments godoc
// @Summary Count enrollments dropped by the role-filtered roster join
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/audit/orphan-enrollments [get]
func (h *AnalyticsHandler) OrphanEnrollments(c *gin.Context) {
	if h.auditor == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	count, err := h.auditor.OrphanCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, false, gin.H{"orphan_enrollments": count})
}

// System godoc
// @Summary Instrumentation snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/system [get]
func (h *AnalyticsHandler) System(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	writeWithMeta(c, start, false, h.service.SystemMetrics())
}
