package handler

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/vle-dashboard-api/internal/dto"
	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
	"github.com/noah-isme/vle-dashboard-api/pkg/response"
)

type dashboardService interface {
	Overview(ctx context.Context, sel models.ScopeSelection) (*dto.OverviewResponse, bool, error)
	ClassDetail(ctx context.Context, presentationID int64) (*dto.ClassDetailResponse, bool, error)
	StudentDetail(ctx context.Context, studentID int64, sel models.ScopeSelection) (*dto.StudentDetailResponse, error)
	EnrollmentActivity(ctx context.Context, enrollmentID int64) (*dto.EnrollmentActivityResponse, error)
	Analytics(ctx context.Context, sel models.ScopeSelection) (*dto.AnalyticsResponse, bool, error)
	Instructor(ctx context.Context, name string, sel models.ScopeSelection) (*dto.InstructorResponse, error)
}

// DashboardHandler wires the page composition service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview godoc
// @Summary Overview page
// @Tags Dashboard
// @Produce json
// @Param semester query []string false "Semester labels to include"
// @Param instructor query []string false "Instructor names to include"
// @Success 200 {object} response.Envelope
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	page, cacheHit, err := h.service.Overview(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, page)
}

// ClassDetail godoc
// @Summary Class drill-down page
// @Tags Dashboard
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/classes/{id} [get]
func (h *DashboardHandler) ClassDetail(c *gin.Context) {
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
	page, cacheHit, err := h.service.ClassDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, page)
}

// StudentDetail godoc
// @Summary Student profile page
// @Tags Dashboard
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/students/{id} [get]
func (h *DashboardHandler) StudentDetail(c *gin.Context) {
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
	page, err := h.service.StudentDetail(c.Request.Context(), id, scopeFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, false, page)
}

// EnrollmentActivity godoc
// @Summary Engagement view for one enrollment
// @Tags Dashboard
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/enrollments/{id}/activity [get]
func (h *DashboardHandler) EnrollmentActivity(c *gin.Context) {
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
	page, err := h.service.EnrollmentActivity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, false, page)
}

// Analytics godoc
// @Summary Cross-cutting analytics page
// @Tags Dashboard
// @Produce json
// @Param semester query []string false "Semester labels to include"
// @Param instructor query []string false "Instructor names to include"
// @Success 200 {object} response.Envelope
// @Router /dashboard/analytics [get]
func (h *DashboardHandler) Analytics(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	page, cacheHit, err := h.service.Analytics(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, cacheHit, page)
}

// Instructor godoc
// @Summary Instructor page
// @Tags Dashboard
// @Produce json
// @Param name path string true "Instructor name"
// @Success 200 {object} response.Envelope
// @Router /dashboard/instructors/{name} [get]
func (h *DashboardHandler) Instructor(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "name is required"))
		return
	}
	start := time.Now()
	page, err := h.service.Instructor(c.Request.Context(), name, scopeFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWithMeta(c, start, false, page)
}
