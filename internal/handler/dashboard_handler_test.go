package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/vle-dashboard-api/internal/dto"
	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
)

type fakeDashboardSrv struct {
	overviewResp *dto.OverviewResponse
	overviewHit  bool
	classResp    *dto.ClassDetailResponse
	classErr     error
	lastScope    models.ScopeSelection
	lastClassID  int64
}

func (f *fakeDashboardSrv) Overview(_ context.Context, sel models.ScopeSelection) (*dto.OverviewResponse, bool, error) {
	f.lastScope = sel
	return f.overviewResp, f.overviewHit, nil
}

func (f *fakeDashboardSrv) ClassDetail(_ context.Context, presentationID int64) (*dto.ClassDetailResponse, bool, error) {
	f.lastClassID = presentationID
	return f.classResp, false, f.classErr
}

func (f *fakeDashboardSrv) StudentDetail(context.Context, int64, models.ScopeSelection) (*dto.StudentDetailResponse, error) {
	return &dto.StudentDetailResponse{}, nil
}

func (f *fakeDashboardSrv) EnrollmentActivity(context.Context, int64) (*dto.EnrollmentActivityResponse, error) {
	return &dto.EnrollmentActivityResponse{}, nil
}

func (f *fakeDashboardSrv) Analytics(context.Context, models.ScopeSelection) (*dto.AnalyticsResponse, bool, error) {
	return &dto.AnalyticsResponse{}, false, nil
}

func (f *fakeDashboardSrv) Instructor(context.Context, string, models.ScopeSelection) (*dto.InstructorResponse, error) {
	return &dto.InstructorResponse{}, nil
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func TestDashboardHandlerOverview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeDashboardSrv{
		overviewResp: &dto.OverviewResponse{Students: 3},
		overviewHit:  true,
	}
	handler := NewDashboardHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/overview?semester=Fall+2024&instructor=Chen&instructor=Diaz", nil)

	handler.Overview(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Fall 2024"}, service.lastScope.Semesters)
	assert.Equal(t, []string{"Chen", "Diaz"}, service.lastScope.Instructors)

	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, float64(3), envelope.Data["students"])
}

func TestDashboardHandlerClassDetailInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/classes/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.ClassDetail(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandlerClassDetailNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{
		classErr: appErrors.Clone(appErrors.ErrNotFound, "presentation not found"),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/classes/999", nil)
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	handler.ClassDetail(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardHandlerClassDetailSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeDashboardSrv{classResp: &dto.ClassDetailResponse{}}
	handler := NewDashboardHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/classes/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	handler.ClassDetail(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), service.lastClassID)
}
