package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
	"github.com/noah-isme/vle-dashboard-api/pkg/response"
)

type catalogProvider interface {
	Students(ctx context.Context) ([]models.Student, error)
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Presentations(ctx context.Context) ([]models.Presentation, error)
}

// CatalogHandler exposes the base entity fetchers.
type CatalogHandler struct {
	catalog catalogProvider
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog catalogProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Students godoc
// @Summary List students
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *CatalogHandler) Students(c *gin.Context) {
	if h.catalog == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	students, err := h.catalog.Students(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Instructors godoc
// @Summary List instructors
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *CatalogHandler) Instructors(c *gin.Context) {
	if h.catalog == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	instructors, err := h.catalog.Instructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructors)
}

// Presentations godoc
// @Summary List class presentations
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /presentations [get]
func (h *CatalogHandler) Presentations(c *gin.Context) {
	if h.catalog == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	presentations, err := h.catalog.Presentations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, presentations)
}
