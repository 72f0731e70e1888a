package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/vle-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
	"github.com/noah-isme/vle-dashboard-api/pkg/response"
)

type exportService interface {
	ClassSummary(ctx context.Context, presentationID int64, format string) (*service.ExportArtifact, error)
}

// ExportHandler streams rendered class summaries.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// ClassSummary godoc
// @Summary Download a class summary
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Presentation ID"
// @Param format query string false "csv or pdf" default(csv)
// @Router /export/classes/{id} [get]
func (h *ExportHandler) ClassSummary(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", service.FormatCSV)))
	artifact, err := h.service.ClassSummary(c.Request.Context(), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(200, artifact.ContentType, artifact.Content)
}
