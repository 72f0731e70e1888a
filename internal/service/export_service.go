package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
	"github.com/noah-isme/vle-dashboard-api/pkg/export"
)

// Export formats accepted by ExportService.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ExportArtifact is one rendered export ready to stream to the client.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders class summaries as downloadable artifacts. It reads
// through the same roster and aggregation surfaces the dashboard pages use,
// so an export always matches what the class page displays.
type ExportService struct {
	catalog      CatalogProvider
	enrollments  EnrollmentProvider
	aggregations AggregationProvider
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
	enabled      bool
	maxRows      int
	logger       *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(
	catalog CatalogProvider,
	enrollments EnrollmentProvider,
	aggregations AggregationProvider,
	enabled bool,
	maxRows int,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		catalog:      catalog,
		enrollments:  enrollments,
		aggregations: aggregations,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		enabled:      enabled,
		maxRows:      maxRows,
		logger:       logger,
	}
}

// ClassSummary renders the per-student summary of one presentation in the
// requested format. Rows beyond the configured maximum are dropped from the
// artifact, never reordered.
func (s *ExportService) ClassSummary(ctx context.Context, presentationID int64, format string) (*ExportArtifact, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrDisabled, "export disabled")
	}
	if format != FormatCSV && format != FormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	presentations, err := s.catalog.Presentations(ctx)
	if err != nil {
		return nil, err
	}
	presentation, ok := findPresentation(presentations, presentationID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "presentation not found")
	}

	roster, err := s.enrollments.ByPresentation(ctx, presentationID)
	if err != nil {
		return nil, err
	}
	scores, _, err := s.aggregations.FinalScores(ctx, &presentationID)
	if err != nil {
		return nil, err
	}
	clicks, _, err := s.aggregations.TotalClicks(ctx, &presentationID)
	if err != nil {
		return nil, err
	}

	scoreByEnrollment := make(map[int64]float64, len(scores))
	for _, sc := range scores {
		scoreByEnrollment[sc.EnrollmentID] = sc.FinalScore
	}
	clicksByEnrollment := make(map[int64]int64, len(clicks))
	for _, c := range clicks {
		clicksByEnrollment[c.EnrollmentID] = c.TotalClicks
	}

	if s.maxRows > 0 && len(roster) > s.maxRows {
		if s.logger != nil {
			s.logger.Warn("export truncated",
				zap.Int64("presentation_id", presentationID),
				zap.Int("rows", len(roster)),
				zap.Int("max_rows", s.maxRows))
		}
		roster = roster[:s.maxRows]
	}

	dataset := export.Dataset{
		Headers: []string{"Student", "Final Result", "Studied Credits", "Final Score", "Total Clicks"},
		Rows:    make([]map[string]string, 0, len(roster)),
	}
	for _, e := range roster {
		row := map[string]string{
			"Student":      e.Name,
			"Total Clicks": strconv.FormatInt(clicksByEnrollment[e.EnrollmentID], 10),
		}
		if e.FinalResult != nil {
			row["Final Result"] = *e.FinalResult
		}
		if e.StudiedCredits != nil {
			row["Studied Credits"] = strconv.Itoa(*e.StudiedCredits)
		}
		if score, ok := scoreByEnrollment[e.EnrollmentID]; ok {
			row["Final Score"] = strconv.FormatFloat(score, 'f', 2, 64)
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	title := fmt.Sprintf("%s %s", presentation.ModuleCode, presentation.SemesterLabel())
	artifact := &ExportArtifact{
		Filename: exportFilename(presentation, format),
	}
	switch format {
	case FormatCSV:
		artifact.ContentType = "text/csv"
		artifact.Content, err = s.csv.Render(dataset)
	case FormatPDF:
		artifact.ContentType = "application/pdf"
		artifact.Content, err = s.pdf.Render(dataset, title)
	}
	if err != nil {
		return nil, fmt.Errorf("render class summary: %w", err)
	}
	return artifact, nil
}

func exportFilename(p models.Presentation, format string) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("class_%d_%s_%s.%s", p.PresentationID, p.ModuleCode, suffix, format)
}
