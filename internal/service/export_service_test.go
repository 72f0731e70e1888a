package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
)

func newExportService(enabled bool, maxRows int) *ExportService {
	catalog, enrollments, _, _, aggregations := dashboardFixture()
	return NewExportService(catalog, enrollments, aggregations, enabled, maxRows, zap.NewNop())
}

func TestExportServiceClassSummaryCSV(t *testing.T) {
	svc := newExportService(true, 0)

	artifact, err := svc.ClassSummary(context.Background(), 1, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", artifact.ContentType)
	require.True(t, strings.HasPrefix(artifact.Filename, "class_1_AAA_"))
	require.True(t, strings.HasSuffix(artifact.Filename, ".csv"))

	body := string(artifact.Content)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Student,Final Result,Studied Credits,Final Score,Total Clicks", lines[0])
	require.Contains(t, lines[1], "Ana")
	require.Contains(t, lines[1], "72.00")
	require.Contains(t, lines[1], "120")
	// Ben has no final score; the cell stays empty instead of shifting columns.
	require.Contains(t, lines[2], "Ben")
	require.Contains(t, lines[2], ",,")
}

func TestExportServiceClassSummaryPDF(t *testing.T) {
	svc := newExportService(true, 0)

	artifact, err := svc.ClassSummary(context.Background(), 1, FormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", artifact.ContentType)
	require.True(t, strings.HasSuffix(artifact.Filename, ".pdf"))
	require.True(t, strings.HasPrefix(string(artifact.Content), "%PDF"))
}

func TestExportServiceMaxRows(t *testing.T) {
	svc := newExportService(true, 1)

	artifact, err := svc.ClassSummary(context.Background(), 1, FormatCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(artifact.Content)), "\n")
	require.Len(t, lines, 2)
}

func TestExportServiceDisabled(t *testing.T) {
	svc := newExportService(false, 0)

	_, err := svc.ClassSummary(context.Background(), 1, FormatCSV)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrDisabled.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := newExportService(true, 0)

	_, err := svc.ClassSummary(context.Background(), 1, "xlsx")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportServiceUnknownPresentation(t *testing.T) {
	svc := newExportService(true, 0)

	_, err := svc.ClassSummary(context.Background(), 999, FormatCSV)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
