package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// AnalyticsRepository exposes the read-optimised aggregation queries the
// dashboard pages are built from.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository instantiates the repository.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// FinalScores computes the weighted final score per enrollment, optionally
// scoped to one presentation. Only submitted assessments contribute: the
// score is SUM(score*weight)/SUM(weight) over the rows that exist in
// student_assessment, and the NULLIF denominator means an enrollment with no
// submissions yields no row at all rather than a zero.
func (r *AnalyticsRepository) FinalScores(ctx context.Context, presentationID *int64) ([]models.FinalScore, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT e.enrollment_id,
        e.presentation_id,
        e.student_id,
        SUM(sa.score * a.weight)::DECIMAL / NULLIF(SUM(a.weight), 0) AS final_score
        FROM enrollment e
        JOIN student_assessment sa ON sa.enrollment_id = e.enrollment_id
        JOIN assessment a ON a.assessment_id = sa.assessment_id`)
	var args []interface{}
	if presentationID != nil {
		args = append(args, *presentationID)
		builder.WriteString(fmt.Sprintf(" WHERE e.presentation_id = $%d", len(args)))
	}
	builder.WriteString(` GROUP BY e.enrollment_id, e.presentation_id, e.student_id
        HAVING SUM(a.weight) <> 0`)

	var scores []models.FinalScore
	if err := r.db.SelectContext(ctx, &scores, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("query final scores: %w", err)
	}
	return scores, nil
}

// TotalClicks sums VLE activity per enrollment, optionally scoped to one
// presentation. The join is anchored on enrollment so every enrollment in
// scope is represented, defaulting to 0 with no activity rows.
func (r *AnalyticsRepository) TotalClicks(ctx context.Context, presentationID *int64) ([]models.TotalClicks, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT e.enrollment_id,
        e.presentation_id,
        COALESCE(SUM(sva.clicks), 0) AS total_clicks
        FROM enrollment e
        LEFT JOIN student_vle_activity sva ON sva.enrollment_id = e.enrollment_id`)
	var args []interface{}
	if presentationID != nil {
		args = append(args, *presentationID)
		builder.WriteString(fmt.Sprintf(" WHERE e.presentation_id = $%d", len(args)))
	}
	builder.WriteString(" GROUP BY e.enrollment_id, e.presentation_id")

	var clicks []models.TotalClicks
	if err := r.db.SelectContext(ctx, &clicks, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("query total clicks: %w", err)
	}
	return clicks, nil
}

// FinalResultsDistribution returns grouped final-result counts for one
// presentation, largest bucket first. Undetermined results group under NULL.
func (r *AnalyticsRepository) FinalResultsDistribution(ctx context.Context, presentationID int64) ([]models.ResultCount, error) {
	const query = `SELECT final_result, COUNT(*) AS cnt
        FROM enrollment
        WHERE presentation_id = $1
        GROUP BY final_result
        ORDER BY cnt DESC`
	var counts []models.ResultCount
	if err := r.db.SelectContext(ctx, &counts, query, presentationID); err != nil {
		return nil, fmt.Errorf("query final results distribution: %w", err)
	}
	return counts, nil
}

// VLEAvgTimeline averages click counts per calendar date across every
// enrollment of the presentation, oldest date first.
func (r *AnalyticsRepository) VLEAvgTimeline(ctx context.Context, presentationID int64) ([]models.TimelinePoint, error) {
	const query = `SELECT sva.activity_date::date AS activity_date,
        AVG(sva.clicks) AS avg_clicks
        FROM student_vle_activity sva
        JOIN enrollment e ON e.enrollment_id = sva.enrollment_id
        WHERE e.presentation_id = $1
        GROUP BY activity_date
        ORDER BY activity_date`
	var points []models.TimelinePoint
	if err := r.db.SelectContext(ctx, &points, query, presentationID); err != nil {
		return nil, fmt.Errorf("query vle avg timeline: %w", err)
	}
	return points, nil
}

// AssessmentScoresByEnrollment left-joins every assessment of the
// enrollment's presentation against that enrollment's submissions, so
// assessments never submitted appear with a NULL score. This powers the
// completion/missing view.
func (r *AnalyticsRepository) AssessmentScoresByEnrollment(ctx context.Context, enrollmentID int64) ([]models.AssessmentScore, error) {
	const query = `SELECT a.assessment_id,
        a.assessment_name,
        a.weight,
        sa.score
        FROM assessment a
        LEFT JOIN student_assessment sa
            ON sa.assessment_id = a.assessment_id
            AND sa.enrollment_id = $1
        WHERE a.presentation_id = (
            SELECT presentation_id FROM enrollment WHERE enrollment_id = $2
        )
        ORDER BY a.assessment_id`
	var rows []models.AssessmentScore
	if err := r.db.SelectContext(ctx, &rows, query, enrollmentID, enrollmentID); err != nil {
		return nil, fmt.Errorf("query assessment scores by enrollment: %w", err)
	}
	return rows, nil
}

// StudentsByModuleCounts counts enrollments per module code, largest first.
func (r *AnalyticsRepository) StudentsByModuleCounts(ctx context.Context) ([]models.ModuleCount, error) {
	const query = `SELECT m.module_code,
        COUNT(*) AS student_count
        FROM enrollment e
        JOIN presentation p ON p.presentation_id = e.presentation_id
        JOIN course_module m ON m.module_id = p.module_id
        GROUP BY m.module_code
        ORDER BY student_count DESC`
	var counts []models.ModuleCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("query students by module counts: %w", err)
	}
	return counts, nil
}
