package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// AssessmentRepository serves assessment definitions and submitted scores.
type AssessmentRepository struct {
	db *sqlx.DB
}

// NewAssessmentRepository constructs an AssessmentRepository.
func NewAssessmentRepository(db *sqlx.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// ByPresentation returns the assessments defined for one presentation.
func (r *AssessmentRepository) ByPresentation(ctx context.Context, presentationID int64) ([]models.Assessment, error) {
	const query = `SELECT a.assessment_id, a.assessment_name, a.weight
        FROM assessment a
        WHERE a.presentation_id = $1
        ORDER BY a.assessment_id`
	var assessments []models.Assessment
	if err := r.db.SelectContext(ctx, &assessments, query, presentationID); err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	return assessments, nil
}

// ScoresByEnrollment returns the submitted scores for one enrollment joined
// to assessment name and weight. Absent rows mean "not submitted".
func (r *AssessmentRepository) ScoresByEnrollment(ctx context.Context, enrollmentID int64) ([]models.StudentScore, error) {
	const query = `SELECT sa.student_assessment_id, a.assessment_id, a.assessment_name, sa.score, a.weight
        FROM student_assessment sa
        JOIN assessment a ON sa.assessment_id = a.assessment_id
        WHERE sa.enrollment_id = $1`
	var scores []models.StudentScore
	if err := r.db.SelectContext(ctx, &scores, query, enrollmentID); err != nil {
		return nil, fmt.Errorf("query student scores: %w", err)
	}
	return scores, nil
}
