package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// EnrollmentRepository serves enrollment projections.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ByPresentation returns the roster for one presentation. The inner join to
// user_account filtered to the student role silently drops enrollments whose
// account row is missing or mis-roled; OrphanCount makes that visible.
func (r *EnrollmentRepository) ByPresentation(ctx context.Context, presentationID int64) ([]models.ClassEnrollment, error) {
	const query = `SELECT e.enrollment_id, e.presentation_id, s.user_id AS student_id, s.name,
        e.studied_credits, e.final_result
        FROM enrollment e
        JOIN user_account s ON e.student_id = s.user_id
        WHERE e.presentation_id = $1 AND s.role = $2
        ORDER BY s.name`
	var roster []models.ClassEnrollment
	if err := r.db.SelectContext(ctx, &roster, query, presentationID, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("query class enrollment: %w", err)
	}
	return roster, nil
}

// All returns every enrollment without account joins, so rows survive even
// when the student account is orphaned.
func (r *EnrollmentRepository) All(ctx context.Context) ([]models.Enrollment, error) {
	const query = `SELECT e.enrollment_id, e.presentation_id, e.student_id,
        e.final_result, e.studied_credits
        FROM enrollment e`
	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, query); err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	return enrollments, nil
}

// OrphanCount counts enrollments that the role-filtered roster join would
// drop: student account missing or carrying a non-student role.
func (r *EnrollmentRepository) OrphanCount(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*)
        FROM enrollment e
        LEFT JOIN user_account s ON e.student_id = s.user_id AND s.role = $1
        WHERE s.user_id IS NULL`
	var count int
	if err := r.db.GetContext(ctx, &count, query, models.RoleStudent); err != nil {
		return 0, fmt.Errorf("count orphan enrollments: %w", err)
	}
	return count, nil
}
