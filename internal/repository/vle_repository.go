package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// VLERepository serves raw learning-activity events.
type VLERepository struct {
	db *sqlx.DB
}

// NewVLERepository constructs a VLERepository.
func NewVLERepository(db *sqlx.DB) *VLERepository {
	return &VLERepository{db: db}
}

// ActivityByEnrollment returns every click event for one enrollment joined to
// its resource, oldest first.
func (r *VLERepository) ActivityByEnrollment(ctx context.Context, enrollmentID int64) ([]models.VLEActivity, error) {
	const query = `SELECT sva.vle_id, v.vle_type, v.title, sva.activity_date, sva.clicks
        FROM student_vle_activity sva
        JOIN vle_item v ON sva.vle_id = v.vle_id
        WHERE sva.enrollment_id = $1
        ORDER BY sva.activity_date`
	var activity []models.VLEActivity
	if err := r.db.SelectContext(ctx, &activity, query, enrollmentID); err != nil {
		return nil, fmt.Errorf("query vle activity: %w", err)
	}
	return activity, nil
}
