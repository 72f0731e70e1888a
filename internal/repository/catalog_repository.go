package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// CatalogRepository serves the base entity fetchers: students, instructors
// and presentations. All queries are read-only projections; downstream
// derivations depend on their exact column sets.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs a CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Students returns every account with the student role, ordered by name.
func (r *CatalogRepository) Students(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT user_id AS student_id, name, gender, region, highest_education, date_of_birth
        FROM user_account
        WHERE role = $1
        ORDER BY name`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	return students, nil
}

// Instructors returns every account with the instructor role, ordered by name.
func (r *CatalogRepository) Instructors(ctx context.Context) ([]models.Instructor, error) {
	const query = `SELECT user_id AS instructor_id, name, department
        FROM user_account
        WHERE role = $1
        ORDER BY name`
	var instructors []models.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query, models.RoleInstructor); err != nil {
		return nil, fmt.Errorf("query instructors: %w", err)
	}
	return instructors, nil
}

// Presentations returns every class offering joined to its module and
// instructor, newest year first.
func (r *CatalogRepository) Presentations(ctx context.Context) ([]models.Presentation, error) {
	const query = `SELECT p.presentation_id, p.semester, p.year,
        m.module_code, m.module_name,
        i.name AS instructor_name,
        i.user_id AS instructor_id
        FROM presentation p
        JOIN course_module m ON p.module_id = m.module_id
        JOIN user_account i ON p.instructor_id = i.user_id
        ORDER BY p.year DESC, p.semester ASC`
	var presentations []models.Presentation
	if err := r.db.SelectContext(ctx, &presentations, query); err != nil {
		return nil, fmt.Errorf("query presentations: %w", err)
	}
	return presentations, nil
}
