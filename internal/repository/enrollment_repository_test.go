package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

func newEnrollmentRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestEnrollmentRepositoryByPresentation(t *testing.T) {
	db, mock, cleanup := newEnrollmentRepoMock(t)
	defer cleanup()

	repo := NewEnrollmentRepository(db)
	pass := "Pass"
	credits := 60
	rows := sqlmock.NewRows([]string{"enrollment_id", "presentation_id", "student_id", "name", "studied_credits", "final_result"}).
		AddRow(int64(1), int64(10), int64(100), "Ana", &credits, &pass).
		AddRow(int64(2), int64(10), int64(101), "Ben", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT e.enrollment_id")).
		WithArgs(int64(10), models.RoleStudent).
		WillReturnRows(rows)

	roster, err := repo.ByPresentation(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, "Ana", roster[0].Name)
	require.Nil(t, roster[1].FinalResult)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryAll(t *testing.T) {
	db, mock, cleanup := newEnrollmentRepoMock(t)
	defer cleanup()

	repo := NewEnrollmentRepository(db)
	rows := sqlmock.NewRows([]string{"enrollment_id", "presentation_id", "student_id", "final_result", "studied_credits"}).
		AddRow(int64(1), int64(10), int64(100), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT e.enrollment_id")).
		WillReturnRows(rows)

	enrollments, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.Equal(t, int64(100), enrollments[0].StudentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryOrphanCount(t *testing.T) {
	db, mock, cleanup := newEnrollmentRepoMock(t)
	defer cleanup()

	repo := NewEnrollmentRepository(db)
	rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(models.RoleStudent).
		WillReturnRows(rows)

	count, err := repo.OrphanCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
