package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

func scopeFixture() ([]models.Presentation, []models.Enrollment) {
	presentations := []models.Presentation{
		{PresentationID: 1, Semester: "Fall", Year: 2024, InstructorName: "Chen"},
		{PresentationID: 2, Semester: "Fall", Year: 2024, InstructorName: "Diaz"},
		{PresentationID: 3, Semester: "Spring", Year: 2025, InstructorName: "Chen"},
	}
	enrollments := []models.Enrollment{
		{EnrollmentID: 11, PresentationID: 1, StudentID: 100},
		{EnrollmentID: 12, PresentationID: 2, StudentID: 101},
		{EnrollmentID: 13, PresentationID: 3, StudentID: 100},
	}
	return presentations, enrollments
}

func TestScopeServiceEmptySelectionKeepsAll(t *testing.T) {
	svc := NewScopeService()
	presentations, enrollments := scopeFixture()

	keptPres, keptEnr := svc.Apply(presentations, enrollments, models.ScopeSelection{})
	require.Len(t, keptPres, 3)
	require.Len(t, keptEnr, 3)
}

func TestScopeServiceIntersectsDimensions(t *testing.T) {
	svc := NewScopeService()
	presentations, enrollments := scopeFixture()

	sel := models.ScopeSelection{
		Semesters:   []string{"Fall 2024"},
		Instructors: []string{"Chen"},
	}
	keptPres, keptEnr := svc.Apply(presentations, enrollments, sel)
	require.Len(t, keptPres, 1)
	require.Equal(t, int64(1), keptPres[0].PresentationID)
	require.Len(t, keptEnr, 1)
	require.Equal(t, int64(11), keptEnr[0].EnrollmentID)
}

func TestScopeServiceIdempotent(t *testing.T) {
	svc := NewScopeService()
	presentations, enrollments := scopeFixture()
	sel := models.ScopeSelection{Semesters: []string{"Fall 2024"}}

	oncePres, onceEnr := svc.Apply(presentations, enrollments, sel)
	twicePres, twiceEnr := svc.Apply(oncePres, onceEnr, sel)
	require.Equal(t, oncePres, twicePres)
	require.Equal(t, onceEnr, twiceEnr)
}

func TestScopeServiceEmptyPresentationsYieldEmpty(t *testing.T) {
	svc := NewScopeService()
	_, enrollments := scopeFixture()

	keptPres, keptEnr := svc.Apply(nil, enrollments, models.ScopeSelection{Semesters: []string{"Fall 2024"}})
	require.Empty(t, keptPres)
	require.Empty(t, keptEnr)

	keptPres, keptEnr = svc.Apply(nil, enrollments, models.ScopeSelection{})
	require.Empty(t, keptPres)
	require.Empty(t, keptEnr)
}

func TestScopeServiceUnknownSelectionYieldsEmpty(t *testing.T) {
	svc := NewScopeService()
	presentations, enrollments := scopeFixture()

	keptPres, keptEnr := svc.Apply(presentations, enrollments, models.ScopeSelection{Semesters: []string{"Winter 1999"}})
	require.Empty(t, keptPres)
	require.Empty(t, keptEnr)
}
