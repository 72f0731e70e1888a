package service

import (
	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// ScopeService implements the global semester/instructor filter. Every page
// derives its working set by intersecting the base presentation and
// enrollment tables with the active selection before any other computation,
// so every downstream count and KPI reflects the filter scope.
type ScopeService struct{}

// NewScopeService constructs a ScopeService.
func NewScopeService() *ScopeService {
	return &ScopeService{}
}

// Apply retains presentations whose semester label is selected AND whose
// instructor is selected, then retains only enrollments belonging to a
// surviving presentation. An empty selection for either dimension means
// "all". Empty presentation input yields empty output for both tables: with
// nothing to retain, no enrollment can belong to a surviving presentation.
// Applying the same selection twice is a no-op.
func (s *ScopeService) Apply(presentations []models.Presentation, enrollments []models.Enrollment, sel models.ScopeSelection) ([]models.Presentation, []models.Enrollment) {
	semesters := toSet(sel.Semesters)
	instructors := toSet(sel.Instructors)

	kept := make([]models.Presentation, 0, len(presentations))
	keptIDs := make(map[int64]struct{}, len(presentations))
	for _, p := range presentations {
		if semesters != nil {
			if _, ok := semesters[p.SemesterLabel()]; !ok {
				continue
			}
		}
		if instructors != nil {
			if _, ok := instructors[p.InstructorName]; !ok {
				continue
			}
		}
		kept = append(kept, p)
		keptIDs[p.PresentationID] = struct{}{}
	}

	if enrollments == nil {
		return kept, nil
	}
	keptEnrollments := make([]models.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if _, ok := keptIDs[e.PresentationID]; ok {
			keptEnrollments = append(keptEnrollments, e)
		}
	}
	return kept, keptEnrollments
}

// PresentationIDs returns the id set of the provided presentations, the shape
// most downstream intersections want.
func (s *ScopeService) PresentationIDs(presentations []models.Presentation) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(presentations))
	for _, p := range presentations {
		ids[p.PresentationID] = struct{}{}
	}
	return ids
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
