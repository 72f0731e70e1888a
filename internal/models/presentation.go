package models

import "fmt"

// Presentation is one teaching instance of a course module in a given
// semester/year, joined to its module and instructor account.
type Presentation struct {
	PresentationID int64  `db:"presentation_id" json:"presentation_id"`
	Semester       string `db:"semester" json:"semester"`
	Year           int    `db:"year" json:"year"`
	ModuleCode     string `db:"module_code" json:"module_code"`
	ModuleName     string `db:"module_name" json:"module_name"`
	InstructorName string `db:"instructor_name" json:"instructor_name"`
	InstructorID   int64  `db:"instructor_id" json:"instructor_id"`
}

// SemesterLabel renders the "<semester> <year>" label used by the global
// semester filter and the per-semester groupings.
func (p Presentation) SemesterLabel() string {
	return fmt.Sprintf("%s %d", p.Semester, p.Year)
}
