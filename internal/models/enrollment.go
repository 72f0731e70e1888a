package models

// Final result categories observed in enrollment.final_result. Matching is
// always case-insensitive; the column is free text in the source data.
const (
	ResultPass        = "pass"
	ResultDistinction = "distinction"
	ResultWithdrawn   = "withdrawn"
)

// Enrollment is the bare link between one student and one presentation.
// FinalResult stays nil until the outcome is determined.
type Enrollment struct {
	EnrollmentID   int64   `db:"enrollment_id" json:"enrollment_id"`
	PresentationID int64   `db:"presentation_id" json:"presentation_id"`
	StudentID      int64   `db:"student_id" json:"student_id"`
	FinalResult    *string `db:"final_result" json:"final_result,omitempty"`
	StudiedCredits *int    `db:"studied_credits" json:"studied_credits,omitempty"`
}

// ClassEnrollment is the per-presentation roster row: enrollment joined to the
// student account. Enrollments whose account row is missing or not a student
// are dropped by the join; AuditOrphanEnrollments counts them.
type ClassEnrollment struct {
	EnrollmentID   int64   `db:"enrollment_id" json:"enrollment_id"`
	PresentationID int64   `db:"presentation_id" json:"presentation_id"`
	StudentID      int64   `db:"student_id" json:"student_id"`
	Name           string  `db:"name" json:"name"`
	StudiedCredits *int    `db:"studied_credits" json:"studied_credits,omitempty"`
	FinalResult    *string `db:"final_result" json:"final_result,omitempty"`
}
