package models

// Assessment is a graded component of a presentation. Weights are not
// validated to sum to any total; the weighted final score normalises by the
// sum of weights actually submitted.
type Assessment struct {
	AssessmentID   int64   `db:"assessment_id" json:"assessment_id"`
	AssessmentName string  `db:"assessment_name" json:"assessment_name"`
	Weight         float64 `db:"weight" json:"weight"`
}

// StudentScore is one submitted score joined to its assessment definition.
type StudentScore struct {
	StudentAssessmentID int64   `db:"student_assessment_id" json:"student_assessment_id"`
	AssessmentID        int64   `db:"assessment_id" json:"assessment_id"`
	AssessmentName      string  `db:"assessment_name" json:"assessment_name"`
	Score               float64 `db:"score" json:"score"`
	Weight              float64 `db:"weight" json:"weight"`
}

// AssessmentScore is the left-join row powering the completion view: every
// assessment of the enrollment's presentation, with Score nil when no
// submission exists.
type AssessmentScore struct {
	AssessmentID   int64    `db:"assessment_id" json:"assessment_id"`
	AssessmentName string   `db:"assessment_name" json:"assessment_name"`
	Weight         float64  `db:"weight" json:"weight"`
	Score          *float64 `db:"score" json:"score,omitempty"`
}

// Submitted reports whether a score row exists for the assessment.
func (a AssessmentScore) Submitted() bool {
	return a.Score != nil
}
