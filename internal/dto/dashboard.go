package dto

import (
	"github.com/noah-isme/vle-dashboard-api/internal/models"
)

// LabelCount is a generic bucket used by the distribution charts. Label is
// "unknown" when the underlying attribute is null.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OverviewResponse backs the overview page: entity totals and the
// distribution charts, all computed within the active filter scope.
type OverviewResponse struct {
	Students    int `json:"students"`
	Classes     int `json:"classes"`
	Modules     int `json:"modules"`
	Instructors int `json:"instructors"`

	StudentsByModule     []models.ModuleCount `json:"students_by_module"`
	StudentsBySemester   []LabelCount         `json:"students_by_semester"`
	StudentsByInstructor []LabelCount         `json:"students_by_instructor"`
	RegionDistribution   []LabelCount         `json:"region_distribution"`
	GenderDistribution   []LabelCount         `json:"gender_distribution"`

	MedianAge  *float64 `json:"median_age,omitempty"`
	AverageAge *float64 `json:"average_age,omitempty"`

	AvgClicksPerStudent *float64 `json:"avg_clicks_per_student,omitempty"`
	TotalClicks         int64    `json:"total_clicks"`
}

// AssessmentCompletion counts submitted vs missing rosters per assessment.
type AssessmentCompletion struct {
	AssessmentID   int64  `json:"assessment_id"`
	AssessmentName string `json:"assessment_name"`
	Submitted      int    `json:"submitted"`
	Missing        int    `json:"missing"`
}

// SubmissionStatus is one cell of the per-student submission matrix.
type SubmissionStatus struct {
	AssessmentID   int64  `json:"assessment_id"`
	AssessmentName string `json:"assessment_name"`
	Submitted      bool   `json:"submitted"`
}

// AssessmentScoreRecord is one submitted score on the class page, joined to
// the student and the assessment definition. It backs the class score
// distribution and the score-versus-weight view; unsubmitted assessments
// never appear here, the submission matrix covers those.
type AssessmentScoreRecord struct {
	EnrollmentID   int64   `json:"enrollment_id"`
	StudentName    string  `json:"student_name"`
	AssessmentID   int64   `json:"assessment_id"`
	AssessmentName string  `json:"assessment_name"`
	Weight         float64 `json:"weight"`
	Score          float64 `json:"score"`
}

// StudentSubmissions is one row of the per-student submission matrix.
type StudentSubmissions struct {
	EnrollmentID int64              `json:"enrollment_id"`
	StudentName  string             `json:"student_name"`
	Statuses     []SubmissionStatus `json:"statuses"`
}

// ClassDetailResponse backs the class drill-down page.
type ClassDetailResponse struct {
	Presentation models.Presentation     `json:"presentation"`
	Roster       []models.ClassEnrollment `json:"roster"`

	AvgFinalScore  *float64 `json:"avg_final_score,omitempty"`
	PassRate       *float64 `json:"pass_rate,omitempty"`
	AvgTotalClicks *float64 `json:"avg_total_clicks,omitempty"`

	FinalScores        []models.FinalScore    `json:"final_scores"`
	ResultDistribution []models.ResultCount   `json:"result_distribution"`
	Timeline           []models.TimelinePoint `json:"timeline"`

	Assessments      []models.Assessment     `json:"assessments"`
	Completion       []AssessmentCompletion  `json:"completion"`
	SubmissionMatrix []StudentSubmissions    `json:"submission_matrix"`
	SubmittedScores  []AssessmentScoreRecord `json:"submitted_scores"`
}

// StudentEnrollment is one enrollment of the profiled student joined to its
// presentation metadata.
type StudentEnrollment struct {
	EnrollmentID   int64   `json:"enrollment_id"`
	PresentationID int64   `json:"presentation_id"`
	ModuleCode     string  `json:"module_code"`
	ModuleName     string  `json:"module_name"`
	Semester       string  `json:"semester"`
	Year           int     `json:"year"`
	FinalResult    *string `json:"final_result,omitempty"`
	StudiedCredits *int    `json:"studied_credits,omitempty"`
}

// StudentDetailResponse backs the student profile page.
type StudentDetailResponse struct {
	Student     models.Student      `json:"student"`
	Age         *int                `json:"age,omitempty"`
	Enrollments []StudentEnrollment `json:"enrollments"`
}

// EnrollmentActivityResponse summarises one enrollment's engagement:
// the raw activity timeline plus the derived engagement metrics and the
// score-versus-clicks pairing.
type EnrollmentActivityResponse struct {
	EnrollmentID      int64                `json:"enrollment_id"`
	TotalClicks       int64                `json:"total_clicks"`
	ActiveDays        int                  `json:"active_days"`
	EngagementPerWeek *float64             `json:"engagement_per_week,omitempty"`
	FinalScore        *float64             `json:"final_score,omitempty"`
	Timeline          []models.VLEActivity `json:"timeline"`
}

// GroupScoreStats aggregates final scores over one demographic bucket.
type GroupScoreStats struct {
	Group        string  `json:"group"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"average_score"`
}

// SemesterTrend tracks enrolled vs withdrawn counts for one semester label.
type SemesterTrend struct {
	Label     string `json:"label"`
	Enrolled  int    `json:"enrolled"`
	Withdrawn int    `json:"withdrawn"`
}

// AnalyticsResponse backs the cross-cutting analytics page.
type AnalyticsResponse struct {
	Correlation   *float64          `json:"correlation,omitempty"`
	SampleSize    int               `json:"sample_size"`
	ScoreByGender []GroupScoreStats `json:"score_by_gender"`
	ScoreByRegion []GroupScoreStats `json:"score_by_region"`
	Trend         []SemesterTrend   `json:"trend"`
}

// InstructorClassStats carries per-class quality metrics for one instructor.
type InstructorClassStats struct {
	PresentationID int64    `json:"presentation_id"`
	ModuleCode     string   `json:"module_code"`
	Semester       string   `json:"semester"`
	Year           int      `json:"year"`
	AvgFinalScore  *float64 `json:"avg_final_score,omitempty"`
	PassRate       *float64 `json:"pass_rate,omitempty"`
}

// InstructorResponse backs the instructor page.
type InstructorResponse struct {
	InstructorName string                 `json:"instructor_name"`
	Classes        []models.Presentation  `json:"classes"`
	ClassStats     []InstructorClassStats `json:"class_stats"`
	ClassCount     int                    `json:"class_count"`
	AvgFinalScore  *float64               `json:"avg_final_score,omitempty"`
	AvgPassRate    *float64               `json:"avg_pass_rate,omitempty"`
}
