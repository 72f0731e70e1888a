package models

import "time"

// FinalScore is the weighted average of submitted scores for one enrollment.
// Enrollments with zero submissions never appear: the aggregation excludes
// them rather than reporting zero, which keeps downstream averages and pass
// rates honest about partial completion.
type FinalScore struct {
	EnrollmentID   int64   `db:"enrollment_id" json:"enrollment_id"`
	PresentationID int64   `db:"presentation_id" json:"presentation_id"`
	StudentID      int64   `db:"student_id" json:"student_id"`
	FinalScore     float64 `db:"final_score" json:"final_score"`
}

// TotalClicks is the summed VLE activity per enrollment. Every enrollment in
// scope gets a row, defaulting to zero with no activity.
type TotalClicks struct {
	EnrollmentID   int64 `db:"enrollment_id" json:"enrollment_id"`
	PresentationID int64 `db:"presentation_id" json:"presentation_id"`
	TotalClicks    int64 `db:"total_clicks" json:"total_clicks"`
}

// ResultCount is one bucket of the final-result distribution. FinalResult is
// nil for enrollments whose outcome is not yet determined.
type ResultCount struct {
	FinalResult *string `db:"final_result" json:"final_result"`
	Count       int     `db:"cnt" json:"count"`
}

// TimelinePoint is the average of per-enrollment clicks on one calendar date.
type TimelinePoint struct {
	ActivityDate time.Time `db:"activity_date" json:"activity_date"`
	AvgClicks    float64   `db:"avg_clicks" json:"avg_clicks"`
}

// ModuleCount is the enrollment count for one module code.
type ModuleCount struct {
	ModuleCode   string `db:"module_code" json:"module_code"`
	StudentCount int    `db:"student_count" json:"student_count"`
}

// ScopeSelection carries the global semester/instructor filter selections.
// An empty slice means "all" for that dimension. Selections are always passed
// explicitly; there is no ambient filter state.
type ScopeSelection struct {
	Semesters   []string `json:"semesters"`
	Instructors []string `json:"instructors"`
}

// All reports whether the selection restricts nothing.
func (s ScopeSelection) All() bool {
	return len(s.Semesters) == 0 && len(s.Instructors) == 0
}

// SystemMetrics represents system level analytics captured from instrumentation.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
