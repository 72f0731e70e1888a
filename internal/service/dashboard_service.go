package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/vle-dashboard-api/internal/dto"
	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
)

// CatalogProvider serves the base entity fetchers the pages start from.
type CatalogProvider interface {
	Students(ctx context.Context) ([]models.Student, error)
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Presentations(ctx context.Context) ([]models.Presentation, error)
}

// EnrollmentProvider serves enrollment projections.
type EnrollmentProvider interface {
	ByPresentation(ctx context.Context, presentationID int64) ([]models.ClassEnrollment, error)
	All(ctx context.Context) ([]models.Enrollment, error)
}

// AssessmentProvider serves assessment definitions and submitted scores.
type AssessmentProvider interface {
	ByPresentation(ctx context.Context, presentationID int64) ([]models.Assessment, error)
	ScoresByEnrollment(ctx context.Context, enrollmentID int64) ([]models.StudentScore, error)
}

// ActivityProvider serves raw learning-activity events.
type ActivityProvider interface {
	ActivityByEnrollment(ctx context.Context, enrollmentID int64) ([]models.VLEActivity, error)
}

// AggregationProvider is the cached aggregation surface the pages compose
// from. *AnalyticsService satisfies it.
type AggregationProvider interface {
	FinalScores(ctx context.Context, presentationID *int64) ([]models.FinalScore, bool, error)
	TotalClicks(ctx context.Context, presentationID *int64) ([]models.TotalClicks, bool, error)
	ResultDistribution(ctx context.Context, presentationID int64) ([]models.ResultCount, bool, error)
	Timeline(ctx context.Context, presentationID int64) ([]models.TimelinePoint, bool, error)
	AssessmentScores(ctx context.Context, enrollmentID int64) ([]models.AssessmentScore, bool, error)
	ModuleCounts(ctx context.Context) ([]models.ModuleCount, bool, error)
}

// DashboardService composes the page views from catalog fetches and cached
// aggregations. Composition is pure: it never issues writes and produces the
// same view for the same inputs. The heavier pages (overview, class detail,
// analytics) are additionally cached as whole responses.
type DashboardService struct {
	catalog      CatalogProvider
	enrollments  EnrollmentProvider
	assessments  AssessmentProvider
	activity     ActivityProvider
	aggregations AggregationProvider
	scope        *ScopeService
	cache        *CacheService
	cacheTTL     time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(
	catalog CatalogProvider,
	enrollments EnrollmentProvider,
	assessments AssessmentProvider,
	activity ActivityProvider,
	aggregations AggregationProvider,
	scope *ScopeService,
	cache *CacheService,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		catalog:      catalog,
		enrollments:  enrollments,
		assessments:  assessments,
		activity:     activity,
		aggregations: aggregations,
		scope:        scope,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Overview builds the landing page: entity totals, distribution charts and
// engagement KPIs, all restricted to the active filter scope.
func (s *DashboardService) Overview(ctx context.Context, sel models.ScopeSelection) (*dto.OverviewResponse, bool, error) {
	cacheKey := dashKey("overview", scopeKey(sel))
	var cached dto.OverviewResponse
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err != nil {
		return nil, false, err
	} else if hit {
		return &cached, true, nil
	}

	students, err := s.catalog.Students(ctx)
	if err != nil {
		return nil, false, err
	}
	instructors, err := s.catalog.Instructors(ctx)
	if err != nil {
		return nil, false, err
	}
	presentations, err := s.catalog.Presentations(ctx)
	if err != nil {
		return nil, false, err
	}
	enrollments, err := s.enrollments.All(ctx)
	if err != nil {
		return nil, false, err
	}

	scopedPres, scopedEnr := s.scope.Apply(presentations, enrollments, sel)
	presByID := presentationIndex(scopedPres)

	// Demographics cover every student when the scope is unrestricted,
	// otherwise only students holding at least one in-scope enrollment.
	considered := students
	if !sel.All() {
		inScope := make(map[int64]struct{}, len(scopedEnr))
		for _, e := range scopedEnr {
			inScope[e.StudentID] = struct{}{}
		}
		considered = considered[:0:0]
		for _, st := range students {
			if _, ok := inScope[st.StudentID]; ok {
				considered = append(considered, st)
			}
		}
	}

	resp := &dto.OverviewResponse{
		Students:    len(considered),
		Classes:     len(scopedPres),
		Instructors: len(instructors),
	}

	modules := make(map[string]struct{}, len(scopedPres))
	for _, p := range scopedPres {
		modules[p.ModuleCode] = struct{}{}
	}
	resp.Modules = len(modules)

	if sel.All() {
		moduleCounts, _, err := s.aggregations.ModuleCounts(ctx)
		if err != nil {
			return nil, false, err
		}
		resp.StudentsByModule = moduleCounts
	} else {
		resp.StudentsByModule = moduleCountsFromScope(scopedPres, scopedEnr)
	}

	bySemester := make(map[string]int)
	byInstructor := make(map[string]int)
	for _, e := range scopedEnr {
		p, ok := presByID[e.PresentationID]
		if !ok {
			continue
		}
		bySemester[p.SemesterLabel()]++
		byInstructor[p.InstructorName]++
	}
	resp.StudentsBySemester = labelCounts(bySemester, byLabel)
	resp.StudentsByInstructor = labelCounts(byInstructor, byLabel)

	regions := make(map[string]int)
	genders := make(map[string]int)
	var ages []float64
	today := s.now()
	for _, st := range considered {
		regions[labelOrUnknown(st.Region)]++
		genders[labelOrUnknown(st.Gender)]++
		if st.DateOfBirth != nil {
			ages = append(ages, float64(ageYears(*st.DateOfBirth, today)))
		}
	}
	resp.RegionDistribution = labelCounts(regions, byCountDesc)
	resp.GenderDistribution = labelCounts(genders, byCountDesc)
	resp.MedianAge = medianFloat(ages)
	resp.AverageAge = meanFloat(ages)

	clicks, _, err := s.aggregations.TotalClicks(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	studentByEnrollment := make(map[int64]int64, len(scopedEnr))
	for _, e := range scopedEnr {
		studentByEnrollment[e.EnrollmentID] = e.StudentID
	}
	perStudent := make(map[int64]int64)
	for _, c := range clicks {
		studentID, ok := studentByEnrollment[c.EnrollmentID]
		if !ok {
			continue
		}
		resp.TotalClicks += c.TotalClicks
		perStudent[studentID] += c.TotalClicks
	}
	if len(perStudent) > 0 {
		sums := make([]float64, 0, len(perStudent))
		for _, total := range perStudent {
			sums = append(sums, float64(total))
		}
		resp.AvgClicksPerStudent = meanFloat(sums)
	}

	s.cachePut(ctx, cacheKey, resp)
	return resp, false, nil
}

// ClassDetail builds the drill-down for one presentation: roster, score and
// engagement KPIs, result distribution, activity timeline and the assessment
// completion view.
func (s *DashboardService) ClassDetail(ctx context.Context, presentationID int64) (*dto.ClassDetailResponse, bool, error) {
	cacheKey := dashKey("class", strconv.FormatInt(presentationID, 10))
	var cached dto.ClassDetailResponse
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err != nil {
		return nil, false, err
	} else if hit {
		return &cached, true, nil
	}

	presentations, err := s.catalog.Presentations(ctx)
	if err != nil {
		return nil, false, err
	}
	presentation, ok := findPresentation(presentations, presentationID)
	if !ok {
		return nil, false, appErrors.Clone(appErrors.ErrNotFound, "presentation not found")
	}

	roster, err := s.enrollments.ByPresentation(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}

	scores, _, err := s.aggregations.FinalScores(ctx, &presentationID)
	if err != nil {
		return nil, false, err
	}
	clicks, _, err := s.aggregations.TotalClicks(ctx, &presentationID)
	if err != nil {
		return nil, false, err
	}
	distribution, _, err := s.aggregations.ResultDistribution(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}
	timeline, _, err := s.aggregations.Timeline(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}
	assessments, err := s.assessments.ByPresentation(ctx, presentationID)
	if err != nil {
		return nil, false, err
	}

	resp := &dto.ClassDetailResponse{
		Presentation:       presentation,
		Roster:             roster,
		FinalScores:        scores,
		ResultDistribution: distribution,
		Timeline:           timeline,
		Assessments:        assessments,
	}

	resp.AvgFinalScore = meanFloat(scoreValues(scores))
	resp.AvgTotalClicks = meanFloat(clickValues(clicks))

	results := make([]*string, 0, len(roster))
	for _, e := range roster {
		results = append(results, e.FinalResult)
	}
	resp.PassRate = passRate(results)

	completion := make(map[int64]*dto.AssessmentCompletion, len(assessments))
	for _, a := range assessments {
		completion[a.AssessmentID] = &dto.AssessmentCompletion{
			AssessmentID:   a.AssessmentID,
			AssessmentName: a.AssessmentName,
		}
	}
	matrix := make([]dto.StudentSubmissions, 0, len(roster))
	submitted := make([]dto.AssessmentScoreRecord, 0, len(roster))
	for _, e := range roster {
		rows, _, err := s.aggregations.AssessmentScores(ctx, e.EnrollmentID)
		if err != nil {
			return nil, false, err
		}
		statuses := make([]dto.SubmissionStatus, 0, len(rows))
		for _, row := range rows {
			hasScore := row.Submitted()
			statuses = append(statuses, dto.SubmissionStatus{
				AssessmentID:   row.AssessmentID,
				AssessmentName: row.AssessmentName,
				Submitted:      hasScore,
			})
			if c, ok := completion[row.AssessmentID]; ok {
				if hasScore {
					c.Submitted++
				} else {
					c.Missing++
				}
			}
		}
		matrix = append(matrix, dto.StudentSubmissions{
			EnrollmentID: e.EnrollmentID,
			StudentName:  e.Name,
			Statuses:     statuses,
		})

		studentScores, err := s.assessments.ScoresByEnrollment(ctx, e.EnrollmentID)
		if err != nil {
			return nil, false, err
		}
		for _, sc := range studentScores {
			submitted = append(submitted, dto.AssessmentScoreRecord{
				EnrollmentID:   e.EnrollmentID,
				StudentName:    e.Name,
				AssessmentID:   sc.AssessmentID,
				AssessmentName: sc.AssessmentName,
				Weight:         sc.Weight,
				Score:          sc.Score,
			})
		}
	}
	resp.SubmissionMatrix = matrix
	resp.SubmittedScores = submitted
	resp.Completion = make([]dto.AssessmentCompletion, 0, len(assessments))
	for _, a := range assessments {
		resp.Completion = append(resp.Completion, *completion[a.AssessmentID])
	}

	s.cachePut(ctx, cacheKey, resp)
	return resp, false, nil
}

// StudentDetail builds the profile for one student: demographics, derived age
// and the in-scope enrollment history joined to presentation metadata.
func (s *DashboardService) StudentDetail(ctx context.Context, studentID int64, sel models.ScopeSelection) (*dto.StudentDetailResponse, error) {
	students, err := s.catalog.Students(ctx)
	if err != nil {
		return nil, err
	}
	var student *models.Student
	for i := range students {
		if students[i].StudentID == studentID {
			student = &students[i]
			break
		}
	}
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	resp := &dto.StudentDetailResponse{Student: *student}
	if student.DateOfBirth != nil {
		age := ageYears(*student.DateOfBirth, s.now())
		resp.Age = &age
	}

	presentations, err := s.catalog.Presentations(ctx)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.All(ctx)
	if err != nil {
		return nil, err
	}
	scopedPres, scopedEnr := s.scope.Apply(presentations, enrollments, sel)
	presByID := presentationIndex(scopedPres)

	resp.Enrollments = make([]dto.StudentEnrollment, 0)
	for _, e := range scopedEnr {
		if e.StudentID != studentID {
			continue
		}
		p, ok := presByID[e.PresentationID]
		if !ok {
			continue
		}
		resp.Enrollments = append(resp.Enrollments, dto.StudentEnrollment{
			EnrollmentID:   e.EnrollmentID,
			PresentationID: p.PresentationID,
			ModuleCode:     p.ModuleCode,
			ModuleName:     p.ModuleName,
			Semester:       p.Semester,
			Year:           p.Year,
			FinalResult:    e.FinalResult,
			StudiedCredits: e.StudiedCredits,
		})
	}
	return resp, nil
}

// EnrollmentActivity builds the engagement view for one enrollment: raw
// timeline, click and active-day totals, the per-week engagement rate and the
// weighted final score when one exists.
func (s *DashboardService) EnrollmentActivity(ctx context.Context, enrollmentID int64) (*dto.EnrollmentActivityResponse, error) {
	timeline, err := s.activity.ActivityByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.EnrollmentActivityResponse{
		EnrollmentID: enrollmentID,
		Timeline:     timeline,
	}
	days := make(map[string]struct{})
	for _, a := range timeline {
		resp.TotalClicks += a.Clicks
		days[a.ActivityDate.Format("2006-01-02")] = struct{}{}
	}
	resp.ActiveDays = len(days)
	if len(timeline) > 0 {
		rate := engagementPerWeek(resp.TotalClicks, resp.ActiveDays)
		resp.EngagementPerWeek = &rate
	}

	scores, _, err := s.aggregations.FinalScores(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, sc := range scores {
		if sc.EnrollmentID == enrollmentID {
			score := sc.FinalScore
			resp.FinalScore = &score
			break
		}
	}
	return resp, nil
}

// Analytics builds the cross-cutting page: clicks-versus-score correlation,
// score statistics per demographic bucket and the enrollment trend per
// semester, all restricted to the active filter scope.
func (s *DashboardService) Analytics(ctx context.Context, sel models.ScopeSelection) (*dto.AnalyticsResponse, bool, error) {
	cacheKey := dashKey("analytics", scopeKey(sel))
	var cached dto.AnalyticsResponse
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err != nil {
		return nil, false, err
	} else if hit {
		return &cached, true, nil
	}

	presentations, err := s.catalog.Presentations(ctx)
	if err != nil {
		return nil, false, err
	}
	enrollments, err := s.enrollments.All(ctx)
	if err != nil {
		return nil, false, err
	}
	scopedPres, scopedEnr := s.scope.Apply(presentations, enrollments, sel)
	scopedIDs := s.scope.PresentationIDs(scopedPres)

	allScores, _, err := s.aggregations.FinalScores(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	allClicks, _, err := s.aggregations.TotalClicks(ctx, nil)
	if err != nil {
		return nil, false, err
	}

	scores := allScores[:0:0]
	for _, sc := range allScores {
		if _, ok := scopedIDs[sc.PresentationID]; ok {
			scores = append(scores, sc)
		}
	}
	clicksByEnrollment := make(map[int64]int64, len(allClicks))
	for _, c := range allClicks {
		if _, ok := scopedIDs[c.PresentationID]; ok {
			clicksByEnrollment[c.EnrollmentID] = c.TotalClicks
		}
	}

	// Correlation pairs require both a score and a click total; enrollments
	// missing either side are excluded rather than zero-filled.
	var xs, ys []float64
	for _, sc := range scores {
		clicks, ok := clicksByEnrollment[sc.EnrollmentID]
		if !ok {
			continue
		}
		xs = append(xs, float64(clicks))
		ys = append(ys, sc.FinalScore)
	}
	resp := &dto.AnalyticsResponse{
		Correlation: pearson(xs, ys),
		SampleSize:  len(xs),
	}

	students, err := s.catalog.Students(ctx)
	if err != nil {
		return nil, false, err
	}
	studentByID := make(map[int64]models.Student, len(students))
	for _, st := range students {
		studentByID[st.StudentID] = st
	}
	byGender := make(map[string][]float64)
	byRegion := make(map[string][]float64)
	for _, sc := range scores {
		st, ok := studentByID[sc.StudentID]
		if !ok {
			continue
		}
		byGender[labelOrUnknown(st.Gender)] = append(byGender[labelOrUnknown(st.Gender)], sc.FinalScore)
		byRegion[labelOrUnknown(st.Region)] = append(byRegion[labelOrUnknown(st.Region)], sc.FinalScore)
	}
	resp.ScoreByGender = groupStats(byGender)
	resp.ScoreByRegion = groupStats(byRegion)

	resp.Trend = semesterTrend(scopedPres, scopedEnr)

	s.cachePut(ctx, cacheKey, resp)
	return resp, false, nil
}

// Instructor builds the per-instructor page: the instructor's classes within
// the active scope and per-class quality metrics.
func (s *DashboardService) Instructor(ctx context.Context, name string, sel models.ScopeSelection) (*dto.InstructorResponse, error) {
	instructors, err := s.catalog.Instructors(ctx)
	if err != nil {
		return nil, err
	}
	known := false
	for _, inst := range instructors {
		if inst.Name == name {
			known = true
			break
		}
	}
	if !known {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}

	presentations, err := s.catalog.Presentations(ctx)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.All(ctx)
	if err != nil {
		return nil, err
	}
	scopedPres, scopedEnr := s.scope.Apply(presentations, enrollments, sel)

	classes := make([]models.Presentation, 0)
	for _, p := range scopedPres {
		if p.InstructorName == name {
			classes = append(classes, p)
		}
	}

	allScores, _, err := s.aggregations.FinalScores(ctx, nil)
	if err != nil {
		return nil, err
	}
	scoresByPres := make(map[int64][]float64)
	for _, sc := range allScores {
		scoresByPres[sc.PresentationID] = append(scoresByPres[sc.PresentationID], sc.FinalScore)
	}
	resultsByPres := make(map[int64][]*string)
	for _, e := range scopedEnr {
		resultsByPres[e.PresentationID] = append(resultsByPres[e.PresentationID], e.FinalResult)
	}

	resp := &dto.InstructorResponse{
		InstructorName: name,
		Classes:        classes,
		ClassCount:     len(classes),
	}
	var classAvgs []float64
	var classRates []float64
	resp.ClassStats = make([]dto.InstructorClassStats, 0, len(classes))
	for _, class := range classes {
		stats := dto.InstructorClassStats{
			PresentationID: class.PresentationID,
			ModuleCode:     class.ModuleCode,
			Semester:       class.Semester,
			Year:           class.Year,
		}
		stats.AvgFinalScore = meanFloat(scoresByPres[class.PresentationID])
		stats.PassRate = passRate(resultsByPres[class.PresentationID])
		if stats.AvgFinalScore != nil {
			classAvgs = append(classAvgs, *stats.AvgFinalScore)
		}
		// Classes without graded enrollments drag the instructor rate to
		// zero instead of vanishing from it.
		if stats.PassRate != nil {
			classRates = append(classRates, *stats.PassRate)
		} else {
			classRates = append(classRates, 0)
		}
		resp.ClassStats = append(resp.ClassStats, stats)
	}
	resp.AvgFinalScore = meanFloat(classAvgs)
	if len(classes) > 0 {
		resp.AvgPassRate = meanFloat(classRates)
	}
	return resp, nil
}

func (s *DashboardService) cacheGet(ctx context.Context, key string, dest interface{}) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		return false, fmt.Errorf("get dashboard cache: %w", err)
	}
	return hit, nil
}

func (s *DashboardService) cachePut(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("cache dashboard page", zap.String("key", key), zap.Error(err))
	}
}

type labelCountOrder int

const (
	byLabel labelCountOrder = iota
	byCountDesc
)

func labelCounts(counts map[string]int, order labelCountOrder) []dto.LabelCount {
	out := make([]dto.LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, dto.LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if order == byCountDesc && out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func groupStats(groups map[string][]float64) []dto.GroupScoreStats {
	out := make([]dto.GroupScoreStats, 0, len(groups))
	for group, values := range groups {
		avg := meanFloat(values)
		if avg == nil {
			continue
		}
		out = append(out, dto.GroupScoreStats{
			Group:        group,
			Count:        len(values),
			AverageScore: *avg,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}

func semesterTrend(presentations []models.Presentation, enrollments []models.Enrollment) []dto.SemesterTrend {
	type semesterKey struct {
		year     int
		semester string
	}
	keyByPres := make(map[int64]semesterKey, len(presentations))
	ordered := make([]semesterKey, 0, len(presentations))
	seen := make(map[semesterKey]struct{}, len(presentations))
	for _, p := range presentations {
		k := semesterKey{year: p.Year, semester: p.Semester}
		keyByPres[p.PresentationID] = k
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			ordered = append(ordered, k)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].year != ordered[j].year {
			return ordered[i].year < ordered[j].year
		}
		return ordered[i].semester < ordered[j].semester
	})

	trend := make(map[semesterKey]*dto.SemesterTrend, len(ordered))
	for _, k := range ordered {
		trend[k] = &dto.SemesterTrend{Label: fmt.Sprintf("%s %d", k.semester, k.year)}
	}
	for _, e := range enrollments {
		k, ok := keyByPres[e.PresentationID]
		if !ok {
			continue
		}
		t := trend[k]
		t.Enrolled++
		if e.FinalResult != nil && strings.EqualFold(*e.FinalResult, models.ResultWithdrawn) {
			t.Withdrawn++
		}
	}

	out := make([]dto.SemesterTrend, 0, len(ordered))
	for _, k := range ordered {
		out = append(out, *trend[k])
	}
	return out
}

// moduleCountsFromScope mirrors the global students-by-module aggregation over
// an already filtered working set, so the overview chart honours the active
// selection. Ordering matches the SQL shape: count DESC, module code ASC.
func moduleCountsFromScope(presentations []models.Presentation, enrollments []models.Enrollment) []models.ModuleCount {
	codeByPres := make(map[int64]string, len(presentations))
	for _, p := range presentations {
		codeByPres[p.PresentationID] = p.ModuleCode
	}
	counts := make(map[string]int, len(codeByPres))
	for _, e := range enrollments {
		if code, ok := codeByPres[e.PresentationID]; ok {
			counts[code]++
		}
	}
	out := make([]models.ModuleCount, 0, len(counts))
	for code, n := range counts {
		out = append(out, models.ModuleCount{ModuleCode: code, StudentCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentCount != out[j].StudentCount {
			return out[i].StudentCount > out[j].StudentCount
		}
		return out[i].ModuleCode < out[j].ModuleCode
	})
	return out
}

func presentationIndex(presentations []models.Presentation) map[int64]models.Presentation {
	index := make(map[int64]models.Presentation, len(presentations))
	for _, p := range presentations {
		index[p.PresentationID] = p
	}
	return index
}

func findPresentation(presentations []models.Presentation, id int64) (models.Presentation, bool) {
	for _, p := range presentations {
		if p.PresentationID == id {
			return p, true
		}
	}
	return models.Presentation{}, false
}

func scoreValues(scores []models.FinalScore) []float64 {
	values := make([]float64, 0, len(scores))
	for _, s := range scores {
		values = append(values, s.FinalScore)
	}
	return values
}

func clickValues(clicks []models.TotalClicks) []float64 {
	values := make([]float64, 0, len(clicks))
	for _, c := range clicks {
		values = append(values, float64(c.TotalClicks))
	}
	return values
}

func labelOrUnknown(value *string) string {
	if value == nil || *value == "" {
		return "unknown"
	}
	return *value
}

// dashKey builds a composed-page cache key, "dash:" prefixed to keep the page
// namespace disjoint from the "agg:" aggregation namespace.
func dashKey(parts ...string) string {
	var builder strings.Builder
	builder.WriteString("dash")
	for _, part := range parts {
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}

// scopeKey renders a filter selection deterministically: sorted values so two
// equal selections always share a cache entry.
func scopeKey(sel models.ScopeSelection) string {
	if sel.All() {
		return "all"
	}
	semesters := append([]string(nil), sel.Semesters...)
	instructors := append([]string(nil), sel.Instructors...)
	sort.Strings(semesters)
	sort.Strings(instructors)
	return "s=" + strings.Join(semesters, ",") + ";i=" + strings.Join(instructors, ",")
}
