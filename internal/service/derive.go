package service

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Derived-metric helpers shared by the page composition code. All of them
// return nil (not zero) when the input cannot support the computation, so
// callers render "undisplayable" rather than a misleading 0.

func meanFloat(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

func medianFloat(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		m = sorted[mid]
	}
	return &m
}

// passRate returns the percentage of results that are a passing category,
// case-insensitively. Undetermined (nil) results count against the rate, the
// same way the source data treated them. Nil input yields nil.
func passRate(results []*string) *float64 {
	if len(results) == 0 {
		return nil
	}
	passing := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		switch strings.ToLower(*r) {
		case "pass", "distinction":
			passing++
		}
	}
	rate := float64(passing) / float64(len(results)) * 100
	return &rate
}

// ageYears derives age as floor(days-between / 365), matching the dashboard's
// original arithmetic rather than calendar-exact years.
func ageYears(dob, today time.Time) int {
	days := int(today.Sub(dob).Hours() / 24)
	return days / 365
}

// engagementPerWeek spreads total clicks over the active weeks, where a week
// is seven distinct active days and a partial first week counts as one.
func engagementPerWeek(totalClicks int64, activeDays int) float64 {
	weeks := activeDays / 7
	if weeks < 1 {
		weeks = 1
	}
	return float64(totalClicks) / float64(weeks)
}

// pearson computes the Pearson correlation coefficient over paired samples.
// It returns nil for fewer than two pairs or when either side has zero
// variance.
func pearson(xs, ys []float64) *float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return nil
	}
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return nil
	}
	r := cov / math.Sqrt(varX*varY)
	return &r
}
