package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPassRate(t *testing.T) {
	results := []*string{
		strPtr("Pass"), strPtr("pass"), strPtr("Distinction"),
		strPtr("Fail"), strPtr("Withdrawn"), nil,
		strPtr("fail"), strPtr("fail"), strPtr("fail"), strPtr("fail"),
	}
	rate := passRate(results)
	require.NotNil(t, rate)
	require.InDelta(t, 30.0, *rate, 1e-9)

	require.Nil(t, passRate(nil))
}

func TestMeanAndMedian(t *testing.T) {
	require.Nil(t, meanFloat(nil))
	require.Nil(t, medianFloat(nil))

	values := []float64{10, 20, 60}
	mean := meanFloat(values)
	require.NotNil(t, mean)
	require.InDelta(t, 30.0, *mean, 1e-9)

	median := medianFloat(values)
	require.NotNil(t, median)
	require.InDelta(t, 20.0, *median, 1e-9)

	even := medianFloat([]float64{1, 2, 3, 4})
	require.NotNil(t, even)
	require.InDelta(t, 2.5, *even, 1e-9)

	// Input order must not matter, and the input must not be mutated.
	shuffled := []float64{60, 10, 20}
	require.InDelta(t, 20.0, *medianFloat(shuffled), 1e-9)
	require.Equal(t, []float64{60, 10, 20}, shuffled)
}

func TestAgeYears(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 22, ageYears(time.Date(2002, 5, 30, 0, 0, 0, 0, time.UTC), today))
	// Day-based arithmetic: 365-day years, not calendar years.
	require.Equal(t, 0, ageYears(today.AddDate(0, 0, -364), today))
	require.Equal(t, 1, ageYears(today.AddDate(0, 0, -365), today))
}

func TestEngagementPerWeek(t *testing.T) {
	// Fewer than seven active days still count as one week.
	require.InDelta(t, 140.0, engagementPerWeek(140, 3), 1e-9)
	// Integer week count: 20 days is two full weeks.
	require.InDelta(t, 70.0, engagementPerWeek(140, 20), 1e-9)
	require.InDelta(t, 0.0, engagementPerWeek(0, 0), 1e-9)
}

func TestPearson(t *testing.T) {
	r := pearson([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NotNil(t, r)
	require.InDelta(t, 1.0, *r, 1e-9)

	r = pearson([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	require.NotNil(t, r)
	require.InDelta(t, -1.0, *r, 1e-9)

	require.Nil(t, pearson([]float64{1}, []float64{2}))
	require.Nil(t, pearson([]float64{1, 2}, []float64{5, 5}))
	require.Nil(t, pearson([]float64{1, 2, 3}, []float64{1, 2}))
}
