package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

func datesEvery(start time.Time, gapDays, count int) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i*gapDays)
	}
	return dates
}

func TestComputeIntervalStats(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("two occurrences have zero deviation", func(t *testing.T) {
		s := computeIntervalStats(datesEvery(start, 30, 2))
		assert.Equal(t, 2, s.Count)
		assert.InDelta(t, 30, s.MeanDays, 1e-9)
		assert.Zero(t, s.StdDevDays)
	})

	t.Run("single occurrence has no intervals", func(t *testing.T) {
		s := computeIntervalStats(datesEvery(start, 30, 1))
		assert.Equal(t, 1, s.Count)
		assert.Zero(t, s.MeanDays)
	})

	t.Run("uneven gaps", func(t *testing.T) {
		dates := []time.Time{start, start.AddDate(0, 0, 20), start.AddDate(0, 0, 60)}
		s := computeIntervalStats(dates)
		assert.InDelta(t, 30, s.MeanDays, 1e-9)
		assert.Greater(t, s.StdDevDays, 10.0)
	})
}

func TestClassifyExpenseIntervals(t *testing.T) {
	tests := []struct {
		name   string
		mean   float64
		stddev float64
		want   model.Frequency
	}{
		{"monthly at 30", 30, 0, model.FrequencyMonthly},
		{"monthly at band edge", 25, 4.9, model.FrequencyMonthly},
		{"monthly drift rejected", 30, 5, model.FrequencyIrregular},
		{"weekly", 7, 1, model.FrequencyWeekly},
		{"weekly drift rejected", 7, 2.5, model.FrequencyIrregular},
		{"annual", 365, 10, model.FrequencyAnnual},
		{"fortnightly is irregular here", 14, 0, model.FrequencyIrregular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := IntervalStats{MeanDays: tt.mean, StdDevDays: tt.stddev}
			assert.Equal(t, tt.want, classifyExpenseIntervals(s))
		})
	}
}

func TestClassifyIncomeIntervals(t *testing.T) {
	assert.Equal(t, model.FrequencyWeekly, classifyIncomeIntervals(7))
	assert.Equal(t, model.FrequencyWeekly, classifyIncomeIntervals(10))
	assert.Equal(t, model.FrequencyMonthly, classifyIncomeIntervals(14))
	assert.Equal(t, model.FrequencyMonthly, classifyIncomeIntervals(40))
	assert.Equal(t, model.FrequencyBiMonthly, classifyIncomeIntervals(60))
	assert.Equal(t, model.FrequencyIrregular, classifyIncomeIntervals(150))
}

func TestMonthlyEquivalent(t *testing.T) {
	assert.InDelta(t, 400, monthlyEquivalent(100, model.FrequencyWeekly, 7), 1e-9)
	assert.InDelta(t, 2000, monthlyEquivalent(2000, model.FrequencyMonthly, 30), 1e-9)
	assert.InDelta(t, 1500, monthlyEquivalent(3000, model.FrequencyBiMonthly, 60), 1e-9)
	assert.InDelta(t, 200, monthlyEquivalent(100, model.FrequencyIrregular, 15), 1e-9)
	assert.Zero(t, monthlyEquivalent(100, model.FrequencyIrregular, 0))
}

func TestIncomeConfidence(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("perfect cadence hits the ceiling, never above", func(t *testing.T) {
		s := computeIntervalStats(datesEvery(start, 30, 6))
		got := incomeConfidence(s, 0.8)
		assert.InDelta(t, 0.8, got, 1e-9)
	})

	t.Run("few occurrences shrink confidence", func(t *testing.T) {
		s := computeIntervalStats(datesEvery(start, 30, 2))
		got := incomeConfidence(s, 0.8)
		// consistency 1.0, sample factor 2/5
		assert.InDelta(t, 0.4, got, 1e-9)
	})

	t.Run("erratic gaps collapse consistency", func(t *testing.T) {
		dates := []time.Time{start, start.AddDate(0, 0, 5), start.AddDate(0, 0, 90)}
		s := computeIntervalStats(dates)
		got := incomeConfidence(s, 0.8)
		assert.Zero(t, got)
	})

	t.Run("zero mean yields zero", func(t *testing.T) {
		assert.Zero(t, incomeConfidence(IntervalStats{}, 0.8))
	})
}
