package insights

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// IntervalStats summarizes the day-gaps of a sorted occurrence-date series.
type IntervalStats struct {
	MeanDays   float64
	StdDevDays float64
	Variance   float64
	Count      int // number of occurrences, not gaps
}

// dayGaps returns the consecutive gaps, in days, of an ascending date series.
func dayGaps(dates []time.Time) []float64 {
	var gaps []float64
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
	}
	return gaps
}

// computeIntervalStats derives mean and sample standard deviation of the gaps
// between occurrences. A two-occurrence series has one gap and, by
// definition, zero deviation.
func computeIntervalStats(dates []time.Time) IntervalStats {
	gaps := dayGaps(dates)
	s := IntervalStats{Count: len(dates)}
	if len(gaps) == 0 {
		return s
	}
	s.MeanDays = stat.Mean(gaps, nil)
	if len(gaps) > 1 {
		s.Variance = stat.Variance(gaps, nil)
		s.StdDevDays = math.Sqrt(s.Variance)
	}
	return s
}

// classifyExpenseIntervals applies the expense-side regularity bands. A
// series outside every band is irregular and dropped by the recurring
// charge detector.
func classifyExpenseIntervals(s IntervalStats) model.Frequency {
	switch {
	case s.MeanDays >= 25 && s.MeanDays <= 35 && s.StdDevDays < 5:
		return model.FrequencyMonthly
	case s.MeanDays >= 6 && s.MeanDays <= 8 && s.StdDevDays < 2:
		return model.FrequencyWeekly
	case s.MeanDays >= 350 && s.MeanDays <= 380 && s.StdDevDays < 15:
		return model.FrequencyAnnual
	default:
		return model.FrequencyIrregular
	}
}

// classifyIncomeIntervals applies the deposit-side cadence bands, which are
// deliberately looser than the expense bands: payroll dates drift around
// weekends and holidays.
func classifyIncomeIntervals(meanDays float64) model.Frequency {
	switch {
	case meanDays <= 10:
		return model.FrequencyWeekly
	case meanDays <= 40:
		return model.FrequencyMonthly
	case meanDays <= 100:
		return model.FrequencyBiMonthly
	default:
		return model.FrequencyIrregular
	}
}

// monthlyEquivalent converts a per-occurrence amount to a per-month rate for
// the given cadence. Irregular series extrapolate from the observed mean gap.
func monthlyEquivalent(amount float64, freq model.Frequency, meanDays float64) float64 {
	switch freq {
	case model.FrequencyWeekly:
		return amount * 4
	case model.FrequencyMonthly:
		return amount
	case model.FrequencyBiMonthly:
		return amount / 2
	default:
		if meanDays <= 0 {
			return 0
		}
		return amount * 30 / meanDays
	}
}

// incomeConfidence scores how believable a deposit series is:
// interval consistency (1 - variance/mean^2, floored at 0) times a sample
// size factor (n/5, capped at 1), with a hard overall ceiling. The ceiling
// exists because the estimate never sees more than a few months of data;
// it must not read as certainty.
func incomeConfidence(s IntervalStats, cap float64) float64 {
	if s.MeanDays <= 0 {
		return 0
	}
	consistency := 1 - s.Variance/(s.MeanDays*s.MeanDays)
	if consistency < 0 {
		consistency = 0
	}
	sample := math.Min(float64(s.Count)/5, 1)
	return math.Min(consistency*sample, cap)
}
