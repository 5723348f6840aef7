package insights

import (
	"math"
	"sort"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// DetectIncomeStreams identifies recurring deposit sources and estimates
// their monthly-equivalent income. Deposits carry negative signed amounts;
// everything non-negative is ignored here.
//
// Grouping is fuzzy on purpose: payroll processors report the same employer
// under shifting names, so per-name buckets get merged under the merchant
// similarity predicate before classification.
func (e *Engine) DetectIncomeStreams(txns []model.Transaction) []model.IncomeStream {
	var deposits []model.Transaction
	for _, t := range txns {
		if t.IsIncome() {
			deposits = append(deposits, t)
		}
	}

	var streams []model.IncomeStream
	for _, c := range e.clusterFuzzy(deposits, e.cfg.MinSeriesOccurrences) {
		dates := c.dates()
		stats := computeIntervalStats(dates)
		if stats.MeanDays <= 0 {
			// All occurrences on one day: no cadence to speak of.
			continue
		}

		avgAmount := math.Abs(c.meanAmount())
		freq := classifyIncomeIntervals(stats.MeanDays)
		monthly := monthlyEquivalent(avgAmount, freq, stats.MeanDays)

		confidence := incomeConfidence(stats, e.cfg.IncomeConfidenceCap)
		if avgAmount >= e.cfg.IncomeSalaryThreshold {
			// Large regular deposits are almost always salary; boost, but
			// the overall ceiling still holds.
			confidence = math.Min(confidence+e.cfg.IncomeSalaryBoost, e.cfg.IncomeConfidenceCap)
		}

		if confidence < e.cfg.IncomeMinConfidence || monthly < e.cfg.IncomeMonthlyFloor {
			continue
		}

		days := int(dates[len(dates)-1].Sub(dates[0]).Hours() / 24)
		streams = append(streams, model.IncomeStream{
			SourceName:    c.label,
			MonthlyIncome: math.Round(monthly*100) / 100,
			Frequency:     freq,
			Confidence:    math.Round(confidence*100) / 100,
			DaysOfData:    days,
		})
	}

	sort.Slice(streams, func(i, j int) bool {
		if streams[i].MonthlyIncome != streams[j].MonthlyIncome {
			return streams[i].MonthlyIncome > streams[j].MonthlyIncome
		}
		return streams[i].SourceName < streams[j].SourceName
	})
	return streams
}
