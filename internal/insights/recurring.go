package insights

import (
	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// RecurringCharges is the expense-side detector output: recognized
// subscriptions plus the small likely-forgotten ones.
type RecurringCharges struct {
	Subscriptions []model.Subscription
	GrayCharges   []model.GrayCharge
}

// DetectRecurringCharges scans expense history for series that bill the same
// merchant the same amount on a recognized cadence. Below the minimum
// transaction count there is not enough history to call anything recurring,
// so the result is empty rather than noisy.
func (e *Engine) DetectRecurringCharges(txns []model.Transaction) RecurringCharges {
	var out RecurringCharges
	if len(txns) < e.cfg.MinRecurringTransactions {
		return out
	}

	var expenses []model.Transaction
	for _, t := range txns {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}

	for _, s := range groupExactKey(expenses, e.cfg.MinSeriesOccurrences) {
		stats := computeIntervalStats(s.Dates)
		freq := classifyExpenseIntervals(stats)
		if freq == model.FrequencyIrregular {
			continue
		}

		count := len(s.Dates)
		total := s.Amount * float64(count)
		if s.Amount < e.cfg.GrayChargeMaxAmount && count >= e.cfg.GrayChargeMinOccurrences {
			out.GrayCharges = append(out.GrayCharges, model.GrayCharge{
				Merchant:        s.Merchant,
				Amount:          s.Amount,
				Frequency:       freq,
				OccurrenceCount: count,
				TotalSpent:      total,
			})
			continue
		}
		out.Subscriptions = append(out.Subscriptions, model.Subscription{
			Merchant:        s.Merchant,
			Amount:          s.Amount,
			Frequency:       freq,
			OccurrenceCount: count,
			TotalSpent:      total,
		})
	}
	return out
}

// monthlyCost normalizes a subscription amount to its per-month rate.
func monthlyCost(amount float64, freq model.Frequency) float64 {
	switch freq {
	case model.FrequencyWeekly:
		return amount / 4
	case model.FrequencyAnnual:
		return amount / 12
	default:
		return amount
	}
}
