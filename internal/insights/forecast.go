package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// savingsCapacityRate is the share of average monthly spend a user is
// assumed able to redirect into savings by cutting back.
const savingsCapacityRate = 0.2

// ForecastGoal projects whether the user can reach a savings goal by its
// target date given their observed monthly spending. Missing prerequisites
// (no transactions, no target date, fewer than two spending months) come
// back as explicit not-on-track results, never as errors.
func (e *Engine) ForecastGoal(goal model.Goal, txns []model.Transaction, now time.Time) model.GoalForecast {
	if len(txns) == 0 {
		return model.GoalForecast{
			OnTrack:    false,
			Message:    "Not enough transaction data to make a forecast",
			Confidence: 0,
		}
	}

	if goal.TargetDate.IsZero() {
		return model.GoalForecast{
			OnTrack:    false,
			Message:    "Goal has no target date set",
			Confidence: 0,
		}
	}

	monthly := monthlyNetSpend(txns)
	if len(monthly) < 2 {
		return model.GoalForecast{
			OnTrack:    false,
			Message:    "Not enough transaction data to make a forecast",
			Confidence: 0,
		}
	}

	daysRemaining := goal.TargetDate.Sub(now).Hours() / 24
	monthsRemaining := math.Max(1, daysRemaining/30)
	required := (goal.TargetAmount - goal.CurrentAmount) / monthsRemaining

	avgSpend := stat.Mean(monthly, nil)
	if avgSpend <= 0 {
		// Net-negative spend months give no basis for a capacity estimate.
		return model.GoalForecast{
			OnTrack:    false,
			Message:    "Not enough transaction data to make a forecast",
			Confidence: 0,
		}
	}
	volatility := stat.StdDev(monthly, nil)
	capacity := avgSpend * savingsCapacityRate

	onTrack := capacity >= required
	confidence := math.Min(0.95, math.Max(0.3, 1-volatility/avgSpend))

	var message string
	if onTrack {
		message = fmt.Sprintf(
			"Great news! At your current rate, you're on track to reach your goal. "+
				"You need to save $%.2f/month.", required)
	} else {
		message = fmt.Sprintf(
			"You need to save $%.2f/month to reach your goal, "+
				"but based on your spending patterns, you might fall short by $%.2f/month. "+
				"Consider reducing spending in your top categories.",
			required, required-capacity)
	}

	return model.GoalForecast{
		OnTrack:                onTrack,
		Message:                message,
		RequiredMonthlySavings: required,
		EstimatedCapacity:      capacity,
		Confidence:             confidence,
	}
}

// monthlyNetSpend sums signed amounts per calendar month, ordered by month.
func monthlyNetSpend(txns []model.Transaction) []float64 {
	byMonth := make(map[string]float64)
	for _, t := range txns {
		byMonth[t.Date.Format("2006-01")] += t.Amount
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]float64, len(months))
	for i, m := range months {
		out[i] = byMonth[m]
	}
	return out
}
