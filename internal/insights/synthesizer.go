package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

var (
	coffeeKeywords   = []string{"coffee", "cafe", "starbucks"}
	deliveryKeywords = []string{"delivery", "doordash", "uber eats", "grubhub"}
)

// SynthesizeInsights turns detector output and raw spending shape into
// user-facing insight records. It only formats and aggregates; every number
// it reports was computed by a detector or a plain aggregation over the
// window.
func (e *Engine) SynthesizeInsights(
	userID string,
	txns []model.Transaction,
	recurring RecurringCharges,
	anomalies []model.AnomalyFlag,
	now time.Time,
) []*model.Insight {
	var insights []*model.Insight
	insights = append(insights, e.spendingTrendInsights(userID, txns, now)...)
	insights = append(insights, e.anomalyInsights(userID, anomalies, now)...)
	insights = append(insights, e.recurringChargeInsights(userID, recurring, now)...)
	insights = append(insights, e.categoryInsights(userID, txns, now)...)
	return insights
}

func newInsight(userID, title, message string, typ model.InsightType, confidence float64, now time.Time) *model.Insight {
	return &model.Insight{
		ID:              uuid.New().String(),
		UserID:          userID,
		Title:           title,
		Message:         message,
		Type:            typ,
		ConfidenceScore: confidence,
		CreatedAt:       now,
	}
}

// spendingTrendInsights compares the two most recent spending months and the
// weekend-vs-weekday spend rate.
func (e *Engine) spendingTrendInsights(userID string, txns []model.Transaction, now time.Time) []*model.Insight {
	var insights []*model.Insight

	var expenses []model.Transaction
	for _, t := range txns {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}
	if len(expenses) == 0 {
		return nil
	}

	// Month-over-month trend.
	byMonth := make(map[string]float64)
	for _, t := range expenses {
		byMonth[t.Date.Format("2006-01")] += t.Amount
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	if len(months) >= 2 {
		recent := byMonth[months[len(months)-1]]
		previous := byMonth[months[len(months)-2]]
		switch {
		case previous <= 0:
			// No baseline to compare against.
		case recent > previous*e.cfg.SpendingIncreaseRatio:
			pct := (recent - previous) / previous * 100
			insights = append(insights, newInsight(userID,
				"Spending Increase Alert",
				fmt.Sprintf(
					"Your spending increased by %.1f%% this month ($%.2f vs $%.2f last month). "+
						"Review your recent transactions to stay on budget.",
					pct, recent, previous),
				model.InsightSpendingIncrease, 0.95, now))
		case recent < previous*e.cfg.SpendingDecreaseRatio:
			pct := (previous - recent) / previous * 100
			insights = append(insights, newInsight(userID,
				"Great Job Saving!",
				fmt.Sprintf(
					"Your spending decreased by %.1f%% this month! You spent $%.2f less than last month. "+
						"Keep up the great work!",
					pct, previous-recent),
				model.InsightSpendingDecrease, 0.95, now))
		}
	}

	// Weekend vs weekday spend rate.
	var weekendSum, weekdaySum float64
	var weekendCount, weekdayCount int
	for _, t := range expenses {
		if wd := t.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendSum += t.Amount
			weekendCount++
		} else {
			weekdaySum += t.Amount
			weekdayCount++
		}
	}
	if weekendCount > 0 && weekdayCount > 0 {
		avgWeekend := weekendSum / float64(weekendCount)
		avgWeekday := weekdaySum / float64(weekdayCount)
		if avgWeekday > 0 && avgWeekend > avgWeekday*e.cfg.WeekendSpendRatio {
			insights = append(insights, newInsight(userID,
				"Weekend Spending Pattern",
				fmt.Sprintf(
					"You spend %.1fx more on weekends ($%.2f/day) compared to weekdays ($%.2f/day). "+
						"Consider planning weekend activities to manage spending.",
					avgWeekend/avgWeekday, avgWeekend, avgWeekday),
				model.InsightWeekendSpending, 0.8, now))
		}
	}

	return insights
}

// anomalyInsights surfaces the top flagged transactions, at most
// MaxAnomalyInsights per run.
func (e *Engine) anomalyInsights(userID string, flags []model.AnomalyFlag, now time.Time) []*model.Insight {
	var insights []*model.Insight
	for i, f := range flags {
		if i >= e.cfg.MaxAnomalyInsights {
			break
		}
		typ := model.InsightAnomalyPattern
		if f.Reason == model.AnomalyHighAmount {
			typ = model.InsightAnomalyHighAmount
		}
		insights = append(insights, newInsight(userID,
			"Unusual Transaction Alert", f.Message, typ, f.Confidence, now))
	}
	return insights
}

// recurringChargeInsights emits one subscription-summary insight and one
// gray-charges insight when the respective detector lists are non-empty.
func (e *Engine) recurringChargeInsights(userID string, rec RecurringCharges, now time.Time) []*model.Insight {
	var insights []*model.Insight

	if len(rec.Subscriptions) > 0 {
		var totalMonthly float64
		for _, s := range rec.Subscriptions {
			totalMonthly += monthlyCost(s.Amount, s.Frequency)
		}
		var lines []string
		for i, s := range rec.Subscriptions {
			if i >= 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("• %s: $%.2f %s", s.Merchant, s.Amount, s.Frequency))
		}
		insights = append(insights, newInsight(userID,
			"Active Subscriptions Detected",
			fmt.Sprintf(
				"You have %d active subscriptions totaling approximately $%.2f per month:\n%s\n\n"+
					"Consider reviewing these to ensure you're using all services.",
				len(rec.Subscriptions), totalMonthly, strings.Join(lines, "\n")),
			model.InsightSubscriptionSummary, 0.9, now))
	}

	if len(rec.GrayCharges) > 0 {
		var totalGray float64
		for _, g := range rec.GrayCharges {
			totalGray += g.TotalSpent
		}
		var lines []string
		for i, g := range rec.GrayCharges {
			if i >= 3 {
				break
			}
			lines = append(lines, fmt.Sprintf("• %s: $%.2f %s ($%.2f total)",
				g.Merchant, g.Amount, g.Frequency, g.TotalSpent))
		}
		insights = append(insights, newInsight(userID,
			"Potential Forgotten Subscriptions",
			fmt.Sprintf(
				"Found %d small recurring charges that might be forgotten subscriptions. "+
					"You've spent $%.2f total on these:\n%s\n\n"+
					"Review these charges and cancel any unused services.",
				len(rec.GrayCharges), totalGray, strings.Join(lines, "\n")),
			model.InsightGrayCharges, 0.85, now))
	}

	return insights
}

type categorySpend struct {
	name   string
	amount float64
	count  int
}

// categoryInsights reports where the money goes: a top-3 breakdown plus the
// coffee and food-delivery heuristics. At most 3 insights come out.
func (e *Engine) categoryInsights(userID string, txns []model.Transaction, now time.Time) []*model.Insight {
	spend := make(map[string]*categorySpend)
	for _, t := range txns {
		cat := t.Category()
		if cat == "" {
			continue
		}
		cs, ok := spend[cat]
		if !ok {
			cs = &categorySpend{name: cat}
			spend[cat] = cs
		}
		cs.amount += math.Abs(t.Amount)
		cs.count++
	}
	if len(spend) == 0 {
		return nil
	}

	ranked := make([]*categorySpend, 0, len(spend))
	var total float64
	for _, cs := range spend {
		ranked = append(ranked, cs)
		total += cs.amount
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].amount != ranked[j].amount {
			return ranked[i].amount > ranked[j].amount
		}
		return ranked[i].name < ranked[j].name
	})
	if total <= 0 {
		return nil
	}

	var insights []*model.Insight

	if len(ranked) >= 3 {
		top3 := ranked[:3]
		var top3Total float64
		var lines []string
		for i, cs := range top3 {
			top3Total += cs.amount
			lines = append(lines, fmt.Sprintf("%d. %s: $%.2f (%.1f%%)",
				i+1, HumanizeCategory(cs.name), cs.amount, cs.amount/total*100))
		}
		insights = append(insights, newInsight(userID,
			"Top Spending Categories",
			fmt.Sprintf(
				"Your top 3 spending categories account for %.1f%% of your total spending:\n\n%s\n\n"+
					"Focus on these areas for the biggest savings impact.",
				top3Total/total*100, strings.Join(lines, "\n")),
			model.InsightCategoryAnalysis, 0.9, now))
	}

	for i, cs := range ranked {
		if i >= 5 {
			break
		}
		lower := strings.ToLower(cs.name)
		if containsAny(lower, coffeeKeywords) {
			annual := cs.amount * 12
			insights = append(insights, newInsight(userID,
				"Coffee Spending Analysis",
				fmt.Sprintf(
					"You're spending $%.2f/month on coffee ($%.2f/year). "+
						"Brewing at home could save you over $%.2f annually!",
					cs.amount, annual, annual*0.7),
				model.InsightCoffeeSpending, 0.85, now))
			break
		}
		if containsAny(lower, deliveryKeywords) {
			insights = append(insights, newInsight(userID,
				"Food Delivery Savings Opportunity",
				fmt.Sprintf(
					"You spent $%.2f on food delivery this month. "+
						"Picking up orders yourself could save approximately $%.2f in fees and tips.",
					cs.amount, cs.amount*0.3),
				model.InsightDeliverySpending, 0.8, now))
			break
		}
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
