package model

import "time"

// InsightType tags an insight with the detector that produced it. The set is
// fixed; consumers switch on these values.
type InsightType string

const (
	InsightAnomalyHighAmount   InsightType = "anomaly_high_amount"
	InsightAnomalyPattern      InsightType = "anomaly_pattern"
	InsightSubscriptionSummary InsightType = "subscription_summary"
	InsightGrayCharges         InsightType = "gray_charges"
	InsightSpendingIncrease    InsightType = "spending_increase"
	InsightSpendingDecrease    InsightType = "spending_decrease"
	InsightWeekendSpending     InsightType = "weekend_spending"
	InsightCategoryAnalysis    InsightType = "category_analysis"
	InsightCoffeeSpending      InsightType = "coffee_spending"
	InsightDeliverySpending    InsightType = "delivery_spending"
	InsightGeneral             InsightType = "general"
)

// Insight is a user-facing finding synthesized from detector output. It is
// the only derived entity that gets persisted; after creation only IsRead
// ever changes.
type Insight struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Title           string      `json:"title"`
	Message         string      `json:"message"`
	Type            InsightType `json:"insight_type"`
	ConfidenceScore float64     `json:"confidence_score"`
	CreatedAt       time.Time   `json:"created_at"`
	IsRead          bool        `json:"is_read"`
}
