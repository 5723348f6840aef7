package model

// Frequency is the regularity verdict for a recurring series.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyBiMonthly Frequency = "bi-monthly"
	FrequencyAnnual    Frequency = "annual"
	FrequencyIrregular Frequency = "irregular"
	FrequencyNone      Frequency = "none"
)

// Subscription is a recognized recurring expense series.
type Subscription struct {
	Merchant        string    `json:"merchant"`
	Amount          float64   `json:"amount"`
	Frequency       Frequency `json:"frequency"`
	OccurrenceCount int       `json:"occurrence_count"`
	TotalSpent      float64   `json:"total_spent"`
}

// GrayCharge is a small recurring charge likely to be a forgotten
// subscription: under the gray-charge amount ceiling with three or more
// occurrences.
type GrayCharge struct {
	Merchant        string    `json:"merchant"`
	Amount          float64   `json:"amount"`
	Frequency       Frequency `json:"frequency"`
	OccurrenceCount int       `json:"occurrence_count"`
	TotalSpent      float64   `json:"total_spent"`
}

// IncomeStream is a detected recurring deposit source with its
// monthly-equivalent estimate.
type IncomeStream struct {
	SourceName    string    `json:"source_name"`
	MonthlyIncome float64   `json:"monthly_income_estimate"`
	Frequency     Frequency `json:"frequency"`
	Confidence    float64   `json:"confidence"`
	DaysOfData    int       `json:"days_of_data"`
}

// AnomalyReason classifies why a transaction was flagged.
type AnomalyReason string

const (
	AnomalyHighAmount     AnomalyReason = "high_amount"
	AnomalyUnusualPattern AnomalyReason = "unusual_pattern"
)

// AnomalyFlag marks one statistically anomalous transaction.
type AnomalyFlag struct {
	TransactionID string        `json:"transaction_id"`
	Reason        AnomalyReason `json:"reason"`
	Message       string        `json:"message"`
	Confidence    float64       `json:"confidence"`
}

// AnalysisResult aggregates everything one engine pass derives from a
// user's transaction set.
type AnalysisResult struct {
	Subscriptions []Subscription `json:"subscriptions"`
	GrayCharges   []GrayCharge   `json:"gray_charges"`
	IncomeStreams []IncomeStream `json:"income_streams"`
	Anomalies     []AnomalyFlag  `json:"anomalies"`
	Insights      []*Insight     `json:"insights"`
}
