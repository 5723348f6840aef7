// Package insights implements the transaction pattern intelligence engine:
// recurring-charge detection, income stream detection, anomaly scoring,
// insight synthesis and goal forecasting over one user's transaction set.
//
// Every detector is a pure function of its input transactions plus the
// Config thresholds. Nothing here performs I/O and no state survives a call.
package insights

// Config carries every detector threshold. Thresholds are injected rather
// than hardcoded so tests can tighten or relax them per case.
type Config struct {
	// Recurring charge detection.
	MinRecurringTransactions int     // minimum transactions before detection runs
	MinSeriesOccurrences     int     // groups below this are discarded outright
	GrayChargeMaxAmount      float64 // amounts under this are gray-charge candidates
	GrayChargeMinOccurrences int

	// Merchant similarity.
	SimilarityStrong float64 // name ratio accepted on its own
	SimilarityWeak   float64 // name ratio accepted with amount parity
	AmountTolerance  float64 // relative amount difference for parity

	// Income stream detection.
	IncomeMinConfidence   float64 // streams below this are dropped
	IncomeConfidenceCap   float64 // hard ceiling, never 1.0
	IncomeSalaryThreshold float64 // average amount that triggers the salary boost
	IncomeSalaryBoost     float64
	IncomeMonthlyFloor    float64 // minimum monthly-equivalent to report

	// Anomaly scoring.
	MinAnomalyTransactions int
	Contamination          float64 // expected outlier fraction per fit
	MaxAnomalyInsights     int
	HighAmountMultiplier   float64 // |amount| above multiplier*mean is "high_amount"

	// Spending trend synthesis.
	SpendingIncreaseRatio float64 // month-over-month increase alert threshold
	SpendingDecreaseRatio float64 // month-over-month decrease praise threshold
	WeekendSpendRatio     float64 // weekend/weekday spend-rate alert threshold
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MinRecurringTransactions: 30,
		MinSeriesOccurrences:     2,
		GrayChargeMaxAmount:      20,
		GrayChargeMinOccurrences: 3,

		SimilarityStrong: 0.8,
		SimilarityWeak:   0.6,
		AmountTolerance:  0.1,

		IncomeMinConfidence:   0.3,
		IncomeConfidenceCap:   0.8,
		IncomeSalaryThreshold: 1000,
		IncomeSalaryBoost:     0.2,
		IncomeMonthlyFloor:    100,

		MinAnomalyTransactions: 10,
		Contamination:          0.10,
		MaxAnomalyInsights:     3,
		HighAmountMultiplier:   2,

		SpendingIncreaseRatio: 1.3,
		SpendingDecreaseRatio: 0.8,
		WeekendSpendRatio:     1.5,
	}
}

// Engine runs all detectors against one user's transactions.
type Engine struct {
	cfg Config
}

// New creates an engine with the given thresholds.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}
