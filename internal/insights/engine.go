package insights

import (
	"fmt"
	"time"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// Analyze runs every detector over one user's full transaction set and
// synthesizes the insight records. The pass is deterministic: the same
// transaction set always produces the same groupings, labels and confidence
// values (insight IDs and timestamps aside).
//
// A malformed transaction fails the whole call. Skipping bad rows silently
// would shrink the window behind the caller's back and skew every
// confidence score computed from it.
func (e *Engine) Analyze(userID string, txns []model.Transaction, now time.Time) (*model.AnalysisResult, error) {
	for i := range txns {
		if err := txns[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction at index %d: %w", i, err)
		}
	}

	recurring := e.DetectRecurringCharges(txns)
	incomeStreams := e.DetectIncomeStreams(txns)
	anomalies := e.DetectAnomalies(txns)
	insights := e.SynthesizeInsights(userID, txns, recurring, anomalies, now)

	return &model.AnalysisResult{
		Subscriptions: recurring.Subscriptions,
		GrayCharges:   recurring.GrayCharges,
		IncomeStreams: incomeStreams,
		Anomalies:     anomalies,
		Insights:      insights,
	}, nil
}
