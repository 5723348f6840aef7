package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// fullHistory builds a transaction set that exercises every detector at once:
// a salary, a subscription, a gray charge and enough one-off spending to
// clear the recurring and anomaly window minimums.
func fullHistory() []model.Transaction {
	txns := depositSeries("sal", "ACME Corporation Payroll", 4500, 30, 6, testStart)
	txns = append(txns, recurringSeries("nf", "Netflix", 22.99, 30, 4, testStart)...)
	txns = append(txns, recurringSeries("gc", "Tiny App", 4.99, 30, 4, testStart)...)
	txns = append(txns, fillerExpenses(30, testStart)...)
	return txns
}

func TestAnalyzeFullHistory(t *testing.T) {
	e := New(DefaultConfig())

	res, err := e.Analyze("user-1", fullHistory(), testNow)
	require.NoError(t, err)

	// Netflix is a subscription, Tiny App is under the gray ceiling.
	require.Len(t, res.Subscriptions, 1)
	assert.Equal(t, "netflix", res.Subscriptions[0].Merchant)
	require.Len(t, res.GrayCharges, 1)
	assert.Equal(t, "tiny app", res.GrayCharges[0].Merchant)

	require.Len(t, res.IncomeStreams, 1)
	assert.Equal(t, "acme corporation", res.IncomeStreams[0].SourceName)
	assert.InDelta(t, 4500, res.IncomeStreams[0].MonthlyIncome, 1e-9)

	// 44 transactions at 10% contamination, capped at 3 per run.
	assert.Len(t, res.Anomalies, 3)

	for _, in := range res.Insights {
		assert.Equal(t, "user-1", in.UserID)
		assert.NotEmpty(t, in.ID)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	e := New(DefaultConfig())

	first, err := e.Analyze("user-1", fullHistory(), testNow)
	require.NoError(t, err)
	second, err := e.Analyze("user-1", fullHistory(), testNow)
	require.NoError(t, err)

	assert.Equal(t, first.Subscriptions, second.Subscriptions)
	assert.Equal(t, first.GrayCharges, second.GrayCharges)
	assert.Equal(t, first.IncomeStreams, second.IncomeStreams)
	assert.Equal(t, first.Anomalies, second.Anomalies)

	// Insight IDs are minted per call; everything else must line up.
	require.Equal(t, len(first.Insights), len(second.Insights))
	for i := range first.Insights {
		assert.Equal(t, first.Insights[i].Type, second.Insights[i].Type)
		assert.Equal(t, first.Insights[i].Title, second.Insights[i].Title)
		assert.Equal(t, first.Insights[i].Message, second.Insights[i].Message)
		assert.Equal(t, first.Insights[i].ConfidenceScore, second.Insights[i].ConfidenceScore)
	}
}

func TestAnalyzeRejectsMalformedTransaction(t *testing.T) {
	e := New(DefaultConfig())

	txns := []model.Transaction{
		expense("ok", "Grocer", 50, testStart),
		{ID: "bad", Name: "No Date", Amount: 10}, // zero date
	}
	res, err := e.Analyze("user-1", txns, testNow)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestAnalyzeEmptyInput(t *testing.T) {
	e := New(DefaultConfig())

	res, err := e.Analyze("user-1", nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, res.Subscriptions)
	assert.Empty(t, res.GrayCharges)
	assert.Empty(t, res.IncomeStreams)
	assert.Empty(t, res.Anomalies)
	assert.Empty(t, res.Insights)
}
