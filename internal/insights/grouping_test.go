package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

func TestGroupExactKey(t *testing.T) {
	txns := []model.Transaction{
		expense("a1", "Netflix Inc", 15.99, testStart),
		expense("a2", "NETFLIX INC.", 15.99, testStart.AddDate(0, 1, 0)),
		expense("a3", "Netflix Inc", 9.99, testStart.AddDate(0, 0, 10)), // different amount, own group
		expense("b1", "Spotify", 11.99, testStart),
		expense("b2", "Spotify", 11.99, testStart.AddDate(0, 1, 0)),
		expense("c1", "One Off Shop", 42, testStart),
	}

	series := groupExactKey(txns, 2)
	require.Len(t, series, 2)

	// Deterministic order: merchant, then amount.
	assert.Equal(t, "netflix", series[0].Merchant)
	assert.InDelta(t, 15.99, series[0].Amount, 1e-9)
	assert.Len(t, series[0].Dates, 2)
	assert.True(t, series[0].Dates[0].Before(series[0].Dates[1]))

	assert.Equal(t, "spotify", series[1].Merchant)
}

func TestGroupExactKeyNoFuzzyMerge(t *testing.T) {
	// Near-identical names must stay separate on the exact-key path.
	txns := []model.Transaction{
		expense("a1", "Acme Gym", 49, testStart),
		expense("a2", "Acme Gyms", 49, testStart.AddDate(0, 1, 0)),
	}
	assert.Empty(t, groupExactKey(txns, 2))
}

func TestClusterFuzzyMergesPayrollVariants(t *testing.T) {
	e := New(DefaultConfig())

	txns := depositSeries("p1", "ACME Corp Payroll", 4500, 30, 3, testStart)
	txns = append(txns, depositSeries("p2", "ACME PPD", 4480, 30, 3, testStart.AddDate(0, 0, 15))...)

	clusters := e.clusterFuzzy(txns, 2)
	require.Len(t, clusters, 1)
	assert.Equal(t, "acme", clusters[0].label)
	assert.Len(t, clusters[0].txns, 6)

	dates := clusters[0].dates()
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]))
	}
}

func TestClusterFuzzyKeepsDistinctEmployers(t *testing.T) {
	e := New(DefaultConfig())

	txns := depositSeries("a", "ACME Corp Payroll", 4500, 30, 2, testStart)
	txns = append(txns, depositSeries("g", "Globex LLC", 1200, 30, 2, testStart.AddDate(0, 0, 10))...)

	clusters := e.clusterFuzzy(txns, 2)
	assert.Len(t, clusters, 2)
}

func TestClusterFuzzyDropsSingletons(t *testing.T) {
	e := New(DefaultConfig())
	txns := []model.Transaction{deposit("x", "Lone Deposit", 100, testStart)}
	assert.Empty(t, e.clusterFuzzy(txns, 2))
}
