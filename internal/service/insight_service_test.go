package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/insights"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/store"
)

func seedSpendingHistory(t *testing.T, st store.Store, userID string) {
	t.Helper()
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// A monthly subscription plus one-off spending across two months.
	for i := 0; i < 4; i++ {
		require.NoError(t, st.CreateTransaction(ctx, &model.Transaction{
			ID: fmt.Sprintf("sub-%d", i), UserID: userID, Name: "Streaming Service",
			MerchantName: "Streaming Service", Amount: 22.99, Date: start.AddDate(0, 0, i*30),
		}))
	}
	for i := 0; i < 30; i++ {
		require.NoError(t, st.CreateTransaction(ctx, &model.Transaction{
			ID: fmt.Sprintf("one-%d", i), UserID: userID, Name: fmt.Sprintf("Shop %d", i),
			MerchantName: fmt.Sprintf("Shop %d", i), Amount: 20 + float64(i), Date: start.AddDate(0, 0, i*2),
		}))
	}
}

func TestGenerateInsightsPersists(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewInsightService(st, insights.DefaultConfig())
	seedSpendingHistory(t, st, "u1")

	generated, err := svc.GenerateInsights(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, generated)

	stored, err := st.ListInsights(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, stored, len(generated))
	for _, in := range stored {
		assert.Equal(t, "u1", in.UserID)
		assert.False(t, in.IsRead)
	}
}

func TestAnalyzeDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewInsightService(st, insights.DefaultConfig())
	seedSpendingHistory(t, st, "u1")

	result, err := svc.Analyze(ctx, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Subscriptions)

	stored, err := st.ListInsights(ctx, "u1", false)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMarkInsightRead(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewInsightService(st, insights.DefaultConfig())
	seedSpendingHistory(t, st, "u1")

	generated, err := svc.GenerateInsights(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, generated)

	require.NoError(t, svc.MarkInsightRead(ctx, "u1", generated[0].ID))
	unread, err := st.ListInsights(ctx, "u1", true)
	require.NoError(t, err)
	assert.Len(t, unread, len(generated)-1)

	assert.ErrorIs(t, svc.MarkInsightRead(ctx, "other", generated[0].ID), store.ErrNotFound)
}

func TestForecastGoal(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewInsightService(st, insights.DefaultConfig())
	seedSpendingHistory(t, st, "u1")

	goal := &model.Goal{
		ID: "g1", UserID: "u1", Name: "Vacation",
		TargetAmount: 500, TargetDate: time.Now().AddDate(0, 6, 0),
	}
	require.NoError(t, st.CreateGoal(ctx, goal))

	forecast, err := svc.ForecastGoal(ctx, "u1", "g1")
	require.NoError(t, err)
	assert.NotEmpty(t, forecast.Message)
	assert.Greater(t, forecast.RequiredMonthlySavings, 0.0)

	_, err = svc.ForecastGoal(ctx, "u1", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// A goal owned by someone else is indistinguishable from a missing one.
	_, err = svc.ForecastGoal(ctx, "other", "g1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
