// Package service wires the insights engine to the persistence boundary.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/insights"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/store"
)

// InsightService runs analyses on demand: it reads one user's transactions,
// hands them to the engine, and persists the synthesized insights. The
// engine itself stays free of I/O.
type InsightService struct {
	store  store.Store
	engine *insights.Engine
}

// NewInsightService creates the service with the given detector thresholds.
func NewInsightService(st store.Store, cfg insights.Config) *InsightService {
	return &InsightService{
		store:  st,
		engine: insights.New(cfg),
	}
}

// Analyze runs one engine pass over the user's transactions without
// persisting anything. Callers that want the derived records (subscriptions,
// income streams, anomalies) rather than stored insight rows use this.
func (s *InsightService) Analyze(ctx context.Context, userID string) (*model.AnalysisResult, error) {
	txns, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	result, err := s.engine.Analyze(userID, txns, time.Now())
	if err != nil {
		return nil, fmt.Errorf("analysis failed for user %s: %w", userID, err)
	}
	return result, nil
}

// GenerateInsights runs a full analysis and writes the synthesized insight
// rows. Concurrent calls for the same user may write duplicate rows; callers
// that care serialize this step.
func (s *InsightService) GenerateInsights(ctx context.Context, userID string) ([]*model.Insight, error) {
	result, err := s.Analyze(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, in := range result.Insights {
		if err := s.store.CreateInsight(ctx, in); err != nil {
			return nil, fmt.Errorf("failed to save insight %s: %w", in.ID, err)
		}
	}

	log.Printf("[InsightEngine] user=%s insights=%d subscriptions=%d gray=%d income_streams=%d anomalies=%d",
		userID, len(result.Insights), len(result.Subscriptions), len(result.GrayCharges),
		len(result.IncomeStreams), len(result.Anomalies))

	return result.Insights, nil
}

// ForecastGoal projects goal feasibility from the user's spending history.
// A goal that does not exist (or belongs to someone else) comes back as
// store.ErrNotFound.
func (s *InsightService) ForecastGoal(ctx context.Context, userID, goalID string) (*model.GoalForecast, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, fmt.Errorf("goal %s: %w", goalID, store.ErrNotFound)
	}

	txns, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	forecast := s.engine.ForecastGoal(*goal, txns, time.Now())
	return &forecast, nil
}

// MarkInsightRead flips the read flag on one of the user's insights. This is
// the only mutation insights support.
func (s *InsightService) MarkInsightRead(ctx context.Context, userID, insightID string) error {
	return s.store.MarkInsightRead(ctx, userID, insightID)
}
