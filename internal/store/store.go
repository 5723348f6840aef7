// Package store is the persistence boundary: transactions come in from it,
// synthesized insights go out to it. The engine itself never touches it.
package store

import (
	"context"
	"errors"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist. Callers
// surface it as a result-level condition, not a failure of the store.
var ErrNotFound = errors.New("not found")

// Store defines the database operations used by the insight service.
type Store interface {
	// Transaction operations. Transactions are immutable once ingested.
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error)

	// Insight operations. Insights are created by the engine and only ever
	// mutated to toggle the read flag.
	CreateInsight(ctx context.Context, insight *model.Insight) error
	ListInsights(ctx context.Context, userID string, unreadOnly bool) ([]*model.Insight, error)
	MarkInsightRead(ctx context.Context, userID, insightID string) error

	// Goal operations.
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoal(ctx context.Context, goalID string) (*model.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
}
