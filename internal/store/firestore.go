package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

const (
	transactionsCollection = "transactions"
	insightsCollection     = "insights"
	goalsCollection        = "goals"
)

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	_, err := s.client.Collection(transactionsCollection).Doc(txn.ID).Set(ctx, txn)
	return err
}

func (s *FirestoreStore) GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	doc, err := s.client.Collection(transactionsCollection).Doc(transactionID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, ErrNotFound)
	}
	var txn model.Transaction
	if err := doc.DataTo(&txn); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}
	return &txn, nil
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	iter := s.client.Collection(transactionsCollection).
		Where("UserID", "==", userID).
		OrderBy("Date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var txns []model.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		var txn model.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, fmt.Errorf("failed to parse transaction %s: %w", doc.Ref.ID, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (s *FirestoreStore) CreateInsight(ctx context.Context, insight *model.Insight) error {
	_, err := s.client.Collection(insightsCollection).Doc(insight.ID).Set(ctx, insight)
	return err
}

func (s *FirestoreStore) ListInsights(ctx context.Context, userID string, unreadOnly bool) ([]*model.Insight, error) {
	query := s.client.Collection(insightsCollection).Where("UserID", "==", userID)
	if unreadOnly {
		query = query.Where("IsRead", "==", false)
	}
	iter := query.OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var insights []*model.Insight
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list insights: %w", err)
		}
		var in model.Insight
		if err := doc.DataTo(&in); err != nil {
			return nil, fmt.Errorf("failed to parse insight %s: %w", doc.Ref.ID, err)
		}
		insights = append(insights, &in)
	}
	return insights, nil
}

func (s *FirestoreStore) MarkInsightRead(ctx context.Context, userID, insightID string) error {
	ref := s.client.Collection(insightsCollection).Doc(insightID)
	doc, err := ref.Get(ctx)
	if err != nil {
		return fmt.Errorf("insight %s: %w", insightID, ErrNotFound)
	}
	var in model.Insight
	if err := doc.DataTo(&in); err != nil {
		return fmt.Errorf("failed to parse insight: %w", err)
	}
	if in.UserID != userID {
		return fmt.Errorf("insight %s: %w", insightID, ErrNotFound)
	}
	_, err = ref.Update(ctx, []firestore.Update{{Path: "IsRead", Value: true}})
	return err
}

func (s *FirestoreStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	_, err := s.client.Collection(goalsCollection).Doc(goal.ID).Set(ctx, goal)
	return err
}

func (s *FirestoreStore) GetGoal(ctx context.Context, goalID string) (*model.Goal, error) {
	doc, err := s.client.Collection(goalsCollection).Doc(goalID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
	}
	var goal model.Goal
	if err := doc.DataTo(&goal); err != nil {
		return nil, fmt.Errorf("failed to parse goal: %w", err)
	}
	return &goal, nil
}

func (s *FirestoreStore) ListGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	iter := s.client.Collection(goalsCollection).Where("UserID", "==", userID).Documents(ctx)
	defer iter.Stop()

	var goals []model.Goal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		var goal model.Goal
		if err := doc.DataTo(&goal); err != nil {
			return nil, fmt.Errorf("failed to parse goal %s: %w", doc.Ref.ID, err)
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

func (s *FirestoreStore) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	_, err := s.client.Collection(goalsCollection).Doc(goal.ID).Set(ctx, goal)
	return err
}

func (s *FirestoreStore) DeleteGoal(ctx context.Context, goalID string) error {
	_, err := s.client.Collection(goalsCollection).Doc(goalID).Delete(ctx)
	return err
}
