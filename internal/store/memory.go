package store

import (
	"context"
	"sort"
	"sync"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// MemoryStore implements Store with in-memory maps. Used for local
// development and tests.
type MemoryStore struct {
	mu sync.RWMutex

	transactions map[string]*model.Transaction
	insights     map[string]*model.Insight
	goals        map[string]*model.Goal
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]*model.Transaction),
		insights:     make(map[string]*model.Insight),
		goals:        make(map[string]*model.Goal),
	}
}

func (s *MemoryStore) CreateTransaction(_ context.Context, txn *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *txn
	s.transactions[txn.ID] = &cp
	return nil
}

func (s *MemoryStore) GetTransaction(_ context.Context, transactionID string) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *txn
	return &cp, nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, userID string) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var txns []model.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			txns = append(txns, *t)
		}
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
	return txns, nil
}

func (s *MemoryStore) CreateInsight(_ context.Context, insight *model.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *insight
	s.insights[insight.ID] = &cp
	return nil
}

func (s *MemoryStore) ListInsights(_ context.Context, userID string, unreadOnly bool) ([]*model.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var insights []*model.Insight
	for _, in := range s.insights {
		if in.UserID != userID {
			continue
		}
		if unreadOnly && in.IsRead {
			continue
		}
		cp := *in
		insights = append(insights, &cp)
	}
	sort.Slice(insights, func(i, j int) bool {
		if !insights[i].CreatedAt.Equal(insights[j].CreatedAt) {
			return insights[i].CreatedAt.Before(insights[j].CreatedAt)
		}
		return insights[i].ID < insights[j].ID
	})
	return insights, nil
}

func (s *MemoryStore) MarkInsightRead(_ context.Context, userID, insightID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.insights[insightID]
	if !ok || in.UserID != userID {
		return ErrNotFound
	}
	in.IsRead = true
	return nil
}

func (s *MemoryStore) CreateGoal(_ context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *goal
	s.goals[goal.ID] = &cp
	return nil
}

func (s *MemoryStore) GetGoal(_ context.Context, goalID string) (*model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal, ok := s.goals[goalID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *goal
	return &cp, nil
}

func (s *MemoryStore) ListGoals(_ context.Context, userID string) ([]model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var goals []model.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			goals = append(goals, *g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

func (s *MemoryStore) UpdateGoal(_ context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[goal.ID]; !ok {
		return ErrNotFound
	}
	cp := *goal
	s.goals[goal.ID] = &cp
	return nil
}

func (s *MemoryStore) DeleteGoal(_ context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[goalID]; !ok {
		return ErrNotFound
	}
	delete(s.goals, goalID)
	return nil
}
