// Package model defines the domain types shared by the insights engine and
// the persistence layer.
package model

import (
	"fmt"
	"time"
)

// Transaction is a single normalized bank transaction for one user.
//
// Amount is signed: positive values are expenses, negative values are income.
// This convention comes from the upstream aggregation feed and is load-bearing
// throughout the engine; nothing may flip it.
type Transaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	AccountID        string    `json:"account_id,omitempty"`
	Name             string    `json:"name"`
	MerchantName     string    `json:"merchant_name"`
	Amount           float64   `json:"amount"`
	CategoryPrimary  string    `json:"category_primary,omitempty"`
	CategoryDetailed string    `json:"category_detailed,omitempty"`
	Date             time.Time `json:"date"`
}

// Validate reports whether the transaction is usable for analysis.
// A malformed row fails the whole analysis call rather than being skipped
// silently, since silent skips would distort every downstream confidence.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction has empty id")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %s has no date", t.ID)
	}
	return nil
}

// IsExpense reports whether the transaction is an expense (positive amount).
func (t *Transaction) IsExpense() bool { return t.Amount > 0 }

// IsIncome reports whether the transaction is income (negative amount).
func (t *Transaction) IsIncome() bool { return t.Amount < 0 }

// Merchant returns the merchant name, or "Unknown" when the feed omitted it.
func (t *Transaction) Merchant() string {
	if t.MerchantName == "" {
		return "Unknown"
	}
	return t.MerchantName
}

// Category returns the primary category, falling back to the detailed one.
func (t *Transaction) Category() string {
	if t.CategoryPrimary != "" {
		return t.CategoryPrimary
	}
	return t.CategoryDetailed
}
