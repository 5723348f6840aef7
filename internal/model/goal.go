package model

import "time"

// Goal is a user savings target. TargetDate may be zero, in which case no
// forecast can be produced.
type Goal struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	TargetDate    time.Time `json:"target_date,omitempty"`
}

// GoalForecast is the feasibility projection for one goal.
type GoalForecast struct {
	OnTrack                bool    `json:"on_track"`
	Message                string  `json:"message"`
	RequiredMonthlySavings float64 `json:"required_monthly_savings,omitempty"`
	EstimatedCapacity      float64 `json:"estimated_capacity,omitempty"`
	Confidence             float64 `json:"confidence"`
}
