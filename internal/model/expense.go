// Package model holds the plain data structures shared across the app.
package model

import "time"

// Expense is a single logged money movement.
// Immutable once created; removed only by explicit delete.
type Expense struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Category  Category  `json:"category"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"` // calendar date, local midnight
	CreatedAt time.Time `json:"createdAt"`
}

// Subscription is a recurring monthly charge.
type Subscription struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	DueDay    int       `json:"dueDay"` // 1-31; days past month-end bill on the last day
	Category  Category  `json:"category"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// DraftExpense is an unconfirmed parser-produced expense candidate.
// It is never persisted; the user either accepts it into an Expense
// or abandons it.
type DraftExpense struct {
	Amount     float64
	Category   Category
	Confidence int // 0-95
	Note       string
}
