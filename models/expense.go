package models

import "time"

// Expense is a single expense record owned by one user.
type Expense struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// Date is the calendar day of the expense in "YYYY-MM-DD" form.
	Date string `json:"date"`

	// ItemName names what the money was spent on.
	ItemName string `json:"item_name"`

	// Amount is the expense amount. Must be positive.
	Amount float64 `json:"amount"`

	// Category is an optional free-text grouping label.
	Category string `json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}
