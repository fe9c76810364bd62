package models

// ExpenseRequest is the inbound JSON body for creating or updating an
// expense. Field names follow the client wire format; rows are returned
// using the [Expense] shape.
type ExpenseRequest struct {
	Date     string  `json:"date"`
	ItemName string  `json:"itemName"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// Expense converts the request body into the domain model owned by userID.
func (r ExpenseRequest) Expense(userID int64) Expense {
	return Expense{
		UserID:   userID,
		Date:     r.Date,
		ItemName: r.ItemName,
		Amount:   r.Amount,
		Category: r.Category,
	}
}
