package models

import "time"

// Note is a freeform journal entry owned by one user. Content may embed
// attachment references as inline markers pointing at uploaded images.
type Note struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Date is the calendar day the note refers to, "YYYY-MM-DD".
	Date string `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
