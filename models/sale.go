package models

import "time"

// Sale is a single produce sale record owned by one user.
//
// TotalPrice is a derived field: it is always recomputed on the server as
// WeightKg × PricePerKg via [ComputeTotalPrice] on both create and update.
// A client-supplied total is never trusted.
type Sale struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// Date is the calendar day of the sale in "YYYY-MM-DD" form.
	// Stored as text so that monthly/yearly rollups can use prefix matching.
	Date string `json:"date"`

	// WeightKg is the sold weight in kilograms. Must be positive.
	WeightKg float64 `json:"weight_kg"`

	// PricePerKg is the unit price. Must be positive.
	PricePerKg float64 `json:"price_per_kg"`

	// TotalPrice is WeightKg × PricePerKg, computed server-side.
	TotalPrice float64 `json:"total_price"`

	// CustomerName identifies the buyer.
	CustomerName string `json:"customer_name"`

	// ImageKey is the object-store key of the receipt photo, empty when the
	// sale has no attachment. The blob under this key must never outlive the
	// row that references it.
	ImageKey string `json:"image_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ComputeTotalPrice derives the stored total for a sale.
// Both create and update paths go through this single function so the
// monetary invariant total = weight × unit price cannot drift between them.
func ComputeTotalPrice(weightKg, pricePerKg float64) float64 {
	return weightKg * pricePerKg
}

// TableName returns the name of the database table
// associated with the Sale model.
func (s Sale) TableName() string {
	return "sales"
}
