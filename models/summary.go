package models

// SalesBucket is one time-bucketed sales rollup. Empty buckets carry zero
// sums, never nulls — COALESCE at the query level guarantees it.
type SalesBucket struct {
	TotalSales  float64 `json:"total_sales"`
	TotalWeight float64 `json:"total_weight"`
}

// SalesSummary aggregates sales for the four reporting windows.
// All four buckets are computed independently per request; there is no
// maintained incremental aggregate.
type SalesSummary struct {
	Daily   SalesBucket `json:"daily"`
	Monthly SalesBucket `json:"monthly"`
	Yearly  SalesBucket `json:"yearly"`
	AllTime SalesBucket `json:"allTime"`
}

// ExpensesBucket is one time-bucketed expense rollup.
type ExpensesBucket struct {
	TotalExpenses float64 `json:"total_expenses"`
}

// ExpensesSummary aggregates expenses for the four reporting windows.
type ExpensesSummary struct {
	Daily   ExpensesBucket `json:"daily"`
	Monthly ExpensesBucket `json:"monthly"`
	Yearly  ExpensesBucket `json:"yearly"`
	AllTime ExpensesBucket `json:"allTime"`
}
