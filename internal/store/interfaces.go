package store

import (
	"context"

	"github.com/MKhiriev/farm-ledger/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SaleRepository persists sale records. Every method that reads or mutates a
// row takes the owning user ID and applies it in the SQL predicate: a row
// owned by someone else is indistinguishable from an absent row
// ([ErrRecordNotFound] either way).
type SaleRepository interface {
	CreateSale(ctx context.Context, sale models.Sale) (models.Sale, error)
	GetSale(ctx context.Context, userID, saleID int64) (models.Sale, error)
	ListSales(ctx context.Context, userID int64) ([]models.Sale, error)
	UpdateSale(ctx context.Context, sale models.Sale) (models.Sale, error)
	DeleteSale(ctx context.Context, userID, saleID int64) error
	SalesSummary(ctx context.Context, userID int64, day string) (models.SalesSummary, error)
}

// NoteRepository persists notes under the same owner-scoping contract as
// [SaleRepository].
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// ExpenseRepository persists expenses under the same owner-scoping contract
// as [SaleRepository].
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	GetExpense(ctx context.Context, userID, expenseID int64) (models.Expense, error)
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID int64) error
	ExpensesSummary(ctx context.Context, userID int64, day string) (models.ExpensesSummary, error)
}

// BlobStore is the narrow contract over the object store that keeps image
// blobs. Keys are caller-chosen and globally unique; Delete is idempotent.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (models.Blob, error)
	Delete(ctx context.Context, key string) error
}
