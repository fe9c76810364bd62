package service

import (
	"context"

	"github.com/MKhiriev/farm-ledger/models"
)

// AuthService handles user registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SaleService manages sale records and their receipt photos. Create requires
// an image; update accepts an optional replacement.
type SaleService interface {
	CreateSale(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error)
	GetSale(ctx context.Context, userID, saleID int64) (models.Sale, error)
	ListSales(ctx context.Context, userID int64) ([]models.Sale, error)
	UpdateSale(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error)
	DeleteSale(ctx context.Context, userID, saleID int64) error
	SalesSummary(ctx context.Context, userID int64) (models.SalesSummary, error)
}

// NoteService manages journal notes including substring search.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// ExpenseService manages expense records and their time-bucketed rollups.
type ExpenseService interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	GetExpense(ctx context.Context, userID, expenseID int64) (models.Expense, error)
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID int64) error
	ExpensesSummary(ctx context.Context, userID int64) (models.ExpensesSummary, error)
}

// BlobService uploads standalone note images and serves stored images back.
type BlobService interface {
	UploadNoteImage(ctx context.Context, upload models.ImageUpload) (string, error)
	FetchImage(ctx context.Context, key string) (models.Blob, error)
}
