package http

import (
	"context"

	"github.com/MKhiriev/farm-ledger/internal/config"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/service"
	"github.com/MKhiriev/farm-ledger/models"
)

// Function-field fakes for the service layer. A nil function means the call
// succeeds with zero values; tests override only what they assert on.

type fakeAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if f.registerUserFn != nil {
		return f.registerUserFn(ctx, user)
	}
	return user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, user)
	}
	return user, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed", UserID: user.UserID, Username: user.Username}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type fakeSaleService struct {
	createSaleFn   func(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error)
	getSaleFn      func(ctx context.Context, userID, saleID int64) (models.Sale, error)
	listSalesFn    func(ctx context.Context, userID int64) ([]models.Sale, error)
	updateSaleFn   func(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error)
	deleteSaleFn   func(ctx context.Context, userID, saleID int64) error
	salesSummaryFn func(ctx context.Context, userID int64) (models.SalesSummary, error)
}

func (f *fakeSaleService) CreateSale(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error) {
	if f.createSaleFn != nil {
		return f.createSaleFn(ctx, sale, image)
	}
	return sale, nil
}

func (f *fakeSaleService) GetSale(ctx context.Context, userID, saleID int64) (models.Sale, error) {
	if f.getSaleFn != nil {
		return f.getSaleFn(ctx, userID, saleID)
	}
	return models.Sale{}, nil
}

func (f *fakeSaleService) ListSales(ctx context.Context, userID int64) ([]models.Sale, error) {
	if f.listSalesFn != nil {
		return f.listSalesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeSaleService) UpdateSale(ctx context.Context, sale models.Sale, image *models.ImageUpload) (models.Sale, error) {
	if f.updateSaleFn != nil {
		return f.updateSaleFn(ctx, sale, image)
	}
	return sale, nil
}

func (f *fakeSaleService) DeleteSale(ctx context.Context, userID, saleID int64) error {
	if f.deleteSaleFn != nil {
		return f.deleteSaleFn(ctx, userID, saleID)
	}
	return nil
}

func (f *fakeSaleService) SalesSummary(ctx context.Context, userID int64) (models.SalesSummary, error) {
	if f.salesSummaryFn != nil {
		return f.salesSummaryFn(ctx, userID)
	}
	return models.SalesSummary{}, nil
}

type fakeNoteService struct {
	createNoteFn  func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn     func(ctx context.Context, userID, noteID int64) (models.Note, error)
	listNotesFn   func(ctx context.Context, userID int64) ([]models.Note, error)
	searchNotesFn func(ctx context.Context, userID int64, query string) ([]models.Note, error)
	updateNoteFn  func(ctx context.Context, note models.Note) (models.Note, error)
	deleteNoteFn  func(ctx context.Context, userID, noteID int64) error
}

func (f *fakeNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if f.createNoteFn != nil {
		return f.createNoteFn(ctx, note)
	}
	return note, nil
}

func (f *fakeNoteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if f.getNoteFn != nil {
		return f.getNoteFn(ctx, userID, noteID)
	}
	return models.Note{}, nil
}

func (f *fakeNoteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if f.listNotesFn != nil {
		return f.listNotesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeNoteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	if f.searchNotesFn != nil {
		return f.searchNotesFn(ctx, userID, query)
	}
	return nil, nil
}

func (f *fakeNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if f.updateNoteFn != nil {
		return f.updateNoteFn(ctx, note)
	}
	return note, nil
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if f.deleteNoteFn != nil {
		return f.deleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

type fakeExpenseService struct {
	createExpenseFn   func(ctx context.Context, expense models.Expense) (models.Expense, error)
	getExpenseFn      func(ctx context.Context, userID, expenseID int64) (models.Expense, error)
	listExpensesFn    func(ctx context.Context, userID int64) ([]models.Expense, error)
	updateExpenseFn   func(ctx context.Context, expense models.Expense) (models.Expense, error)
	deleteExpenseFn   func(ctx context.Context, userID, expenseID int64) error
	expensesSummaryFn func(ctx context.Context, userID int64) (models.ExpensesSummary, error)
}

func (f *fakeExpenseService) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if f.createExpenseFn != nil {
		return f.createExpenseFn(ctx, expense)
	}
	return expense, nil
}

func (f *fakeExpenseService) GetExpense(ctx context.Context, userID, expenseID int64) (models.Expense, error) {
	if f.getExpenseFn != nil {
		return f.getExpenseFn(ctx, userID, expenseID)
	}
	return models.Expense{}, nil
}

func (f *fakeExpenseService) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	if f.listExpensesFn != nil {
		return f.listExpensesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeExpenseService) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if f.updateExpenseFn != nil {
		return f.updateExpenseFn(ctx, expense)
	}
	return expense, nil
}

func (f *fakeExpenseService) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	if f.deleteExpenseFn != nil {
		return f.deleteExpenseFn(ctx, userID, expenseID)
	}
	return nil
}

func (f *fakeExpenseService) ExpensesSummary(ctx context.Context, userID int64) (models.ExpensesSummary, error) {
	if f.expensesSummaryFn != nil {
		return f.expensesSummaryFn(ctx, userID)
	}
	return models.ExpensesSummary{}, nil
}

type fakeBlobService struct {
	uploadNoteImageFn func(ctx context.Context, upload models.ImageUpload) (string, error)
	fetchImageFn      func(ctx context.Context, key string) (models.Blob, error)
}

func (f *fakeBlobService) UploadNoteImage(ctx context.Context, upload models.ImageUpload) (string, error) {
	if f.uploadNoteImageFn != nil {
		return f.uploadNoteImageFn(ctx, upload)
	}
	return "note-1-abc.jpg", nil
}

func (f *fakeBlobService) FetchImage(ctx context.Context, key string) (models.Blob, error) {
	if f.fetchImageFn != nil {
		return f.fetchImageFn(ctx, key)
	}
	return models.Blob{}, nil
}

// authedParseToken is a ParseToken stub that accepts the literal token
// "good-token" as user 7 and rejects everything else.
func authedParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "good-token" {
		return models.Token{UserID: 7, Username: "farmer"}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// newTestHandler builds a Handler over the given fakes (nil fields are
// replaced with permissive defaults) and returns its router.
func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{parseTokenFn: authedParseToken}
	}
	if services.SaleService == nil {
		services.SaleService = &fakeSaleService{}
	}
	if services.NoteService == nil {
		services.NoteService = &fakeNoteService{}
	}
	if services.ExpenseService == nil {
		services.ExpenseService = &fakeExpenseService{}
	}
	if services.BlobService == nil {
		services.BlobService = &fakeBlobService{}
	}

	cfg := config.App{PublicBaseURL: "http://localhost:8080"}
	return NewHandler(services, cfg, logger.NewLogger("test"))
}
