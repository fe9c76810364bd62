package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/models"
)

func newTestSaleRepo(t *testing.T) (*saleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &saleRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func saleRows(sales ...models.Sale) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "date", "weight_kg", "price_per_kg", "total_price", "customer_name", "image_key", "created_at",
	})
	for _, s := range sales {
		rows.AddRow(s.ID, s.UserID, s.Date, s.WeightKg, s.PricePerKg, s.TotalPrice, s.CustomerName, nullableKey(s.ImageKey), s.CreatedAt)
	}
	return rows
}

func TestCreateSale_Success(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()
	sale := models.Sale{
		UserID:       7,
		Date:         "2026-08-30",
		WeightKg:     12.5,
		PricePerKg:   4,
		TotalPrice:   50,
		CustomerName: "dairy co-op",
		ImageKey:     "1756500000000-abc.jpg",
	}

	want := sale
	want.ID = 3
	want.CreatedAt = time.Now()

	mock.ExpectQuery("INSERT INTO sales").
		WithArgs(sale.UserID, sale.Date, sale.WeightKg, sale.PricePerKg, sale.TotalPrice, sale.CustomerName, nullableKey(sale.ImageKey)).
		WillReturnRows(saleRows(want))

	created, err := repo.CreateSale(ctx, sale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
	if created.TotalPrice != 50 {
		t.Errorf("expected total 50, got %f", created.TotalPrice)
	}
	if created.ImageKey != sale.ImageKey {
		t.Errorf("expected image key %s, got %s", sale.ImageKey, created.ImageKey)
	}
}

func TestGetSale_OwnedByAnotherUser(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	// the WHERE clause matches on both id and user_id, so a foreign row
	// produces zero rows exactly like an absent one
	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs(int64(3), int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSale(ctx, 99, 3)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGetSale_NullImageKey(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "date", "weight_kg", "price_per_kg", "total_price", "customer_name", "image_key", "created_at",
	}).AddRow(3, 7, "2026-08-30", 12.5, 4.0, 50.0, "dairy co-op", nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(rows)

	sale, err := repo.GetSale(ctx, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.ImageKey != "" {
		t.Errorf("expected empty image key for NULL column, got %q", sale.ImageKey)
	}
}

func TestListSales_AppliesLimit(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs(int64(7), recentSalesLimit).
		WillReturnRows(saleRows(
			models.Sale{ID: 2, UserID: 7, Date: "2026-08-30"},
			models.Sale{ID: 1, UserID: 7, Date: "2026-08-29"},
		))

	sales, err := repo.ListSales(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if sales[0].ID != 2 {
		t.Errorf("expected newest sale first, got ID=%d", sales[0].ID)
	}
}

func TestListSales_Empty(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs(int64(7), recentSalesLimit).
		WillReturnRows(saleRows())

	sales, err := repo.ListSales(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sales == nil || len(sales) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", sales)
	}
}

func TestUpdateSale_NotFound(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()
	sale := models.Sale{ID: 3, UserID: 7, Date: "2026-08-30", WeightKg: 1, PricePerKg: 1, TotalPrice: 1, CustomerName: "x"}

	mock.ExpectQuery("UPDATE sales").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateSale(ctx, sale)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteSale_Success(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sales").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSale(ctx, 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSale_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sales").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSale(ctx, 7, 3)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSalesSummary_BucketPatterns(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	bucket := func(sales, weight float64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"coalesce", "coalesce"}).AddRow(sales, weight)
	}

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(7), "2026-08-30").
		WillReturnRows(bucket(50, 12.5))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(7), "2026-08%").
		WillReturnRows(bucket(120, 30))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(7), "2026%").
		WillReturnRows(bucket(700, 175))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(7)).
		WillReturnRows(bucket(900, 225))

	summary, err := repo.SalesSummary(ctx, 7, "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Daily.TotalSales != 50 {
		t.Errorf("expected daily total 50, got %f", summary.Daily.TotalSales)
	}
	if summary.Monthly.TotalWeight != 30 {
		t.Errorf("expected monthly weight 30, got %f", summary.Monthly.TotalWeight)
	}
	if summary.AllTime.TotalSales != 900 {
		t.Errorf("expected all-time total 900, got %f", summary.AllTime.TotalSales)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSalesSummary_EmptyBucketsAreZero(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	ctx := context.Background()

	for i := 0; i < 4; i++ {
		mock.ExpectQuery("SELECT COALESCE").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce", "coalesce"}).AddRow(0.0, 0.0))
	}

	summary, err := repo.SalesSummary(ctx, 7, "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Daily.TotalSales != 0 || summary.AllTime.TotalWeight != 0 {
		t.Errorf("expected zero-valued buckets, got %+v", summary)
	}
}
