package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/models"
)

// recentSalesLimit caps the sale listing to the newest records, matching the
// dashboard's "recent sales" table.
const recentSalesLimit = 20

// saleRepository is the PostgreSQL-backed implementation of [SaleRepository].
// Every read and mutation carries the owning user ID in its WHERE clause, so
// a row belonging to another user is reported as [ErrRecordNotFound] exactly
// like a row that never existed.
type saleRepository struct {
	*DB
	logger *logger.Logger
}

// NewSaleRepository constructs a [SaleRepository] backed by the provided
// database connection and logger.
func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	logger.Debug().Msg("creating sale repository")
	return &saleRepository{
		DB:     db,
		logger: logger,
	}
}

// scanSale reads one sale row. image_key is nullable in the schema; a NULL
// maps to an empty ImageKey.
func scanSale(row interface{ Scan(...any) error }) (models.Sale, error) {
	var sale models.Sale
	var imageKey sql.NullString

	err := row.Scan(
		&sale.ID,
		&sale.UserID,
		&sale.Date,
		&sale.WeightKg,
		&sale.PricePerKg,
		&sale.TotalPrice,
		&sale.CustomerName,
		&imageKey,
		&sale.CreatedAt,
	)
	if err != nil {
		return models.Sale{}, err
	}

	sale.ImageKey = imageKey.String
	return sale, nil
}

// nullableKey converts an empty attachment key to a SQL NULL.
func nullableKey(key string) sql.NullString {
	return sql.NullString{String: key, Valid: key != ""}
}

// CreateSale persists a new sale row and returns it with server-assigned
// fields (ID, CreatedAt). TotalPrice must already be derived by the caller;
// the repository stores values verbatim.
func (r *saleRepository) CreateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createSale,
		sale.UserID, sale.Date, sale.WeightKg, sale.PricePerKg, sale.TotalPrice, sale.CustomerName, nullableKey(sale.ImageKey))

	created, err := scanSale(row)
	if err != nil {
		log.Err(err).
			Str("func", "*saleRepository.CreateSale").
			Int64("user_id", sale.UserID).
			Msg("failed to insert sale")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetSale retrieves a single sale owned by userID.
// Returns [ErrRecordNotFound] when no such row exists for that owner.
func (r *saleRepository) GetSale(ctx context.Context, userID, saleID int64) (models.Sale, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSale, saleID, userID)

	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*saleRepository.GetSale").
			Int64("user_id", userID).
			Int64("sale_id", saleID).
			Msg("failed to query sale")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sale, nil
}

// ListSales returns the newest sales for the user, ordered by date then
// creation time, capped at [recentSalesLimit]. An empty result is a valid
// empty slice, never an error.
func (r *saleRepository) ListSales(ctx context.Context, userID int64) ([]models.Sale, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listSales, userID, recentSalesLimit)
	if err != nil {
		log.Err(err).
			Str("func", "*saleRepository.ListSales").
			Int64("user_id", userID).
			Msg("failed to execute query for listing sales")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0, recentSalesLimit)

	for rows.Next() {
		sale, scanErr := scanSale(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*saleRepository.ListSales").
				Int64("user_id", userID).
				Msg("failed to scan sale row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		sales = append(sales, sale)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*saleRepository.ListSales").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sales, nil
}

// UpdateSale replaces all mutable fields of the sale identified by
// (sale.ID, sale.UserID) and returns the updated row.
// Returns [ErrRecordNotFound] when no row matches that owner.
func (r *saleRepository) UpdateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateSale,
		sale.Date, sale.WeightKg, sale.PricePerKg, sale.TotalPrice, sale.CustomerName, nullableKey(sale.ImageKey),
		sale.ID, sale.UserID)

	updated, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*saleRepository.UpdateSale").
			Int64("user_id", sale.UserID).
			Int64("sale_id", sale.ID).
			Msg("failed to update sale")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteSale removes the sale identified by (saleID, userID).
// Returns [ErrRecordNotFound] when no row matches that owner.
func (r *saleRepository) DeleteSale(ctx context.Context, userID, saleID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteSale, saleID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*saleRepository.DeleteSale").
			Int64("user_id", userID).
			Int64("sale_id", saleID).
			Msg("failed to delete sale")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// SalesSummary computes the four independent rollups for the user around the
// given day ("YYYY-MM-DD"): exact-day, month-prefix, year-prefix and
// all-time. COALESCE in the queries guarantees zero sums for empty buckets.
func (r *saleRepository) SalesSummary(ctx context.Context, userID int64, day string) (models.SalesSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.SalesSummary

	scanBucket := func(query string, args ...any) (models.SalesBucket, error) {
		var bucket models.SalesBucket
		row := r.DB.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&bucket.TotalSales, &bucket.TotalWeight); err != nil {
			log.Err(err).
				Str("func", "*saleRepository.SalesSummary").
				Int64("user_id", userID).
				Msg("failed to scan summary bucket")
			return models.SalesBucket{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return bucket, nil
	}

	month := day[:7] // YYYY-MM
	year := day[:4]  // YYYY

	var err error
	if summary.Daily, err = scanBucket(salesSummaryForDay, userID, day); err != nil {
		return models.SalesSummary{}, err
	}
	if summary.Monthly, err = scanBucket(salesSummaryForPrefix, userID, month+"%"); err != nil {
		return models.SalesSummary{}, err
	}
	if summary.Yearly, err = scanBucket(salesSummaryForPrefix, userID, year+"%"); err != nil {
		return models.SalesSummary{}, err
	}
	if summary.AllTime, err = scanBucket(salesSummaryAllTime, userID); err != nil {
		return models.SalesSummary{}, err
	}

	return summary, nil
}
