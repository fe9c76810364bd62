package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/models"
)

// expenseRepository is the PostgreSQL-backed implementation of
// [ExpenseRepository].
type expenseRepository struct {
	*DB
	logger *logger.Logger
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		DB:     db,
		logger: logger,
	}
}

// scanExpense reads one expense row. category is nullable in the schema; a
// NULL maps to an empty Category.
func scanExpense(row interface{ Scan(...any) error }) (models.Expense, error) {
	var expense models.Expense
	var category sql.NullString

	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Date,
		&expense.ItemName,
		&expense.Amount,
		&category,
		&expense.CreatedAt,
	)
	if err != nil {
		return models.Expense{}, err
	}

	expense.Category = category.String
	return expense, nil
}

func nullableCategory(category string) sql.NullString {
	return sql.NullString{String: category, Valid: category != ""}
}

// CreateExpense persists a new expense row and returns it with
// server-assigned fields (ID, CreatedAt).
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createExpense,
		expense.UserID, expense.Date, expense.ItemName, expense.Amount, nullableCategory(expense.Category))

	created, err := scanExpense(row)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.CreateExpense").
			Int64("user_id", expense.UserID).
			Msg("failed to insert expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetExpense retrieves a single expense owned by userID.
// Returns [ErrRecordNotFound] when no such row exists for that owner.
func (r *expenseRepository) GetExpense(ctx context.Context, userID, expenseID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getExpense, expenseID, userID)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*expenseRepository.GetExpense").
			Int64("user_id", userID).
			Int64("expense_id", expenseID).
			Msg("failed to query expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expense, nil
}

// ListExpenses returns all expenses owned by the user ordered by date then
// creation time, newest first.
func (r *expenseRepository) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listExpenses, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.ListExpenses").
			Int64("user_id", userID).
			Msg("failed to execute query for listing expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, 50)

	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*expenseRepository.ListExpenses").
				Int64("user_id", userID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		expenses = append(expenses, expense)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*expenseRepository.ListExpenses").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return expenses, nil
}

// UpdateExpense replaces all mutable fields of the expense identified by
// (expense.ID, expense.UserID) and returns the updated row.
// Returns [ErrRecordNotFound] when no row matches that owner.
func (r *expenseRepository) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateExpense,
		expense.Date, expense.ItemName, expense.Amount, nullableCategory(expense.Category),
		expense.ID, expense.UserID)

	updated, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*expenseRepository.UpdateExpense").
			Int64("user_id", expense.UserID).
			Int64("expense_id", expense.ID).
			Msg("failed to update expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteExpense removes the expense identified by (expenseID, userID).
// Returns [ErrRecordNotFound] when no row matches that owner.
func (r *expenseRepository) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteExpense, expenseID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.DeleteExpense").
			Int64("user_id", userID).
			Int64("expense_id", expenseID).
			Msg("failed to delete expense")
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

// ExpensesSummary computes the four independent rollups for the user around
// the given day ("YYYY-MM-DD"). COALESCE in the queries guarantees zero sums
// for empty buckets.
func (r *expenseRepository) ExpensesSummary(ctx context.Context, userID int64, day string) (models.ExpensesSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.ExpensesSummary

	scanBucket := func(query string, args ...any) (models.ExpensesBucket, error) {
		var bucket models.ExpensesBucket
		row := r.DB.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&bucket.TotalExpenses); err != nil {
			log.Err(err).
				Str("func", "*expenseRepository.ExpensesSummary").
				Int64("user_id", userID).
				Msg("failed to scan summary bucket")
			return models.ExpensesBucket{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return bucket, nil
	}

	month := day[:7] // YYYY-MM
	year := day[:4]  // YYYY

	var err error
	if summary.Daily, err = scanBucket(expensesSummaryForDay, userID, day); err != nil {
		return models.ExpensesSummary{}, err
	}
	if summary.Monthly, err = scanBucket(expensesSummaryForPrefix, userID, month+"%"); err != nil {
		return models.ExpensesSummary{}, err
	}
	if summary.Yearly, err = scanBucket(expensesSummaryForPrefix, userID, year+"%"); err != nil {
		return models.ExpensesSummary{}, err
	}
	if summary.AllTime, err = scanBucket(expensesSummaryAllTime, userID); err != nil {
		return models.ExpensesSummary{}, err
	}

	return summary, nil
}
