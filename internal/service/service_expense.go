package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/models"
)

// expenseService is the concrete implementation of ExpenseService.
type expenseService struct {
	expenseRepository store.ExpenseRepository
	logger            *logger.Logger
}

// NewExpenseService constructs an ExpenseService over the given repository.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		logger:            logger,
	}
}

func validateExpense(expense models.Expense) error {
	if expense.ItemName == "" {
		return ErrInvalidDataProvided
	}
	if expense.Amount <= 0 {
		return ErrInvalidDataProvided
	}
	if !validDate(expense.Date) {
		return ErrInvalidDataProvided
	}

	return nil
}

// CreateExpense validates and persists a new expense.
func (e *expenseService) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if err := validateExpense(expense); err != nil {
		log.Error().Int64("user_id", expense.UserID).Msg("invalid expense data provided")
		return models.Expense{}, err
	}

	created, err := e.expenseRepository.CreateExpense(ctx, expense)
	if err != nil {
		log.Err(err).Int64("user_id", expense.UserID).Msg("expense creation ended with error")
		return models.Expense{}, fmt.Errorf("expense creation ended with error: %w", err)
	}

	return created, nil
}

// GetExpense returns the expense identified by (userID, expenseID).
func (e *expenseService) GetExpense(ctx context.Context, userID, expenseID int64) (models.Expense, error) {
	expense, err := e.expenseRepository.GetExpense(ctx, userID, expenseID)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense lookup ended with error: %w", err)
	}

	return expense, nil
}

// ListExpenses returns all of the user's expenses, newest first.
func (e *expenseService) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	expenses, err := e.expenseRepository.ListExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("expenses listing ended with error: %w", err)
	}

	return expenses, nil
}

// UpdateExpense validates and persists new field values for an existing
// expense.
func (e *expenseService) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if err := validateExpense(expense); err != nil {
		log.Error().Int64("user_id", expense.UserID).Int64("expense_id", expense.ID).Msg("invalid expense data provided")
		return models.Expense{}, err
	}

	updated, err := e.expenseRepository.UpdateExpense(ctx, expense)
	if err != nil {
		log.Err(err).Int64("user_id", expense.UserID).Int64("expense_id", expense.ID).Msg("expense update ended with error")
		return models.Expense{}, fmt.Errorf("expense update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteExpense removes the expense identified by (userID, expenseID).
func (e *expenseService) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	if err := e.expenseRepository.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("expense deletion ended with error: %w", err)
	}

	return nil
}

// ExpensesSummary returns the daily/monthly/yearly/all-time rollups anchored
// on the current UTC day.
func (e *expenseService) ExpensesSummary(ctx context.Context, userID int64) (models.ExpensesSummary, error) {
	summary, err := e.expenseRepository.ExpensesSummary(ctx, userID, today())
	if err != nil {
		return models.ExpensesSummary{}, fmt.Errorf("expenses summary ended with error: %w", err)
	}

	return summary, nil
}
