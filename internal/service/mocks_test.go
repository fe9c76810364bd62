// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/farm-ledger/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.SaleRepository
// ─────────────────────────────────────────────

type mockSaleRepository struct {
	createSaleFn   func(ctx context.Context, sale models.Sale) (models.Sale, error)
	getSaleFn      func(ctx context.Context, userID, saleID int64) (models.Sale, error)
	listSalesFn    func(ctx context.Context, userID int64) ([]models.Sale, error)
	updateSaleFn   func(ctx context.Context, sale models.Sale) (models.Sale, error)
	deleteSaleFn   func(ctx context.Context, userID, saleID int64) error
	salesSummaryFn func(ctx context.Context, userID int64, day string) (models.SalesSummary, error)
}

func (m *mockSaleRepository) CreateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if m.createSaleFn != nil {
		return m.createSaleFn(ctx, sale)
	}
	return sale, nil
}

func (m *mockSaleRepository) GetSale(ctx context.Context, userID, saleID int64) (models.Sale, error) {
	if m.getSaleFn != nil {
		return m.getSaleFn(ctx, userID, saleID)
	}
	return models.Sale{}, nil
}

func (m *mockSaleRepository) ListSales(ctx context.Context, userID int64) ([]models.Sale, error) {
	if m.listSalesFn != nil {
		return m.listSalesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSaleRepository) UpdateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if m.updateSaleFn != nil {
		return m.updateSaleFn(ctx, sale)
	}
	return sale, nil
}

func (m *mockSaleRepository) DeleteSale(ctx context.Context, userID, saleID int64) error {
	if m.deleteSaleFn != nil {
		return m.deleteSaleFn(ctx, userID, saleID)
	}
	return nil
}

func (m *mockSaleRepository) SalesSummary(ctx context.Context, userID int64, day string) (models.SalesSummary, error) {
	if m.salesSummaryFn != nil {
		return m.salesSummaryFn(ctx, userID, day)
	}
	return models.SalesSummary{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createNoteFn  func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn     func(ctx context.Context, userID, noteID int64) (models.Note, error)
	listNotesFn   func(ctx context.Context, userID int64) ([]models.Note, error)
	searchNotesFn func(ctx context.Context, userID int64, query string) ([]models.Note, error)
	updateNoteFn  func(ctx context.Context, note models.Note) (models.Note, error)
	deleteNoteFn  func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, userID, noteID)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNoteRepository) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	if m.searchNotesFn != nil {
		return m.searchNotesFn(ctx, userID, query)
	}
	return nil, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.updateNoteFn != nil {
		return m.updateNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if m.deleteNoteFn != nil {
		return m.deleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ExpenseRepository
// ─────────────────────────────────────────────

type mockExpenseRepository struct {
	createExpenseFn   func(ctx context.Context, expense models.Expense) (models.Expense, error)
	getExpenseFn      func(ctx context.Context, userID, expenseID int64) (models.Expense, error)
	listExpensesFn    func(ctx context.Context, userID int64) ([]models.Expense, error)
	updateExpenseFn   func(ctx context.Context, expense models.Expense) (models.Expense, error)
	deleteExpenseFn   func(ctx context.Context, userID, expenseID int64) error
	expensesSummaryFn func(ctx context.Context, userID int64, day string) (models.ExpensesSummary, error)
}

func (m *mockExpenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(ctx, expense)
	}
	return expense, nil
}

func (m *mockExpenseRepository) GetExpense(ctx context.Context, userID, expenseID int64) (models.Expense, error) {
	if m.getExpenseFn != nil {
		return m.getExpenseFn(ctx, userID, expenseID)
	}
	return models.Expense{}, nil
}

func (m *mockExpenseRepository) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockExpenseRepository) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(ctx, expense)
	}
	return expense, nil
}

func (m *mockExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ctx, userID, expenseID)
	}
	return nil
}

func (m *mockExpenseRepository) ExpensesSummary(ctx context.Context, userID int64, day string) (models.ExpensesSummary, error) {
	if m.expensesSummaryFn != nil {
		return m.expensesSummaryFn(ctx, userID, day)
	}
	return models.ExpensesSummary{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.BlobStore
// ─────────────────────────────────────────────

type mockBlobStore struct {
	putFn    func(ctx context.Context, key, contentType string, data []byte) error
	getFn    func(ctx context.Context, key string) (models.Blob, error)
	deleteFn func(ctx context.Context, key string) error
}

func (m *mockBlobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if m.putFn != nil {
		return m.putFn(ctx, key, contentType, data)
	}
	return nil
}

func (m *mockBlobStore) Get(ctx context.Context, key string) (models.Blob, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return models.Blob{}, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}
