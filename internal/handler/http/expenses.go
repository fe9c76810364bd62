package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/utils"
	"github.com/MKhiriev/farm-ledger/models"
)

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req models.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ExpenseService.CreateExpense(ctx, req.Expense(userID))
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Success: true, ID: created.ID}, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	expenses, err := h.services.ExpenseService.ListExpenses(r.Context(), userID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	expenseID, ok := idParam(w, r)
	if !ok {
		return
	}

	expense, err := h.services.ExpenseService.GetExpense(r.Context(), userID, expenseID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, expense, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	expenseID, ok := idParam(w, r)
	if !ok {
		return
	}

	var req models.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	expense := req.Expense(userID)
	expense.ID = expenseID

	if _, err := h.services.ExpenseService.UpdateExpense(ctx, expense); err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	expenseID, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.ExpenseService.DeleteExpense(r.Context(), userID, expenseID); err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) expensesSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	summary, err := h.services.ExpenseService.ExpensesSummary(r.Context(), userID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK) //nolint:errcheck
}
