package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/utils"
	"github.com/MKhiriev/farm-ledger/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.UserID = userID

	created, err := h.services.NoteService.CreateNote(ctx, note)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Success: true, ID: created.ID}, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), userID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK) //nolint:errcheck
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query().Get("q")

	notes, err := h.services.NoteService.SearchNotes(r.Context(), userID, query)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), userID, noteID)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.ID = noteID
	note.UserID = userID

	if _, err := h.services.NoteService.UpdateNote(ctx, note); err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := tenantID(w, r)
	if !ok {
		return
	}

	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		respondRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK) //nolint:errcheck
}
