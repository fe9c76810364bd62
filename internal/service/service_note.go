package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/models"
)

// noteService is the concrete implementation of NoteService.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService over the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func validateNote(note models.Note) error {
	if note.Title == "" || note.Content == "" {
		return ErrInvalidDataProvided
	}
	if !validDate(note.Date) {
		return ErrInvalidDataProvided
	}

	return nil
}

// CreateNote validates and persists a new note.
func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validateNote(note); err != nil {
		log.Error().Int64("user_id", note.UserID).Msg("invalid note data provided")
		return models.Note{}, err
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// GetNote returns the note identified by (userID, noteID).
func (n *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := n.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// ListNotes returns all of the user's notes, newest first.
func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notes listing ended with error: %w", err)
	}

	return notes, nil
}

// SearchNotes returns the user's notes whose title or content contains the
// query substring. An empty query matches nothing and short-circuits to an
// empty result without touching the database.
func (n *noteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	if query == "" {
		return []models.Note{}, nil
	}

	notes, err := n.noteRepository.SearchNotes(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("notes search ended with error: %w", err)
	}

	return notes, nil
}

// UpdateNote validates and persists new field values for an existing note.
func (n *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validateNote(note); err != nil {
		log.Error().Int64("user_id", note.UserID).Int64("note_id", note.ID).Msg("invalid note data provided")
		return models.Note{}, err
	}

	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Int64("note_id", note.ID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by (userID, noteID). Images the
// note referenced through upload keys are left in place: content markers are
// opaque to the server and other notes may reference the same image.
func (n *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
