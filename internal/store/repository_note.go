package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/config"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
//
// List and search queries are assembled with squirrel through
// [noteQueryBuilder]; whether search matches case-insensitively is fixed by
// configuration at construction time rather than left to the SQL engine.
type noteRepository struct {
	*DB
	queries noteQueryBuilder
	logger  *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, cfg config.DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Bool("case_sensitive_search", cfg.CaseSensitiveSearch).Msg("creating note repository")
	return &noteRepository{
		DB:      db,
		queries: noteQueryBuilder{caseInsensitive: !cfg.CaseSensitiveSearch},
		logger:  logger,
	}
}

func scanNote(row interface{ Scan(...any) error }) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Date,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}

// CreateNote persists a new note and returns it with server-assigned fields
// (ID, CreatedAt, UpdatedAt).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNote, note.UserID, note.Title, note.Content, note.Date)

	created, err := scanNote(row)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetNote retrieves a single note owned by userID.
// Returns [ErrRecordNotFound] when no such row exists for that owner.
func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getNote, noteID, userID)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.GetNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to query note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// ListNotes returns all notes owned by the user ordered by date then
// creation time, newest first.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	query, args, err := r.queries.list(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, userID, query, args)
}

// SearchNotes returns the user's notes whose title OR content contains the
// query substring, newest first. An empty match set is a valid empty slice,
// never an error. The caller is responsible for short-circuiting an empty
// query string.
func (r *noteRepository) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	sqlQuery, args, err := r.queries.search(userID, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, userID, sqlQuery, args)
}

func (r *noteRepository) queryNotes(ctx context.Context, userID int64, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.queryNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.queryNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.queryNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// UpdateNote replaces all mutable fields of the note identified by
// (note.ID, note.UserID), refreshes updated_at, and returns the updated row.
// Returns [ErrRecordNotFound] when no row matches that owner.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateNote, note.Title, note.Content, note.Date, note.ID, note.UserID)

	updated, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("user_id", note.UserID).
			Int64("note_id", note.ID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by (noteID, userID).
// Returns [ErrRecordNotFound] when no row matches that owner.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to delete note")
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
