package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

type noteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `
		INSERT INTO notes (id, patient_mrn, doctor_id, title, content, category, created_at, last_modified, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)
	`
	note.CreatedAt = time.Now()
	note.LastModified = note.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		note.ID,
		note.PatientMRN,
		note.DoctorID,
		note.Title,
		note.Content,
		note.Category,
		note.CreatedAt,
		note.LastModified,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *noteRepository) Get(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	query := `SELECT * FROM notes WHERE id = $1 AND deleted = false`
	var note model.Note
	err := r.db.GetContext(ctx, &note, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("note", err)
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

func (r *noteRepository) ListByPatient(ctx context.Context, mrn string) ([]*model.Note, error) {
	query := `SELECT * FROM notes WHERE patient_mrn = $1 AND deleted = false ORDER BY created_at`
	notes := []*model.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, mrn); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Update touches only the mutable fields. Author and patient references
// are fixed at creation.
func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	query := `
		UPDATE notes SET title = $1, content = $2, category = $3, last_modified = $4
		WHERE id = $5 AND deleted = false
	`
	note.LastModified = time.Now()
	res, err := r.db.ExecContext(ctx, query, note.Title, note.Content, note.Category, note.LastModified, note.ID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("note", nil)
	}
	return nil
}

func (r *noteRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notes SET deleted = true, last_modified = $1 WHERE id = $2 AND deleted = false`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("note", nil)
	}
	return nil
}

func (r *noteRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM notes WHERE deleted = true AND last_modified < $1`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge notes: %w", err)
	}
	return res.RowsAffected()
}
