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

type historyRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, history *model.MedicalHistory) error {
	query := `
		INSERT INTO medical_histories (id, patient_mrn, doctor_id, title, content, tags, history_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	history.CreatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		history.ID,
		history.PatientMRN,
		history.DoctorID,
		history.Title,
		history.Content,
		history.Tags,
		history.HistoryDate,
		history.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical history: %w", err)
	}
	return nil
}

func (r *historyRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicalHistory, error) {
	query := `SELECT * FROM medical_histories WHERE id = $1`
	var history model.MedicalHistory
	err := r.db.GetContext(ctx, &history, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("medical history", err)
		}
		return nil, fmt.Errorf("failed to get medical history: %w", err)
	}
	return &history, nil
}

func (r *historyRepository) ListByPatient(ctx context.Context, mrn string) ([]*model.MedicalHistory, error) {
	query := `SELECT * FROM medical_histories WHERE patient_mrn = $1 ORDER BY history_date`
	histories := []*model.MedicalHistory{}
	if err := r.db.SelectContext(ctx, &histories, query, mrn); err != nil {
		return nil, fmt.Errorf("failed to list medical histories: %w", err)
	}
	return histories, nil
}

func (r *historyRepository) CreateLabResult(ctx context.Context, result *model.LabResult) error {
	query := `
		INSERT INTO lab_results (history_id, patient_mrn, test_name, result_value, normal_range, unit, lab_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		result.HistoryID,
		result.PatientMRN,
		result.TestName,
		result.ResultValue,
		result.NormalRange,
		result.Unit,
		result.LabDate,
	).Scan(&result.ID)
	if err != nil {
		return fmt.Errorf("failed to create lab result: %w", err)
	}
	return nil
}

func (r *historyRepository) ListLabResults(ctx context.Context, historyID uuid.UUID) ([]*model.LabResult, error) {
	query := `SELECT * FROM lab_results WHERE history_id = $1 ORDER BY lab_date`
	results := []*model.LabResult{}
	if err := r.db.SelectContext(ctx, &results, query, historyID); err != nil {
		return nil, fmt.Errorf("failed to list lab results: %w", err)
	}
	return results, nil
}
