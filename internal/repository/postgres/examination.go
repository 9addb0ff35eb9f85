package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
)

type examinationRepository struct {
	db *sqlx.DB
}

func NewExaminationRepository(db *sqlx.DB) repository.ExaminationRepository {
	return &examinationRepository{db: db}
}

func (r *examinationRepository) Create(ctx context.Context, exam *model.Examination) error {
	query := `
		INSERT INTO examinations (id, patient_mrn, doctor_id, title, exam_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	exam.CreatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		exam.ID,
		exam.PatientMRN,
		exam.DoctorID,
		exam.Title,
		exam.ExamDate,
		exam.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create examination: %w", err)
	}
	return nil
}

func (r *examinationRepository) ListByPatient(ctx context.Context, mrn string) ([]*model.Examination, error) {
	query := `SELECT * FROM examinations WHERE patient_mrn = $1 ORDER BY exam_date`
	exams := []*model.Examination{}
	if err := r.db.SelectContext(ctx, &exams, query, mrn); err != nil {
		return nil, fmt.Errorf("failed to list examinations: %w", err)
	}
	return exams, nil
}
