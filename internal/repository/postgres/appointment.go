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

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_mrn, doctor_id, detail, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	apt.CreatedAt = time.Now()
	apt.UpdatedAt = apt.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		apt.ID,
		apt.PatientMRN,
		apt.DoctorID,
		apt.Detail,
		apt.StartTime,
		apt.EndTime,
		apt.CreatedAt,
		apt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`
	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &apt, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, mrn string) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE patient_mrn = $1 ORDER BY start_time`
	apts := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &apts, query, mrn); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return apts, nil
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT * FROM appointments
		WHERE doctor_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time
	`
	apts := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &apts, query, doctorID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return apts, nil
}

func (r *appointmentRepository) Update(ctx context.Context, apt *model.Appointment) error {
	query := `
		UPDATE appointments SET detail = $1, start_time = $2, end_time = $3, updated_at = $4
		WHERE id = $5
	`
	apt.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, apt.Detail, apt.StartTime, apt.EndTime, apt.UpdatedAt, apt.ID)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time`
	apts := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &apts, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
	}
	return apts, nil
}
