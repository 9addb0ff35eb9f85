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

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts the patient and the creator's assignment row atomically,
// so a patient never exists without at least one assigned doctor.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient, creatorID uuid.UUID) error {
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		insertPatient := `
			INSERT INTO patients (mrn, phone, first_name, last_name, birth_date, gender, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := tx.ExecContext(ctx, insertPatient,
			patient.MRN,
			patient.Phone,
			patient.FirstName,
			patient.LastName,
			patient.BirthDate,
			patient.Gender,
			patient.CreatedAt,
			patient.UpdatedAt,
		); err != nil {
			if IsUniqueViolation(err, "patients_pkey") {
				return apperrors.Validation("patient with this MRN already exists")
			}
			return fmt.Errorf("failed to create patient: %w", err)
		}

		insertAssignment := `
			INSERT INTO doctor_patients (doctor_id, patient_mrn, created_at)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.ExecContext(ctx, insertAssignment, creatorID, patient.MRN, time.Now()); err != nil {
			return fmt.Errorf("failed to assign creating doctor: %w", err)
		}
		return nil
	})
}

func (r *patientRepository) Get(ctx context.Context, mrn string) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE mrn = $1`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, mrn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET phone = $1, first_name = $2, last_name = $3, birth_date = $4, gender = $5, updated_at = $6
		WHERE mrn = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		patient.Phone,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Gender,
		time.Now(),
		patient.MRN,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("patient", nil)
	}
	return nil
}

func (r *patientRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Patient, error) {
	query := `
		SELECT p.* FROM patients p
		JOIN doctor_patients dp ON dp.patient_mrn = p.mrn
		WHERE dp.doctor_id = $1
		ORDER BY p.created_at
	`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// Assign is idempotent: re-assigning an existing pair is a no-op.
func (r *patientRepository) Assign(ctx context.Context, doctorID uuid.UUID, mrn string) error {
	query := `
		INSERT INTO doctor_patients (doctor_id, patient_mrn, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (doctor_id, patient_mrn) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, doctorID, mrn, time.Now()); err != nil {
		return fmt.Errorf("failed to assign patient: %w", err)
	}
	return nil
}

func (r *patientRepository) IsAssigned(ctx context.Context, doctorID uuid.UUID, mrn string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM doctor_patients WHERE doctor_id = $1 AND patient_mrn = $2)`
	var assigned bool
	if err := r.db.GetContext(ctx, &assigned, query, doctorID, mrn); err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return assigned, nil
}

func (r *patientRepository) ListAssignments(ctx context.Context, mrn string) ([]*model.Assignment, error) {
	query := `SELECT * FROM doctor_patients WHERE patient_mrn = $1 ORDER BY created_at`
	assignments := []*model.Assignment{}
	if err := r.db.SelectContext(ctx, &assignments, query, mrn); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}
