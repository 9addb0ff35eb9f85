package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	// DoctorRepository handles doctor account persistence
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
		GetByNameAndPhone(ctx context.Context, firstName, lastName, phone string) (*model.Doctor, error)
		UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	}

	// PatientRepository handles patient records and the doctor-patient
	// assignment relation.
	PatientRepository interface {
		// Create inserts the patient and assigns the creating doctor in
		// one transaction.
		Create(ctx context.Context, patient *model.Patient, creatorID uuid.UUID) error
		Get(ctx context.Context, mrn string) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Patient, error)
		Assign(ctx context.Context, doctorID uuid.UUID, mrn string) error
		IsAssigned(ctx context.Context, doctorID uuid.UUID, mrn string) (bool, error)
		ListAssignments(ctx context.Context, mrn string) ([]*model.Assignment, error)
	}

	NoteRepository interface {
		Create(ctx context.Context, note *model.Note) error
		Get(ctx context.Context, id uuid.UUID) (*model.Note, error)
		ListByPatient(ctx context.Context, mrn string) ([]*model.Note, error)
		Update(ctx context.Context, note *model.Note) error
		SoftDelete(ctx context.Context, id uuid.UUID) error
		PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, apt *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		ListByPatient(ctx context.Context, mrn string) ([]*model.Appointment, error)
		ListByDoctor(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*model.Appointment, error)
		Update(ctx context.Context, apt *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListStartingBetween(ctx context.Context, from, to time.Time) ([]*model.Appointment, error)
	}

	ExaminationRepository interface {
		Create(ctx context.Context, exam *model.Examination) error
		ListByPatient(ctx context.Context, mrn string) ([]*model.Examination, error)
	}

	HistoryRepository interface {
		Create(ctx context.Context, history *model.MedicalHistory) error
		ListByPatient(ctx context.Context, mrn string) ([]*model.MedicalHistory, error)
		Get(ctx context.Context, id uuid.UUID) (*model.MedicalHistory, error)
		CreateLabResult(ctx context.Context, result *model.LabResult) error
		ListLabResults(ctx context.Context, historyID uuid.UUID) ([]*model.LabResult, error)
	}
)
