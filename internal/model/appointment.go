package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a scheduled visit between a doctor and a patient.
type Appointment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	PatientMRN string    `json:"patient_mrn" db:"patient_mrn"`
	DoctorID   uuid.UUID `json:"doctor_id" db:"doctor_id"`
	Detail     string    `json:"detail" db:"detail"`
	StartTime  time.Time `json:"start_time" db:"start_time"`
	EndTime    time.Time `json:"end_time" db:"end_time"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type CreateAppointmentRequest struct {
	Detail    string    `json:"detail" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Detail    *string    `json:"detail"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}
