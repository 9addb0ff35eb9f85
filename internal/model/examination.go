package model

import (
	"time"

	"github.com/google/uuid"
)

// Examination represents a clinical examination performed on a patient.
type Examination struct {
	ID         uuid.UUID `json:"id" db:"id"`
	PatientMRN string    `json:"patient_mrn" db:"patient_mrn"`
	DoctorID   uuid.UUID `json:"doctor_id" db:"doctor_id"`
	Title      string    `json:"title" db:"title"`
	ExamDate   time.Time `json:"exam_date" db:"exam_date"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateExaminationRequest struct {
	Title    string    `json:"title" binding:"required"`
	ExamDate time.Time `json:"exam_date" binding:"required"`
}
