package model

import (
	"time"

	"github.com/google/uuid"
)

// Note category constants
const (
	NoteCategoryConsult   = "consult"
	NoteCategoryRadiology = "radiology"
	NoteCategorySurgery   = "surgery"
	NoteCategoryOther     = "other"
)

// Note represents a medical note authored by a doctor on a patient.
// The author and patient references never change after creation.
type Note struct {
	ID           uuid.UUID `json:"id" db:"id"`
	PatientMRN   string    `json:"patient_mrn" db:"patient_mrn"`
	DoctorID     uuid.UUID `json:"doctor_id" db:"doctor_id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	Category     string    `json:"category" db:"category"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	LastModified time.Time `json:"last_modified" db:"last_modified"`
	Deleted      bool      `json:"deleted" db:"deleted"`
}

type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"omitempty,notecategory"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Content  *string `json:"content"`
	Category *string `json:"category" binding:"omitempty,notecategory"`
}
