package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record, keyed by medical record number.
type Patient struct {
	MRN       string    `json:"mrn" db:"mrn"`
	Phone     string    `json:"phone" db:"phone"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	Gender    string    `json:"gender" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Assignment is the doctor-patient join row. A (doctor, patient) pair
// appears at most once; the composite primary key enforces it.
type Assignment struct {
	DoctorID  uuid.UUID `json:"doctor_id" db:"doctor_id"`
	MRN       string    `json:"mrn" db:"patient_mrn"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreatePatientRequest struct {
	MRN       string    `json:"mrn" binding:"required,max=50"`
	Phone     string    `json:"phone" binding:"required,min=9,max=11"`
	Name      Name      `json:"name" binding:"required"`
	BirthDate time.Time `json:"birth_date" binding:"required"`
	Gender    string    `json:"gender" binding:"required,oneof=female male"`
}

type UpdatePatientRequest struct {
	Phone     *string    `json:"phone" binding:"omitempty,min=9,max=11"`
	FirstName *string    `json:"first_name" binding:"omitempty,max=40"`
	LastName  *string    `json:"last_name" binding:"omitempty,max=40"`
	BirthDate *time.Time `json:"birth_date"`
	Gender    *string    `json:"gender" binding:"omitempty,oneof=female male"`
}
