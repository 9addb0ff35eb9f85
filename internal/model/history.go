package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MedicalHistory represents a dated entry in a patient's medical history.
type MedicalHistory struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	PatientMRN  string         `json:"patient_mrn" db:"patient_mrn"`
	DoctorID    uuid.UUID      `json:"doctor_id" db:"doctor_id"`
	Title       string         `json:"title" db:"title"`
	Content     string         `json:"content" db:"content"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	HistoryDate time.Time      `json:"history_date" db:"history_date"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

// LabResult represents a single lab measurement attached to a history entry.
type LabResult struct {
	ID          int64     `json:"id" db:"id"`
	HistoryID   uuid.UUID `json:"history_id" db:"history_id"`
	PatientMRN  string    `json:"patient_mrn" db:"patient_mrn"`
	TestName    string    `json:"test_name" db:"test_name"`
	ResultValue string    `json:"result_value" db:"result_value"`
	NormalRange string    `json:"normal_range" db:"normal_range"`
	Unit        string    `json:"unit" db:"unit"`
	LabDate     time.Time `json:"lab_date" db:"lab_date"`
}

type CreateHistoryRequest struct {
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Tags        []string  `json:"tags" binding:"omitempty,dive,max=30"`
	HistoryDate time.Time `json:"history_date" binding:"required"`
}

type CreateLabResultRequest struct {
	TestName    string    `json:"test_name" binding:"required,max=100"`
	ResultValue string    `json:"result_value" binding:"required,max=100"`
	NormalRange string    `json:"normal_range" binding:"required,max=100"`
	Unit        string    `json:"unit" binding:"required,max=30"`
	LabDate     time.Time `json:"lab_date" binding:"required"`
}
