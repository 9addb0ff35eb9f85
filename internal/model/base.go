package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains common fields for uuid-keyed models
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Name groups the name fields shared by doctors and patients.
type Name struct {
	FirstName string `json:"first_name" binding:"required,max=40"`
	LastName  string `json:"last_name" binding:"required,max=40"`
}
