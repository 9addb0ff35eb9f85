package model

import (
	"github.com/google/uuid"
)

// TokenResponse is returned by login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenClaims represents the verified identity embedded in a JWT.
type TokenClaims struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	Email    string    `json:"email"`
}
