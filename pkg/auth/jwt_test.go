package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieclinic/clinic-api/internal/model"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

func testDoctor() *model.Doctor {
	return &model.Doctor{
		Base:  model.Base{ID: uuid.New()},
		Email: "dr@example.com",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(Config{Secret: "test-secret", ExpiryMinutes: 30})
	doctor := testDoctor()

	token, err := svc.GenerateAccessToken(doctor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, claims.DoctorID)
	assert.Equal(t, doctor.Email, claims.Email)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(Config{Secret: "test-secret", ExpiryMinutes: -1})

	token, err := svc.GenerateAccessToken(testDoctor())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(Config{Secret: "secret-a", ExpiryMinutes: 30})
	verifier := NewJWTService(Config{Secret: "secret-b", ExpiryMinutes: 30})

	token, err := issuer.GenerateAccessToken(testDoctor())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewJWTService(Config{Secret: "test-secret", ExpiryMinutes: 30})

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
