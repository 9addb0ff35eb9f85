package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/model"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

// JWTService issues and verifies signed doctor identity tokens.
type JWTService interface {
	GenerateAccessToken(doctor *model.Doctor) (string, error)
	ValidateToken(token string) (*model.TokenClaims, error)
}

type Config struct {
	Secret        string
	ExpiryMinutes int
}

type jwtService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(cfg Config) JWTService {
	return &jwtService{
		secret: []byte(cfg.Secret),
		expiry: time.Duration(cfg.ExpiryMinutes) * time.Minute,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	DoctorID string `json:"doctor_id"`
	Email    string `json:"email"`
}

func (s *jwtService) GenerateAccessToken(doctor *model.Doctor) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   doctor.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		DoctorID: doctor.ID.String(),
		Email:    doctor.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) ValidateToken(tokenStr string) (*model.TokenClaims, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrExpiredToken
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	doctorID, err := uuid.Parse(claims.DoctorID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return &model.TokenClaims{
		DoctorID: doctorID,
		Email:    claims.Email,
	}, nil
}
