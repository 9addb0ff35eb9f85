package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
	"github.com/pieclinic/clinic-api/pkg/auth"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
	"github.com/pieclinic/clinic-api/pkg/security"
)

const bcryptCost = 12

type Service struct {
	doctorRepo repository.DoctorRepository
	jwtSvc     auth.JWTService
	hasher     security.PasswordHasher
}

func NewService(doctorRepo repository.DoctorRepository, jwtSvc auth.JWTService) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		jwtSvc:     jwtSvc,
		hasher:     security.NewBcryptHasher(bcryptCost),
	}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	doctor := &model.Doctor{
		Base:         model.Base{ID: uuid.New()},
		Email:        req.Email,
		LicenceNum:   req.LicenceNum,
		Phone:        req.Phone,
		FirstName:    req.Name.FirstName,
		LastName:     req.Name.LastName,
		PasswordHash: hash,
	}

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// Login deliberately returns the same error for unknown email and wrong
// password so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	doctor, err := s.doctorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(doctor.PasswordHash, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateAccessToken(doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	return s.jwtSvc.ValidateToken(token)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	return s.doctorRepo.Get(ctx, id)
}

func (s *Service) ChangePassword(ctx context.Context, doctorID uuid.UUID, current, new string) error {
	doctor, err := s.doctorRepo.Get(ctx, doctorID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(doctor.PasswordHash, current); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(doctor.PasswordHash, new); err == nil {
		return apperrors.Validation("new password must differ from the current password")
	}

	hash, err := s.hasher.Hash(new)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	return s.doctorRepo.UpdatePassword(ctx, doctorID, hash)
}

// FindEmail recovers a doctor's login email from name and phone.
func (s *Service) FindEmail(ctx context.Context, req *model.FindEmailRequest) (string, error) {
	doctor, err := s.doctorRepo.GetByNameAndPhone(ctx, req.Name.FirstName, req.Name.LastName, req.Phone)
	if err != nil {
		return "", err
	}
	return doctor.Email, nil
}
