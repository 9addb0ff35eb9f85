package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/pkg/auth"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

type fakeDoctorRepo struct {
	byEmail map[string]*model.Doctor
	byID    map[uuid.UUID]*model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{
		byEmail: make(map[string]*model.Doctor),
		byID:    make(map[uuid.UUID]*model.Doctor),
	}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *model.Doctor) error {
	if _, exists := r.byEmail[doctor.Email]; exists {
		return apperrors.ErrDuplicateEmail
	}
	r.byEmail[doctor.Email] = doctor
	r.byID[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return doctor, nil
}

func (r *fakeDoctorRepo) GetByEmail(_ context.Context, email string) (*model.Doctor, error) {
	doctor, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return doctor, nil
}

func (r *fakeDoctorRepo) GetByNameAndPhone(_ context.Context, firstName, lastName, phone string) (*model.Doctor, error) {
	for _, doctor := range r.byEmail {
		if doctor.FirstName == firstName && doctor.LastName == lastName && doctor.Phone == phone {
			return doctor, nil
		}
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func (r *fakeDoctorRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	doctor, ok := r.byID[id]
	if !ok {
		return apperrors.NotFound("doctor", nil)
	}
	doctor.PasswordHash = hash
	return nil
}

func newTestService(repo *fakeDoctorRepo) *Service {
	jwtSvc := auth.NewJWTService(auth.Config{Secret: "test-secret", ExpiryMinutes: 30})
	return NewService(repo, jwtSvc)
}

func registerReq(email string) *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:      email,
		LicenceNum: "L-1234",
		Phone:      "0123456789",
		Name:       model.Name{FirstName: "Jane", LastName: "Doe"},
		Password:   "S3cure-pass",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	doctor, err := svc.Register(ctx, registerReq("jane@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, doctor.ID)
	assert.NotEqual(t, "S3cure-pass", doctor.PasswordHash)

	resp, err := svc.Login(ctx, "jane@example.com", "S3cure-pass")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := svc.ValidateToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, claims.DoctorID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("jane@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("jane@example.com"))
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, unknownErr := svc.Login(ctx, "nobody@example.com", "S3cure-pass")
	_, wrongErr := svc.Login(ctx, "jane@example.com", "not-the-password")

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	doctor, err := svc.Register(ctx, registerReq("jane@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, doctor.ID, "wrong-current", "Another-pass1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, doctor.ID, "S3cure-pass", "S3cure-pass")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, doctor.ID, "S3cure-pass", "Another-pass1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "jane@example.com", "S3cure-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "jane@example.com", "Another-pass1")
	assert.NoError(t, err)
}

func TestFindEmail(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("jane@example.com"))
	require.NoError(t, err)

	email, err := svc.FindEmail(ctx, &model.FindEmailRequest{
		Phone: "0123456789",
		Name:  model.Name{FirstName: "Jane", LastName: "Doe"},
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)

	_, err = svc.FindEmail(ctx, &model.FindEmailRequest{
		Phone: "0987654321",
		Name:  model.Name{FirstName: "Jane", LastName: "Doe"},
	})
	assert.Error(t, err)
}
