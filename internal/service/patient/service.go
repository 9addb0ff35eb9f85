package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

const (
	assignmentCacheTTL     = 5 * time.Minute
	assignmentCacheCleanup = 10 * time.Minute
)

// Service manages patient records and the doctor-patient assignment
// relation that gates every record access.
type Service struct {
	repo repository.PatientRepository

	// Only positive lookups are cached: assignments are never removed,
	// so a cached "assigned" can not go stale.
	assignments *cache.Cache
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		assignments: cache.New(assignmentCacheTTL, assignmentCacheCleanup),
	}
}

// CreatePatient registers a patient and assigns the creating doctor.
func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest, doctorID uuid.UUID) (*model.Patient, error) {
	patient := &model.Patient{
		MRN:       req.MRN,
		Phone:     req.Phone,
		FirstName: req.Name.FirstName,
		LastName:  req.Name.LastName,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	}

	if err := s.repo.Create(ctx, patient, doctorID); err != nil {
		return nil, err
	}

	s.assignments.Set(assignmentKey(doctorID, patient.MRN), true, cache.DefaultExpiration)
	return patient, nil
}

// Assign adds the doctor to the patient's assignment set. Assigning an
// already assigned pair is a no-op.
func (s *Service) Assign(ctx context.Context, doctorID uuid.UUID, mrn string) error {
	if _, err := s.repo.Get(ctx, mrn); err != nil {
		return err
	}

	if err := s.repo.Assign(ctx, doctorID, mrn); err != nil {
		return err
	}

	s.assignments.Set(assignmentKey(doctorID, mrn), true, cache.DefaultExpiration)
	return nil
}

// IsAssigned is the authorization predicate consulted before every
// patient, note and appointment access.
func (s *Service) IsAssigned(ctx context.Context, doctorID uuid.UUID, mrn string) (bool, error) {
	if _, found := s.assignments.Get(assignmentKey(doctorID, mrn)); found {
		return true, nil
	}

	assigned, err := s.repo.IsAssigned(ctx, doctorID, mrn)
	if err != nil {
		return false, err
	}
	if assigned {
		s.assignments.Set(assignmentKey(doctorID, mrn), true, cache.DefaultExpiration)
	}
	return assigned, nil
}

// Authorize returns ErrNotAssigned unless the doctor is assigned to the
// patient.
func (s *Service) Authorize(ctx context.Context, doctorID uuid.UUID, mrn string) error {
	assigned, err := s.IsAssigned(ctx, doctorID, mrn)
	if err != nil {
		return fmt.Errorf("failed to check assignment: %w", err)
	}
	if !assigned {
		return apperrors.ErrNotAssigned
	}
	return nil
}

func (s *Service) GetPatient(ctx context.Context, doctorID uuid.UUID, mrn string) (*model.Patient, error) {
	if err := s.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, mrn)
}

func (s *Service) ListPatients(ctx context.Context, doctorID uuid.UUID) ([]*model.Patient, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) UpdatePatient(ctx context.Context, doctorID uuid.UUID, mrn string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	if err := s.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}

	patient, err := s.repo.Get(ctx, mrn)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		patient.BirthDate = *req.BirthDate
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) ListAssignments(ctx context.Context, doctorID uuid.UUID, mrn string) ([]*model.Assignment, error) {
	if err := s.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	return s.repo.ListAssignments(ctx, mrn)
}

func assignmentKey(doctorID uuid.UUID, mrn string) string {
	return doctorID.String() + ":" + mrn
}
