package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

// Authorizer decides whether a doctor may touch a patient's records.
type Authorizer interface {
	Authorize(ctx context.Context, doctorID uuid.UUID, mrn string) error
}

type Service struct {
	repo repository.AppointmentRepository
	auth Authorizer
}

func NewService(repo repository.AppointmentRepository, auth Authorizer) *Service {
	return &Service{repo: repo, auth: auth}
}

func validateTimes(start, end time.Time) error {
	if !start.Before(end) {
		return apperrors.Validation("start time must precede end time")
	}
	return nil
}

func (s *Service) CreateAppointment(ctx context.Context, doctorID uuid.UUID, mrn string, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		ID:         uuid.New(),
		PatientMRN: mrn,
		DoctorID:   doctorID,
		Detail:     req.Detail,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *Service) ListByPatient(ctx context.Context, doctorID uuid.UUID, mrn string) ([]*model.Appointment, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, mrn)
}

// Agenda lists the doctor's own appointments in a time window.
func (s *Service) Agenda(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*model.Appointment, error) {
	if err := validateTimes(from, to); err != nil {
		return nil, err
	}
	return s.repo.ListByDoctor(ctx, doctorID, from, to)
}

func (s *Service) UpdateAppointment(ctx context.Context, doctorID uuid.UUID, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.auth.Authorize(ctx, doctorID, apt.PatientMRN); err != nil {
		return nil, err
	}

	if req.Detail != nil {
		apt.Detail = *req.Detail
	}
	if req.StartTime != nil {
		apt.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		apt.EndTime = *req.EndTime
	}
	if err := validateTimes(apt.StartTime, apt.EndTime); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, doctorID uuid.UUID, id uuid.UUID) error {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.auth.Authorize(ctx, doctorID, apt.PatientMRN); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
