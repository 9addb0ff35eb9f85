package examination

import (
	"context"

	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
)

type Authorizer interface {
	Authorize(ctx context.Context, doctorID uuid.UUID, mrn string) error
}

type Service struct {
	repo repository.ExaminationRepository
	auth Authorizer
}

func NewService(repo repository.ExaminationRepository, auth Authorizer) *Service {
	return &Service{repo: repo, auth: auth}
}

func (s *Service) CreateExamination(ctx context.Context, doctorID uuid.UUID, mrn string, req *model.CreateExaminationRequest) (*model.Examination, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}

	exam := &model.Examination{
		ID:         uuid.New(),
		PatientMRN: mrn,
		DoctorID:   doctorID,
		Title:      req.Title,
		ExamDate:   req.ExamDate,
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *Service) ListExaminations(ctx context.Context, doctorID uuid.UUID, mrn string) ([]*model.Examination, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, mrn)
}
