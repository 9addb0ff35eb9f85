package history

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
	repo repository.HistoryRepository
	auth Authorizer
}

func NewService(repo repository.HistoryRepository, auth Authorizer) *Service {
	return &Service{repo: repo, auth: auth}
}

func (s *Service) CreateHistory(ctx context.Context, doctorID uuid.UUID, mrn string, req *model.CreateHistoryRequest) (*model.MedicalHistory, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}

	history := &model.MedicalHistory{
		ID:          uuid.New(),
		PatientMRN:  mrn,
		DoctorID:    doctorID,
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		HistoryDate: req.HistoryDate,
	}
	if err := s.repo.Create(ctx, history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *Service) ListHistories(ctx context.Context, doctorID uuid.UUID, mrn string) ([]*model.MedicalHistory, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, mrn)
}

// AddLabResult attaches a lab result to a history entry; authorization
// piggybacks on the entry's patient reference.
func (s *Service) AddLabResult(ctx context.Context, doctorID uuid.UUID, historyID uuid.UUID, req *model.CreateLabResultRequest) (*model.LabResult, error) {
	entry, err := s.repo.Get(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if err := s.auth.Authorize(ctx, doctorID, entry.PatientMRN); err != nil {
		return nil, err
	}

	result := &model.LabResult{
		HistoryID:   historyID,
		PatientMRN:  entry.PatientMRN,
		TestName:    req.TestName,
		ResultValue: req.ResultValue,
		NormalRange: req.NormalRange,
		Unit:        req.Unit,
		LabDate:     req.LabDate,
	}
	if err := s.repo.CreateLabResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) ListLabResults(ctx context.Context, doctorID uuid.UUID, historyID uuid.UUID) ([]*model.LabResult, error) {
	entry, err := s.repo.Get(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if err := s.auth.Authorize(ctx, doctorID, entry.PatientMRN); err != nil {
		return nil, err
	}
	return s.repo.ListLabResults(ctx, historyID)
}
