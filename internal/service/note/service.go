package note

import (
	"context"

	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/repository"
)

// Authorizer decides whether a doctor may touch a patient's records.
type Authorizer interface {
	Authorize(ctx context.Context, doctorID uuid.UUID, mrn string) error
}

type Service struct {
	repo repository.NoteRepository
	auth Authorizer
}

func NewService(repo repository.NoteRepository, auth Authorizer) *Service {
	return &Service{repo: repo, auth: auth}
}

// CreateNote requires the author to already be assigned to the patient.
// Writing a note never grants assignment by itself.
func (s *Service) CreateNote(ctx context.Context, doctorID uuid.UUID, mrn string, req *model.CreateNoteRequest) (*model.Note, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = model.NoteCategoryOther
	}

	note := &model.Note{
		ID:         uuid.New(),
		PatientMRN: mrn,
		DoctorID:   doctorID,
		Title:      req.Title,
		Content:    req.Content,
		Category:   category,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Service) ListNotes(ctx context.Context, doctorID uuid.UUID, mrn string) ([]*model.Note, error) {
	if err := s.auth.Authorize(ctx, doctorID, mrn); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, mrn)
}

func (s *Service) GetNote(ctx context.Context, doctorID uuid.UUID, id uuid.UUID) (*model.Note, error) {
	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.auth.Authorize(ctx, doctorID, note.PatientMRN); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Service) UpdateNote(ctx context.Context, doctorID uuid.UUID, id uuid.UUID, req *model.UpdateNoteRequest) (*model.Note, error) {
	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.auth.Authorize(ctx, doctorID, note.PatientMRN); err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Category != nil {
		note.Category = *req.Category
	}

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Service) DeleteNote(ctx context.Context, doctorID uuid.UUID, id uuid.UUID) error {
	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.auth.Authorize(ctx, doctorID, note.PatientMRN); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
