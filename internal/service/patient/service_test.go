package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieclinic/clinic-api/internal/model"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

type assignmentPair struct {
	doctorID uuid.UUID
	mrn      string
}

type fakePatientRepo struct {
	patients    map[string]*model.Patient
	assignments map[assignmentPair]bool

	isAssignedCalls int
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{
		patients:    make(map[string]*model.Patient),
		assignments: make(map[assignmentPair]bool),
	}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *model.Patient, creatorID uuid.UUID) error {
	if _, exists := r.patients[patient.MRN]; exists {
		return apperrors.Validation("patient with this MRN already exists")
	}
	r.patients[patient.MRN] = patient
	r.assignments[assignmentPair{creatorID, patient.MRN}] = true
	return nil
}

func (r *fakePatientRepo) Get(_ context.Context, mrn string) (*model.Patient, error) {
	patient, ok := r.patients[mrn]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return patient, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *model.Patient) error {
	r.patients[patient.MRN] = patient
	return nil
}

func (r *fakePatientRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*model.Patient, error) {
	var out []*model.Patient
	for pair := range r.assignments {
		if pair.doctorID == doctorID {
			out = append(out, r.patients[pair.mrn])
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Assign(_ context.Context, doctorID uuid.UUID, mrn string) error {
	r.assignments[assignmentPair{doctorID, mrn}] = true
	return nil
}

func (r *fakePatientRepo) IsAssigned(_ context.Context, doctorID uuid.UUID, mrn string) (bool, error) {
	r.isAssignedCalls++
	return r.assignments[assignmentPair{doctorID, mrn}], nil
}

func (r *fakePatientRepo) ListAssignments(_ context.Context, mrn string) ([]*model.Assignment, error) {
	var out []*model.Assignment
	for pair := range r.assignments {
		if pair.mrn == mrn {
			out = append(out, &model.Assignment{DoctorID: pair.doctorID, MRN: pair.mrn})
		}
	}
	return out, nil
}

func createReq(mrn string) *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		MRN:       mrn,
		Phone:     "0123456789",
		Name:      model.Name{FirstName: "Pat", LastName: "Ient"},
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:    "female",
	}
}

func TestCreatePatientAssignsCreator(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)
	ctx := context.Background()
	doctorID := uuid.New()

	patient, err := svc.CreatePatient(ctx, createReq("MRN-001"), doctorID)
	require.NoError(t, err)
	assert.Equal(t, "MRN-001", patient.MRN)

	assigned, err := svc.IsAssigned(ctx, doctorID, "MRN-001")
	require.NoError(t, err)
	assert.True(t, assigned)

	assert.NoError(t, svc.Authorize(ctx, doctorID, "MRN-001"))
}

func TestAuthorizeDeniesUnassignedDoctor(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)
	ctx := context.Background()
	creator := uuid.New()
	other := uuid.New()

	_, err := svc.CreatePatient(ctx, createReq("MRN-001"), creator)
	require.NoError(t, err)

	err = svc.Authorize(ctx, other, "MRN-001")
	assert.ErrorIs(t, err, apperrors.ErrNotAssigned)

	_, err = svc.GetPatient(ctx, other, "MRN-001")
	assert.ErrorIs(t, err, apperrors.ErrNotAssigned)
}

func TestAssignGrantsAccess(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)
	ctx := context.Background()
	creator := uuid.New()
	other := uuid.New()

	_, err := svc.CreatePatient(ctx, createReq("MRN-001"), creator)
	require.NoError(t, err)

	require.NoError(t, svc.Assign(ctx, other, "MRN-001"))
	assert.NoError(t, svc.Authorize(ctx, other, "MRN-001"))

	// Re-assigning the same pair is a no-op.
	assert.NoError(t, svc.Assign(ctx, other, "MRN-001"))

	assignments, err := svc.ListAssignments(ctx, other, "MRN-001")
	require.NoError(t, err)
	assert.Len(t, assignments, 2)
}

func TestAssignUnknownPatient(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	err := svc.Assign(context.Background(), uuid.New(), "MRN-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.NotFound("patient", nil))
}

func TestIsAssignedCachesPositiveLookups(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)
	ctx := context.Background()
	doctorID := uuid.New()
	other := uuid.New()

	repo.patients["MRN-001"] = &model.Patient{MRN: "MRN-001"}
	repo.assignments[assignmentPair{doctorID, "MRN-001"}] = true

	for i := 0; i < 3; i++ {
		assigned, err := svc.IsAssigned(ctx, doctorID, "MRN-001")
		require.NoError(t, err)
		assert.True(t, assigned)
	}
	assert.Equal(t, 1, repo.isAssignedCalls)

	// Negative lookups always hit the repository.
	for i := 0; i < 3; i++ {
		assigned, err := svc.IsAssigned(ctx, other, "MRN-001")
		require.NoError(t, err)
		assert.False(t, assigned)
	}
	assert.Equal(t, 4, repo.isAssignedCalls)
}

func TestUpdatePatientAppliesPartialFields(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)
	ctx := context.Background()
	doctorID := uuid.New()

	_, err := svc.CreatePatient(ctx, createReq("MRN-001"), doctorID)
	require.NoError(t, err)

	phone := "0999999999"
	updated, err := svc.UpdatePatient(ctx, doctorID, "MRN-001", &model.UpdatePatientRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Pat", updated.FirstName)
}
