package appointment

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

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *model.Appointment) error {
	r.appointments[apt.ID] = apt
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return apt, nil
}

func (r *fakeAppointmentRepo) ListByPatient(_ context.Context, mrn string) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range r.appointments {
		if apt.PatientMRN == mrn {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID, from, to time.Time) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range r.appointments {
		if apt.DoctorID == doctorID && !apt.StartTime.Before(from) && apt.StartTime.Before(to) {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, apt *model.Appointment) error {
	r.appointments[apt.ID] = apt
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) ListStartingBetween(_ context.Context, from, to time.Time) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range r.appointments {
		if !apt.StartTime.Before(from) && apt.StartTime.Before(to) {
			out = append(out, apt)
		}
	}
	return out, nil
}

type allowAll struct{}

func (allowAll) Authorize(context.Context, uuid.UUID, string) error { return nil }

type denyAll struct{}

func (denyAll) Authorize(context.Context, uuid.UUID, string) error {
	return apperrors.ErrNotAssigned
}

func createAptReq(start, end time.Time) *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		Detail:    "follow-up",
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateAppointmentValidatesTimes(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), allowAll{})
	ctx := context.Background()
	now := time.Now()

	_, err := svc.CreateAppointment(ctx, uuid.New(), "MRN-001", createAptReq(now, now))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.Validation("start time must precede end time"))

	_, err = svc.CreateAppointment(ctx, uuid.New(), "MRN-001", createAptReq(now.Add(time.Hour), now))
	require.Error(t, err)

	apt, err := svc.CreateAppointment(ctx, uuid.New(), "MRN-001", createAptReq(now, now.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "MRN-001", apt.PatientMRN)
}

func TestCreateAppointmentRequiresAssignment(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), denyAll{})
	now := time.Now()

	_, err := svc.CreateAppointment(context.Background(), uuid.New(), "MRN-001", createAptReq(now, now.Add(time.Hour)))
	assert.ErrorIs(t, err, apperrors.ErrNotAssigned)
}

func TestAgendaListsOnlyOwnAppointmentsInWindow(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewService(repo, allowAll{})
	ctx := context.Background()
	doctorID := uuid.New()
	now := time.Now()

	mine, err := svc.CreateAppointment(ctx, doctorID, "MRN-001", createAptReq(now.Add(time.Hour), now.Add(2*time.Hour)))
	require.NoError(t, err)
	_, err = svc.CreateAppointment(ctx, doctorID, "MRN-001", createAptReq(now.Add(30*time.Hour), now.Add(31*time.Hour)))
	require.NoError(t, err)
	_, err = svc.CreateAppointment(ctx, uuid.New(), "MRN-001", createAptReq(now.Add(time.Hour), now.Add(2*time.Hour)))
	require.NoError(t, err)

	agenda, err := svc.Agenda(ctx, doctorID, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, agenda, 1)
	assert.Equal(t, mine.ID, agenda[0].ID)

	_, err = svc.Agenda(ctx, doctorID, now.Add(time.Hour), now)
	assert.Error(t, err)
}

func TestUpdateAppointmentRevalidatesMergedTimes(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewService(repo, allowAll{})
	ctx := context.Background()
	doctorID := uuid.New()
	now := time.Now()

	apt, err := svc.CreateAppointment(ctx, doctorID, "MRN-001", createAptReq(now, now.Add(time.Hour)))
	require.NoError(t, err)

	// Moving the start past the unchanged end must fail.
	badStart := now.Add(2 * time.Hour)
	_, err = svc.UpdateAppointment(ctx, doctorID, apt.ID, &model.UpdateAppointmentRequest{StartTime: &badStart})
	require.Error(t, err)

	detail := "rescheduled"
	newEnd := now.Add(3 * time.Hour)
	updated, err := svc.UpdateAppointment(ctx, doctorID, apt.ID, &model.UpdateAppointmentRequest{
		Detail:  &detail,
		EndTime: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, "rescheduled", updated.Detail)
	assert.True(t, updated.EndTime.Equal(newEnd))
}

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewService(repo, allowAll{})
	ctx := context.Background()
	doctorID := uuid.New()
	now := time.Now()

	apt, err := svc.CreateAppointment(ctx, doctorID, "MRN-001", createAptReq(now, now.Add(time.Hour)))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAppointment(ctx, doctorID, apt.ID))

	err = svc.DeleteAppointment(ctx, doctorID, apt.ID)
	assert.ErrorIs(t, err, apperrors.NotFound("appointment", nil))
}
