package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	byID map[uuid.UUID]*model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[uuid.UUID]*model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *model.Appointment) error {
	apt.ID = uuid.New()
	apt.Status = model.AppointmentStatusPending
	r.byID[apt.ID] = apt
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *apt
	return &cp, nil
}

func (r *fakeAppointmentRepo) ListByDoctorAndStatus(_ context.Context, doctorID uuid.UUID, status model.AppointmentStatus) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range r.byID {
		if apt.DoctorID == doctorID && apt.Status == status {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Approve(_ context.Context, id uuid.UUID, confirmedTime string) error {
	apt, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	apt.Status = model.AppointmentStatusApproved
	apt.ConfirmedTime = &confirmedTime
	return nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*model.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) ListByRole(context.Context, string) ([]*model.User, error) {
	return nil, nil
}

type recordedEvent struct {
	eventType string
	payload   interface{}
}

type fakeEvents struct {
	recorded []recordedEvent
}

func (f *fakeEvents) Record(_ context.Context, eventType string, payload interface{}) error {
	f.recorded = append(f.recorded, recordedEvent{eventType, payload})
	return nil
}

func newTestService() (*Service, *fakeAppointmentRepo, *fakeEvents, uuid.UUID) {
	doctorID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]*model.User{
		doctorID: {Base: model.Base{ID: doctorID}, Name: "Dr. Rao", Role: model.RoleDoctor},
	}}
	repo := newFakeAppointmentRepo()
	events := &fakeEvents{}
	return NewService(repo, users, events), repo, events, doctorID
}

func requestFor(doctorID uuid.UUID) *model.RequestAppointmentRequest {
	return &model.RequestAppointmentRequest{
		DoctorID:      doctorID.String(),
		PatientName:   "Asha",
		Age:           34,
		Contact:       "asha@example.com",
		Symptoms:      "headache, mild fever",
		PreferredTime: "2026-09-01 10:00",
	}
}

func TestRequest_CreatesPending(t *testing.T) {
	svc, _, events, doctorID := newTestService()

	apt, err := svc.Request(context.Background(), requestFor(doctorID))
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, apt.Status)
	assert.Nil(t, apt.ConfirmedTime)

	require.Len(t, events.recorded, 1)
	assert.Equal(t, model.EventAppointmentRequested, events.recorded[0].eventType)
}

func TestRequest_UnknownDoctor(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Request(context.Background(), requestFor(uuid.New()))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestRequest_TargetMustBeDoctor(t *testing.T) {
	svc, _, _, _ := newTestService()

	patientID := uuid.New()
	svc.userRepo.Create(context.Background(), &model.User{
		Base: model.Base{ID: patientID},
		Role: model.RolePatient,
	})

	_, err := svc.Request(context.Background(), requestFor(patientID))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestApprove_Flow(t *testing.T) {
	svc, _, events, doctorID := newTestService()

	apt, err := svc.Request(context.Background(), requestFor(doctorID))
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background(), doctorID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, err := svc.Approve(context.Background(), apt.ID, doctorID, "2026-09-01 11:30")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusApproved, approved.Status)
	require.NotNil(t, approved.ConfirmedTime)
	assert.Equal(t, "2026-09-01 11:30", *approved.ConfirmedTime)

	pending, err = svc.ListPending(context.Background(), doctorID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	list, err := svc.ListApproved(context.Background(), doctorID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.Len(t, events.recorded, 2)
	assert.Equal(t, model.EventAppointmentApproved, events.recorded[1].eventType)
}

func TestApprove_OtherDoctorsAppointment(t *testing.T) {
	svc, _, _, doctorID := newTestService()

	apt, err := svc.Request(context.Background(), requestFor(doctorID))
	require.NoError(t, err)

	otherDoctor := uuid.New()
	_, err = svc.Approve(context.Background(), apt.ID, otherDoctor, "2026-09-01 11:30")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode())
}

func TestApprove_NotFound(t *testing.T) {
	svc, _, _, doctorID := newTestService()

	_, err := svc.Approve(context.Background(), uuid.New(), doctorID, "2026-09-01 11:30")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode())
}

// Inboxes are scoped to the authenticated doctor, never shared.
func TestList_ScopedPerDoctor(t *testing.T) {
	svc, _, _, doctorID := newTestService()

	otherID := uuid.New()
	svc.userRepo.Create(context.Background(), &model.User{
		Base: model.Base{ID: otherID},
		Role: model.RoleDoctor,
	})

	_, err := svc.Request(context.Background(), requestFor(doctorID))
	require.NoError(t, err)

	mine, err := svc.ListPending(context.Background(), doctorID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListPending(context.Background(), otherID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
	assert.NotNil(t, theirs)
}
