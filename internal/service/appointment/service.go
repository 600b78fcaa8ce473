package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

// EventRecorder appends a domain event alongside the mutation that
// produced it.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, payload interface{}) error
}

// Service implements the appointment lifecycle: a request is stored as
// pending, the owning doctor approves it with a confirmed time, and
// approved is terminal.
type Service struct {
	repo     repository.AppointmentRepository
	userRepo repository.UserRepository
	events   EventRecorder
}

func NewService(repo repository.AppointmentRepository, userRepo repository.UserRepository, events EventRecorder) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		events:   events,
	}
}

// Request creates a pending appointment. The requester does not need an
// account; patient fields are taken at face value. The target doctor must
// exist and hold the doctor role.
func (s *Service) Request(ctx context.Context, req *model.RequestAppointmentRequest) (*model.Appointment, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid doctor ID", err)
	}

	doctor, err := s.userRepo.Get(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to look up doctor: %w", err))
	}
	if doctor.Role != model.RoleDoctor {
		return nil, apperrors.NotFound("doctor", nil)
	}

	apt := &model.Appointment{
		DoctorID:      doctorID,
		PatientName:   req.PatientName,
		Age:           req.Age,
		Contact:       req.Contact,
		Symptoms:      req.Symptoms,
		PreferredTime: req.PreferredTime,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create appointment: %w", err))
	}

	if err := s.events.Record(ctx, model.EventAppointmentRequested, apt); err != nil {
		log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to record appointment event")
	}

	return apt, nil
}

// ListPending returns the caller's own pending queue. Scoping is on the
// authenticated doctor id, never a client-supplied one.
func (s *Service) ListPending(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	return s.list(ctx, doctorID, model.AppointmentStatusPending)
}

// ListApproved returns the caller's own approved appointments.
func (s *Service) ListApproved(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	return s.list(ctx, doctorID, model.AppointmentStatusApproved)
}

func (s *Service) list(ctx context.Context, doctorID uuid.UUID, status model.AppointmentStatus) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByDoctorAndStatus(ctx, doctorID, status)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list appointments: %w", err))
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	return appointments, nil
}

// Approve transitions pending to approved and records the confirmed time.
// Only the owning doctor may approve. Two concurrent approvals both succeed
// with last-write-wins on the confirmed time.
func (s *Service) Approve(ctx context.Context, id, doctorID uuid.UUID, confirmedTime string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get appointment: %w", err))
	}

	if apt.DoctorID != doctorID {
		return nil, apperrors.Forbidden("appointment belongs to another doctor", nil)
	}

	if err := s.repo.Approve(ctx, id, confirmedTime); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to approve appointment: %w", err))
	}

	apt.Status = model.AppointmentStatusApproved
	apt.ConfirmedTime = &confirmedTime

	if err := s.events.Record(ctx, model.EventAppointmentApproved, apt); err != nil {
		log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to record appointment event")
	}

	return apt, nil
}
