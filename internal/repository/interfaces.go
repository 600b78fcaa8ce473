package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/healsmart/healsmart-api/internal/model"
)

// Sentinel errors returned by repositories. Services translate these into
// the API error taxonomy.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role string) ([]*model.User, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	ListByDoctorAndStatus(ctx context.Context, doctorID uuid.UUID, status model.AppointmentStatus) ([]*model.Appointment, error)
	Approve(ctx context.Context, id uuid.UUID, confirmedTime string) error
}

type PredictionRepository interface {
	Create(ctx context.Context, prediction *model.Prediction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Prediction, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	Get(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	List(ctx context.Context) ([]*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HasLike(ctx context.Context, blogID, userID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, blogID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, blogID, userID uuid.UUID) error
	AddComment(ctx context.Context, comment *model.BlogComment) error
	ListComments(ctx context.Context, blogID uuid.UUID) ([]model.BlogComment, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMessage *string) error
	DeleteProcessedBefore(ctx context.Context, days int) (int64, error)
}
