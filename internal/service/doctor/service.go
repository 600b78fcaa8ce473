package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

const (
	directoryCacheKey = "doctors"
	directoryTTL      = 5 * time.Minute
)

// Service serves the public doctor directory and doctor profiles. The
// directory is read far more often than it changes, so it sits behind a
// short-lived cache that signup invalidates.
type Service struct {
	userRepo repository.UserRepository
	cache    *gocache.Cache
}

func NewService(userRepo repository.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
		cache:    gocache.New(directoryTTL, 10*time.Minute),
	}
}

// ListDoctors returns all doctors with credential fields stripped.
func (s *Service) ListDoctors(ctx context.Context) ([]*model.DoctorProfile, error) {
	if cached, ok := s.cache.Get(directoryCacheKey); ok {
		return cached.([]*model.DoctorProfile), nil
	}

	doctors, err := s.userRepo.ListByRole(ctx, model.RoleDoctor)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to fetch doctors: %w", err))
	}

	profiles := make([]*model.DoctorProfile, 0, len(doctors))
	for _, d := range doctors {
		profiles = append(profiles, d.Profile())
	}

	s.cache.Set(directoryCacheKey, profiles, directoryTTL)
	return profiles, nil
}

// GetDoctor returns one doctor's profile.
func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get doctor: %w", err))
	}
	if user.Role != model.RoleDoctor {
		return nil, apperrors.NotFound("doctor", nil)
	}

	return user.Profile(), nil
}

// Invalidate drops the cached directory; called after a doctor signup.
func (s *Service) Invalidate() {
	s.cache.Delete(directoryCacheKey)
}
