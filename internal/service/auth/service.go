package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	pkgauth "github.com/healsmart/healsmart-api/pkg/auth"
	"github.com/healsmart/healsmart-api/pkg/security"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

// Service implements signup, login, and token validation. Tokens are
// stateless; logout is purely client-side (discarding the token) and there
// is no forced invalidation before natural expiry.
type Service struct {
	userRepo repository.UserRepository
	jwtSvc   pkgauth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc pkgauth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

// Signup creates an account and returns a session token. Doctor signups
// must carry the professional fields; the role is fixed at creation.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.TokenResponse, error) {
	if req.Role == model.RoleDoctor {
		if req.Specialization == "" || req.Contact == "" {
			return nil, apperrors.BadRequest("specialization and contact are required for doctors", nil)
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.BadRequest("invalid password", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if req.Role == model.RoleDoctor {
		user.Specialization = &req.Specialization
		user.Contact = &req.Contact
		if req.ImageURL != "" {
			user.ImageURL = &req.ImageURL
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.BadRequest("user already exists", model.ErrEmailTaken)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to create user: %w", err))
	}

	token, err := s.jwtSvc.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.TokenResponse{
		Token:  token,
		UserID: user.ID.String(),
		Role:   user.Role,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email, wrong
// password, and role mismatch are indistinguishable to the caller to avoid
// account enumeration.
func (s *Service) Login(ctx context.Context, email, password, role string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", model.ErrInvalidCredentials)
	}

	if user.Role != role {
		return nil, apperrors.Unauthorized("invalid credentials", model.ErrInvalidCredentials)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", model.ErrInvalidCredentials)
	}

	token, err := s.jwtSvc.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.TokenResponse{
		Token:  token,
		UserID: user.ID.String(),
		Role:   user.Role,
	}, nil
}

// ValidateToken decodes a bearer token into claims.
func (s *Service) ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, pkgauth.ErrInvalidToken
	}

	return &model.TokenClaims{
		UserID: userID,
		Role:   claims.Role,
	}, nil
}
