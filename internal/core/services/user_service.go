package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portsrepo "github.com/paisatrack/pft_backend/internal/core/ports/repositories"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	if existing, err := s.userRepo.FindUserByUsername(ctx, username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username %q taken", apperrors.ErrDuplicate, username)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Role:         domain.RoleUser,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// GetProfile returns nil without error when the user exists but has not
// onboarded yet; the handler renders that as a null profile.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for %s: %w", userID, err)
	}
	if user.Name == "" {
		return nil, nil
	}
	return &domain.Profile{Name: user.Name}, nil
}

func (s *userService) SaveProfile(ctx context.Context, userID string, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: profile name is required", apperrors.ErrValidation)
	}
	if err := s.userRepo.UpdateProfileName(ctx, userID, name, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to save profile")
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.LogInfo(ctx, "Profile saved")
	return nil
}

func (s *userService) AssignRole(ctx context.Context, callerID, targetUserID string, role domain.UserRole) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		return fmt.Errorf("failed to resolve caller %s: %w", callerID, err)
	}
	if caller.Role != domain.RoleAdmin {
		s.LogDebug(ctx, "Role assignment denied", slog.String("target_user_id", targetUserID))
		return apperrors.ErrForbidden
	}

	if err := s.userRepo.UpdateUserRole(ctx, targetUserID, role, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to assign role", slog.String("target_user_id", targetUserID))
		return fmt.Errorf("failed to assign role: %w", err)
	}

	s.LogInfo(ctx, "Role assigned",
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return nil
}

func (s *userService) GetRole(ctx context.Context, userID string) (domain.UserRole, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get role for %s: %w", userID, err)
	}
	return user.Role, nil
}

func (s *userService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}
