package services

import (
	"context"

	"github.com/paisatrack/pft_backend/internal/core/domain"
)

// UserSvcFacade exposes account, profile, and role operations.
type UserSvcFacade interface {
	// Register creates a new user with a bcrypt-hashed password and the
	// default role.
	Register(ctx context.Context, username, password, name string) (*domain.User, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user by principal ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetProfile returns the caller's onboarding profile, or nil (without
	// error) when the user has not completed onboarding.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// SaveProfile sets the caller's profile name.
	SaveProfile(ctx context.Context, userID string, name string) error

	// AssignRole sets a target user's role. Admin-gated: the caller must
	// hold the admin role.
	AssignRole(ctx context.Context, callerID, targetUserID string, role domain.UserRole) error

	// GetRole returns the user's role.
	GetRole(ctx context.Context, userID string) (domain.UserRole, error)

	// IsAdmin reports whether the user holds the admin role.
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// GoogleAuthSvcFacade verifies Google sign-ins and maps them to local users.
type GoogleAuthSvcFacade interface {
	// VerifyIDToken validates a Google ID token and returns the local user,
	// creating one on first sign-in.
	VerifyIDToken(ctx context.Context, idToken string) (*domain.User, error)

	// LoginURL returns the Google consent page URL for the given CSRF state.
	LoginURL(ctx context.Context, state string) string

	// ExchangeCode completes the authorization-code flow and returns the
	// local user, creating one on first sign-in.
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
}
