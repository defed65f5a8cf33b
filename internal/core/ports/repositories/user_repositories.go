package repositories

import (
	"context"
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their opaque principal ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByGoogleID retrieves a user by their Google account subject.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfileName sets the user's onboarding profile name.
	UpdateProfileName(ctx context.Context, userID string, name string, now time.Time) error

	// UpdateUserRole sets the user's role.
	UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, now time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// RepositoryProvider bundles the concrete repositories handed to the service
// container.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	UserRepo        UserRepositoryFacade
}
