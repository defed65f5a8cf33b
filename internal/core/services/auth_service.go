package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portsrepo "github.com/paisatrack/pft_backend/internal/core/ports/repositories"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/platform/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleAuthService implements GoogleAuthSvcFacade. Google accounts map onto
// local users by the Google subject; first sign-in provisions the user.
type googleAuthService struct {
	BaseService
	cfg          *config.Config
	userRepo     portsrepo.UserRepositoryFacade
	oauth2Config *oauth2.Config
}

// NewGoogleAuthService creates a new Google sign-in service.
func NewGoogleAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

func (s *googleAuthService) VerifyIDToken(ctx context.Context, idTokenString string) (*domain.User, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	return s.findOrCreateUser(ctx, payload.Subject, email, name)
}

func (s *googleAuthService) LoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.findOrCreateUser(ctx, info.ID, info.Email, info.Name)
}

// fetchUserInfo calls the Google userinfo endpoint with the exchanged token.
func (s *googleAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var info domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	return &info, nil
}

func (s *googleAuthService) findOrCreateUser(ctx context.Context, googleID, email, name string) (*domain.User, error) {
	if googleID == "" {
		return nil, fmt.Errorf("%w: google subject missing from token", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByGoogleID(ctx, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	username := email
	if username == "" {
		username = "google:" + googleID
	}

	now := time.Now()
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Username: strings.ToLower(username),
		Name:     name,
		Role:     domain.RoleUser,
		GoogleID: googleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision google user")
		return nil, fmt.Errorf("failed to provision google user: %w", err)
	}

	s.LogInfo(ctx, "Google user provisioned")
	return &newUser, nil
}
