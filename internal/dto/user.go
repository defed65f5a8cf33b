package dto

import (
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to create an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"max=100"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed access token and its expiry.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleVerifyRequest carries a Google ID token obtained client side.
type GoogleVerifyRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Name:          user.Name,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
		LastUpdatedAt: user.LastUpdatedAt,
	}
}

// SaveProfileRequest defines the onboarding profile payload.
type SaveProfileRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ProfileResponse defines the onboarding profile returned for a user.
type ProfileResponse struct {
	Name string `json:"name"`
}

// AssignRoleRequest defines the payload for changing a user's role.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user guest"`
}

// RoleResponse returns a user's current role.
type RoleResponse struct {
	Role string `json:"role"`
}

// IsAdminResponse reports whether the caller holds the admin role.
type IsAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
