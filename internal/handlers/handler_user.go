package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/dto"
	"github.com/paisatrack/pft_backend/internal/middleware"
)

// userHandler handles HTTP requests related to users, profiles, and roles.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.GET("/me/role", h.getMyRole)
		users.GET("/me/is-admin", h.getIsAdmin)
		users.PUT("/:userID/role", h.assignRole)
	}

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.saveProfile)
	}
}

// getMe godoc
// @Summary Get the authenticated user
// @Description Retrieves the caller's account details.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to get user from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getProfile godoc
// @Summary Get the onboarding profile
// @Description Retrieves the caller's profile. Returns null when onboarding has not been completed.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get profile from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		// Onboarding not completed yet
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Name: profile.Name})
}

// saveProfile godoc
// @Summary Save the onboarding profile
// @Description Sets the caller's profile name. Saving again overwrites the previous value.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.SaveProfileRequest true "Profile details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save profile"
// @Security BearerAuth
// @Router /profile [put]
func (h *userHandler) saveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.SaveProfile(c.Request.Context(), userID, req.Name); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to save profile in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		}
		return
	}

	logger.Info("Profile saved successfully")
	c.JSON(http.StatusOK, dto.ProfileResponse{Name: req.Name})
}

// assignRole godoc
// @Summary Assign a role to a user
// @Description Sets a target user's role. Only callers holding the admin role may assign roles.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "Target User ID"
// @Param role body dto.AssignRoleRequest true "Role to assign"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to assign role"
// @Security BearerAuth
// @Router /users/{userID}/role [put]
func (h *userHandler) assignRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetUserID := c.Param("userID")
	if targetUserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required in path"})
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.userService.AssignRole(c.Request.Context(), callerID, targetUserID, domain.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Non-admin attempted to assign role", slog.String("target_user_id", targetUserID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may assign roles"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to assign role in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role"})
		}
		return
	}

	logger.Info("Role assigned successfully", slog.String("target_user_id", targetUserID), slog.String("role", req.Role))
	c.JSON(http.StatusOK, dto.RoleResponse{Role: req.Role})
}

// getMyRole godoc
// @Summary Get the caller's role
// @Description Returns the authenticated user's current role.
// @Tags users
// @Produce json
// @Success 200 {object} dto.RoleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve role"
// @Security BearerAuth
// @Router /users/me/role [get]
func (h *userHandler) getMyRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	role, err := h.userService.GetRole(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to get role from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve role"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{Role: string(role)})
}

// getIsAdmin godoc
// @Summary Check whether the caller is an admin
// @Description Reports whether the authenticated user holds the admin role.
// @Tags users
// @Produce json
// @Success 200 {object} dto.IsAdminResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check role"
// @Security BearerAuth
// @Router /users/me/is-admin [get]
func (h *userHandler) getIsAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	isAdmin, err := h.userService.IsAdmin(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to check admin role", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
		return
	}

	c.JSON(http.StatusOK, dto.IsAdminResponse{IsAdmin: isAdmin})
}
