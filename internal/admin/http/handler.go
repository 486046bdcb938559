// Package http provides HTTP handlers for the admin backoffice surface.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	adminUseCase "github.com/safework/safework/internal/admin/usecase"
	authHTTP "github.com/safework/safework/internal/auth/http"
	authDTO "github.com/safework/safework/internal/auth/http/dto"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/httputil"
)

// PermissionRequest carries an admin role grant or revocation.
type PermissionRequest struct {
	GrantPermission bool `json:"grantPermission"`
}

// AdminHandler handles HTTP requests for admin user management.
// All routes are additionally gated by the admin middleware; the use case
// re-checks the role so the handlers stay safe under route miswiring.
type AdminHandler struct {
	adminUseCase adminUseCase.AdminUseCase
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler with required dependencies.
func NewAdminHandler(useCase adminUseCase.AdminUseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: useCase,
		logger:       logger,
	}
}

// ListUsersHandler lists user accounts.
// GET /api/admin/users?department=&offset=&limit= - Requires admin role.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.adminUseCase.ListUsers(c.Request.Context(), identity, c.Query("department"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := make([]authDTO.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, authDTO.NewUserResponse(user))
	}
	c.JSON(http.StatusOK, gin.H{"users": responses})
}

// GetUserHandler retrieves a single user account.
// GET /api/admin/users/:id - Requires admin role.
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.adminUseCase.GetUser(c.Request.Context(), identity, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, authDTO.NewUserResponse(user))
}

// UpdatePermissionHandler grants or revokes the admin role.
// PUT /api/admin/users/:id/permission - Requires admin role; self-targeting
// changes are denied.
func (h *AdminHandler) UpdatePermissionHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.adminUseCase.UpdatePermission(c.Request.Context(), identity, id, req.GrantPermission)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, authDTO.NewUserResponse(user))
}

// DeleteUserHandler removes a user account.
// DELETE /api/admin/users/:id - Requires admin role.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.adminUseCase.DeleteUser(c.Request.Context(), identity, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// parseUserID parses the :id path parameter.
func parseUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "user id must be an integer")
	}
	return id, nil
}
