package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/safework/safework/internal/auth/domain"
	"github.com/safework/safework/internal/auth/http/dto"
	authUseCase "github.com/safework/safework/internal/auth/usecase"
	"github.com/safework/safework/internal/httputil"
	customValidation "github.com/safework/safework/internal/validation"
)

// refreshCookieName is the cookie carrying the refresh credential.
const refreshCookieName = "refreshToken"

// tokenType is the bearer scheme reported in session responses.
const tokenType = "Bearer"

// SessionHandler handles HTTP requests for the session lifecycle.
type SessionHandler struct {
	sessionUseCase authUseCase.SessionUseCase
	cookieMaxAge   int
	cookieSecure   bool
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
// cookieMaxAge is the refresh cookie lifetime in seconds. It must be shorter
// than the refresh token TTL so the browser drops the cookie before the
// credential inside it expires.
func NewSessionHandler(
	sessionUseCase authUseCase.SessionUseCase,
	cookieMaxAge int,
	cookieSecure bool,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		cookieMaxAge:   cookieMaxAge,
		cookieSecure:   cookieSecure,
		logger:         logger,
	}
}

// SignupHandler registers a new user account.
// POST /auth/signup - No authentication required.
// Returns 201 Created with the public user representation.
func (h *SessionHandler) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.sessionUseCase.Register(c.Request.Context(), authUseCase.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Department:  req.Department,
		Position:    req.Position,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// LoginHandler opens a session.
// POST /auth/login - No authentication required.
// Returns 200 OK with the access token in the body and the refresh
// credential in an HttpOnly cookie.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	out, err := h.sessionUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.setRefreshCookie(c, out.RefreshToken, h.cookieMaxAge)

	c.JSON(http.StatusOK, dto.SessionResponse{
		AccessToken: out.AccessToken,
		TokenType:   tokenType,
		ExpiresIn:   out.ExpiresIn,
		UserID:      out.UserID,
		Role:        out.Role,
	})
}

// RefreshHandler mints a new access token from the refresh credential.
// POST /auth/auto-refresh - No bearer authentication; the refresh credential
// is read from the optional JSON body field "refresh", falling back to the
// refresh cookie. Returns 200 OK and echoes the new access token in the
// Authorization response header.
func (h *SessionHandler) RefreshHandler(c *gin.Context) {
	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidRefreshToken, h.logger)
		return
	}

	out, err := h.sessionUseCase.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Authorization", tokenType+" "+out.AccessToken)
	c.JSON(http.StatusOK, dto.SessionResponse{
		AccessToken: out.AccessToken,
		TokenType:   tokenType,
		ExpiresIn:   out.ExpiresIn,
		UserID:      out.UserID,
		Role:        out.Role,
	})
}

// LogoutHandler closes the session named by the refresh cookie.
// POST /auth/logout - No bearer authentication required; a client with a
// garbage or expired cookie must still be able to log out. The cookie is
// always cleared, whatever it contained.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err == nil && refreshToken != "" {
		h.sessionUseCase.Logout(c.Request.Context(), refreshToken)
	}

	h.setRefreshCookie(c, "", -1)

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}

// refreshTokenFromRequest reads the refresh credential from the JSON body,
// falling back to the cookie. A missing or unparseable body is not an error.
func (h *SessionHandler) refreshTokenFromRequest(c *gin.Context) string {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.Refresh != "" {
		return req.Refresh
	}
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		return cookie
	}
	return ""
}

// setRefreshCookie writes the refresh cookie. SameSite=None lets the browser
// send it on cross-origin requests from the web frontend; None requires the
// Secure flag in production.
func (h *SessionHandler) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(refreshCookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
