package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/safework/safework/internal/auth/domain"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/httputil"
	"github.com/safework/safework/internal/token"
)

// AccessVerifier verifies access tokens and returns their claims.
type AccessVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// AuthenticationMiddleware authenticates requests via a Bearer access token
// in the Authorization header (case-insensitive "bearer"). On success the
// caller's identity is stored in the request context for GetIdentity.
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Invalid signature, expired token, malformed claims → 401 Unauthorized
func AuthenticationMiddleware(verifier AccessVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		accessToken := authHeader[len(bearerPrefix):]
		if accessToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(accessToken)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Debug("authentication failed: unparseable subject")
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		identity := authDomain.Identity{UserID: userID, Role: claims.Role}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// AdminMiddleware restricts access to admin identities.
//
// MUST be used after AuthenticationMiddleware. Returns 401 when no identity
// is present and 403 when the identity lacks the admin role.
func AdminMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.Debug("admin check failed: no identity in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !identity.IsAdmin() {
			logger.Debug("admin check failed: insufficient role",
				slog.Int64("user_id", identity.UserID),
				slog.String("role", identity.Role))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
