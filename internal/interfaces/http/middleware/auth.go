package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	identityapp "github.com/facturo/backend/internal/application/identity"
	"github.com/facturo/backend/internal/infrastructure/auth"
	"github.com/facturo/backend/internal/infrastructure/logger"
	"github.com/facturo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys populated by the auth middleware
const (
	// ContextKeyUserID holds the authenticated user's ID
	ContextKeyUserID = "auth_user_id"
	// ContextKeyTenantID holds the tenant (team) ID every data access is scoped to
	ContextKeyTenantID = "auth_tenant_id"
	// ContextKeyRole holds the user's role within the tenant
	ContextKeyRole = "auth_role"
)

// SessionResolver resolves a verified identity into a session, provisioning
// the user and team on first contact
type SessionResolver interface {
	Resolve(ctx context.Context, ident *auth.Identity) (*identityapp.Session, error)
}

// Auth verifies the bearer token and resolves the caller's session. The
// tenant ID placed in the context is the sole scope for all data access
// behind this middleware.
func Auth(verifier *auth.TokenVerifier, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Missing or malformed Authorization header")
			return
		}

		ident, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), ident)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, "Failed to resolve session", c.GetString("request_id")))
			return
		}

		c.Set(ContextKeyUserID, session.UserID)
		c.Set(ContextKeyTenantID, session.TenantID)
		c.Set(ContextKeyRole, string(session.Role))

		// Propagate identity to the request context so repository and
		// render logs carry it
		reqLogger := logger.FromContext(c.Request.Context())
		ctx, reqLogger := logger.WithTenantID(c.Request.Context(), reqLogger, session.TenantID.String())
		ctx, _ = logger.WithUserID(ctx, reqLogger, session.UserID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID returns the authenticated user ID from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return contextUUID(c, ContextKeyUserID)
}

// GetTenantID returns the tenant ID from the gin context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	return contextUUID(c, ContextKeyTenantID)
}

// GetRole returns the caller's role from the gin context
func GetRole(c *gin.Context) string {
	return c.GetString(ContextKeyRole)
}

func contextUUID(c *gin.Context, key string) (uuid.UUID, bool) {
	value, exists := c.Get(key)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, c.GetString("request_id")))
}
