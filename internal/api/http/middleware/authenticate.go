package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/backend-template/internal/api/http/handler"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// IdentityService resolves bearer tokens through the gating tiers.
type IdentityService interface {
	Authenticated(ctx context.Context, token string) (model.User, error)
	Active(ctx context.Context, token string) (model.User, error)
	Superuser(ctx context.Context, token string) (model.User, error)
}

// Authenticate gates routes on the caller's bearer token and stores the
// resolved user in the request context.
type Authenticate struct {
	identity       IdentityService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identity IdentityService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identity: identity, contextManager: contextManager, logger: logger}
}

// RequireAuthenticated admits any caller whose token resolves to a user.
func (m *Authenticate) RequireAuthenticated() gin.HandlerFunc {
	return m.require(m.identity.Authenticated)
}

// RequireActive admits authenticated callers with an active account.
func (m *Authenticate) RequireActive() gin.HandlerFunc {
	return m.require(m.identity.Active)
}

// RequireSuperuser admits active superusers.
func (m *Authenticate) RequireSuperuser() gin.HandlerFunc {
	return m.require(m.identity.Superuser)
}

func (m *Authenticate) require(resolve func(ctx context.Context, token string) (model.User, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			handler.Abort(c, err)
			return
		}

		user, err := resolve(c.Request.Context(), token)
		if err != nil {
			m.logger.DebugContext(c.Request.Context(), "Authenticate middleware: request rejected",
				"path", c.FullPath(),
				"error", err.Error())
			handler.Abort(c, err)
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(c.Request.Context(), user))
		c.Next()
	}
}

// BearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively; anything else counts as
// a missing token.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", model.ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", model.ErrMissingToken
	}
	return token, nil
}
