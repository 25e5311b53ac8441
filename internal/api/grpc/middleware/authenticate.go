package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"

	"github.com/dtroode/backend-template/internal/api/grpc/handler"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// IdentityService resolves a bearer token to an active superuser.
type IdentityService interface {
	Superuser(ctx context.Context, token string) (model.User, error)
}

// Authenticate guards administrative RPCs.
type Authenticate struct {
	identity       IdentityService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identity IdentityService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identity: identity, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the bearer token from metadata, requires an active
// superuser and returns a context carrying that user.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, handler.HandleError(model.ErrMissingToken)
	}

	user, err := m.identity.Superuser(ctx, token)
	if err != nil {
		m.logger.DebugContext(ctx, "Authenticate interceptor: request rejected",
			"error", err.Error())
		return nil, handler.HandleError(err)
	}

	return m.contextManager.SetUserToContext(ctx, user), nil
}
