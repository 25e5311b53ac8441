package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/backend-template/internal/model"
)

// userIDKey is the metadata key for the caller id on gRPC requests.
const userIDKey = "user_id"

type userKey struct{}

// Manager stores the resolved caller in a request context.
// Works for both gin request contexts and gRPC handler contexts.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext stores the user and mirrors its id into incoming gRPC
// metadata, so interceptors further down the chain can read it.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	ctx = context.WithValue(ctx, userKey{}, user)

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set(userIDKey, user.ID.String())

	return metadata.NewIncomingContext(ctx, md)
}

// GetUserFromContext returns the user stored by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

// GetUserIDFromContext returns the caller id, falling back to gRPC metadata.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if user, ok := m.GetUserFromContext(ctx); ok {
		return user.ID, true
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	ids := md.Get(userIDKey)
	if len(ids) == 0 {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(ids[0])
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
