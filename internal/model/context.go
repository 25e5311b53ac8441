package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the resolved identity of a request.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
