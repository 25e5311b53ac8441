package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/metrics"
	"github.com/dtroode/backend-template/internal/model"
)

// Identity resolves a bearer token to a user and applies the gating tiers:
// token, existence, active, superuser. Each tier includes the previous ones
// and the chain stops at the first failure.
type Identity struct {
	userStore model.UserStore
	tokens    *TokenService
	metrics   *metrics.Auth
	logger    *logger.Logger
}

func NewIdentity(userStore model.UserStore, tokens *TokenService, metrics *metrics.Auth, logger *logger.Logger) *Identity {
	return &Identity{
		userStore: userStore,
		tokens:    tokens,
		metrics:   metrics,
		logger:    logger,
	}
}

// Authenticated returns the user behind token without checking any flags.
func (s *Identity) Authenticated(ctx context.Context, token string) (model.User, error) {
	userID, err := s.tokens.GetUserID(ctx, token)
	if err != nil {
		s.metrics.GateRejected(metrics.StageToken)
		return model.User{}, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.metrics.GateRejected(metrics.StageExistence)
			s.logger.InfoContext(ctx, "Identity service: token subject not found",
				"user_id", userID)
			return model.User{}, model.ErrIdentityNotFound
		}
		s.logger.ErrorContext(ctx, "Identity service: failed to load user",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}

	return user, nil
}

// Active is Authenticated plus the active-account check.
func (s *Identity) Active(ctx context.Context, token string) (model.User, error) {
	user, err := s.Authenticated(ctx, token)
	if err != nil {
		return model.User{}, err
	}

	if err := RequireActive(user); err != nil {
		s.metrics.GateRejected(metrics.StageActive)
		return model.User{}, err
	}

	return user, nil
}

// Superuser is Active plus the superuser check.
func (s *Identity) Superuser(ctx context.Context, token string) (model.User, error) {
	user, err := s.Active(ctx, token)
	if err != nil {
		return model.User{}, err
	}

	if err := RequireSuperuser(user); err != nil {
		s.metrics.GateRejected(metrics.StagePrivilege)
		return model.User{}, err
	}

	return user, nil
}

func RequireActive(user model.User) error {
	if !user.IsActive {
		return model.ErrAccountInactive
	}
	return nil
}

// RequireSuperuser checks only the privilege flag; callers that need the
// full chain apply RequireActive first.
func RequireSuperuser(user model.User) error {
	if !user.IsSuperuser {
		return model.ErrPrivilegeDenied
	}
	return nil
}
