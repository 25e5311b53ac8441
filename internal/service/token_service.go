package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/token"
)

// TokenService issues and parses access tokens with a fixed TTL.
type TokenService struct {
	manager model.TokenManager
	ttl     time.Duration
	logger  *logger.Logger
	now     func() time.Time
}

func NewTokenService(manager model.TokenManager, ttl time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, ttl: ttl, logger: logger, now: time.Now}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.AccessToken, error) {
	now := s.now()

	access, err := s.manager.Encode(userID, s.ttl, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "Token service: failed to issue access token",
			"user_id", userID,
			"error", err.Error())
		return model.AccessToken{}, fmt.Errorf("issue access: %w", err)
	}

	return model.AccessToken{
		AccessToken: access,
		TokenType:   model.TokenType,
		ExpiresAt:   token.ExpiresAt(now, s.ttl),
	}, nil
}

// GetUserID validates token against the current time and returns its subject.
// Every failure wraps model.ErrTokenInvalid.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.Decode(token, s.now())
	if err != nil {
		s.logger.DebugContext(ctx, "Token service: rejected access token",
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}
	return userID, nil
}
