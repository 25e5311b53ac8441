package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/backend-template/internal/mocks"
	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/testutil"
	"github.com/dtroode/backend-template/internal/token"
)

func TestTokenService_Issue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	tokMan := servermocks.NewTokenManager(t)
	tokMan.On("Encode", userID, 30*time.Minute, now).Return("signed", nil).Once()

	s := NewTokenService(tokMan, 30*time.Minute, testutil.MakeNoopLogger())
	s.now = func() time.Time { return now }

	got, err := s.Issue(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, model.AccessToken{AccessToken: "signed", TokenType: "bearer", ExpiresAt: now.Add(30 * time.Minute)}, got)
}

func TestTokenService_GetUserID(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tokMan := servermocks.NewTokenManager(t)
		tokMan.On("Decode", "tok", now).Return(userID, nil).Once()
		s := NewTokenService(tokMan, time.Hour, testutil.MakeNoopLogger())
		s.now = func() time.Time { return now }

		got, err := s.GetUserID(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("decoder errors become token invalid", func(t *testing.T) {
		t.Parallel()

		tokMan := servermocks.NewTokenManager(t)
		tokMan.On("Decode", "tok", now).Return(uuid.Nil, errors.New("whatever")).Once()
		s := NewTokenService(tokMan, time.Hour, testutil.MakeNoopLogger())
		s.now = func() time.Time { return now }

		_, err := s.GetUserID(context.Background(), "tok")
		require.ErrorIs(t, err, model.ErrTokenInvalid)
	})
}

func TestTokenService_WithJWT(t *testing.T) {
	t.Parallel()

	codec, err := token.NewJWT("secret", "HS256")
	require.NoError(t, err)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	s := NewTokenService(codec, time.Minute, testutil.MakeNoopLogger())
	s.now = func() time.Time { return clock }

	userID := uuid.New()
	issued, err := s.Issue(context.Background(), userID)
	require.NoError(t, err)

	got, err := s.GetUserID(context.Background(), issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	clock = start.Add(time.Minute + time.Second)
	_, err = s.GetUserID(context.Background(), issued.AccessToken)
	require.ErrorIs(t, err, token.ErrExpired)
}

func TestTokenService_ExpiresAtMatchesClaim(t *testing.T) {
	t.Parallel()

	codec, err := token.NewJWT("secret", "HS256")
	require.NoError(t, err)

	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 700*int(time.Millisecond), time.UTC)
	clock := issuedAt
	s := NewTokenService(codec, time.Minute, testutil.MakeNoopLogger())
	s.now = func() time.Time { return clock }

	issued, err := s.Issue(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC), issued.ExpiresAt.UTC())

	clock = issued.ExpiresAt.Add(-time.Nanosecond)
	_, err = s.GetUserID(context.Background(), issued.AccessToken)
	require.NoError(t, err)

	clock = issued.ExpiresAt
	_, err = s.GetUserID(context.Background(), issued.AccessToken)
	require.ErrorIs(t, err, token.ErrExpired)
}
