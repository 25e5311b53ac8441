package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/metrics"
	"github.com/dtroode/backend-template/internal/model"
)

// LookupKind names the field a login identifier is matched against.
type LookupKind string

const (
	LookupEmail    LookupKind = "email"
	LookupUsername LookupKind = "username"
)

// LookupStrategy resolves a login identifier of one kind to a stored user.
type LookupStrategy struct {
	Kind LookupKind
	Find func(ctx context.Context, identifier string) (model.User, error)
}

// dummyPassword is hashed once and verified against when the identifier is
// unknown, so unknown users cost as much as wrong passwords.
const dummyPassword = "dummy-password-for-timing"

type Auth struct {
	userStore  model.UserStore
	hasher     model.PasswordHasher
	tokens     *TokenService
	strategies []LookupStrategy
	metrics    *metrics.Auth
	logger     *logger.Logger
	now        func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens *TokenService,
	metrics *metrics.Auth,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		strategies: []LookupStrategy{
			{Kind: LookupEmail, Find: userStore.GetByEmail},
			{Kind: LookupUsername, Find: userStore.GetByUsername},
		},
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Strategies returns the ordered identifier lookups used by
// AuthenticateByUsernameOrEmail.
func (a *Auth) Strategies() []LookupStrategy {
	return append([]LookupStrategy(nil), a.strategies...)
}

// AuthenticateByIdentifier verifies password for the user found by a single
// lookup kind. Unknown identifier and wrong password are indistinguishable.
func (a *Auth) AuthenticateByIdentifier(ctx context.Context, kind LookupKind, identifier, password string) (model.User, error) {
	for _, s := range a.strategies {
		if s.Kind == kind {
			return a.authenticate(ctx, []LookupStrategy{s}, identifier, password)
		}
	}
	return model.User{}, fmt.Errorf("unknown lookup kind %q", kind)
}

// AuthenticateByUsernameOrEmail tries each lookup strategy in order, lookup
// and password check together; the first strategy that authenticates wins.
func (a *Auth) AuthenticateByUsernameOrEmail(ctx context.Context, identifier, password string) (model.User, error) {
	return a.authenticate(ctx, a.strategies, identifier, password)
}

func (a *Auth) authenticate(ctx context.Context, strategies []LookupStrategy, identifier, password string) (model.User, error) {
	found := false
	for _, s := range strategies {
		user, err := a.authenticateWith(ctx, s, identifier, password)
		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, model.ErrAuthenticationFailed):
			found = true
		case !errors.Is(err, model.ErrNotFound):
			return model.User{}, err
		}
	}

	// Unknown identifiers pay for one verification like a wrong password does.
	if !found {
		a.verifyDummy(ctx, password)
		a.logger.InfoContext(ctx, "Auth service: unknown identifier",
			"identifier", identifier)
	}
	return model.User{}, model.ErrAuthenticationFailed
}

// authenticateWith looks the identifier up with a single strategy and checks
// the password. It returns model.ErrNotFound when no row matched and
// model.ErrAuthenticationFailed on a password mismatch.
func (a *Auth) authenticateWith(ctx context.Context, s LookupStrategy, identifier, password string) (model.User, error) {
	user, err := s.Find(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to look up user",
			"identifier", identifier,
			"lookup", s.Kind,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}

	if !a.hasher.Verify(ctx, password, user.HashedPassword) {
		a.logger.InfoContext(ctx, "Auth service: password mismatch",
			"user_id", user.ID,
			"lookup", s.Kind)
		return model.User{}, model.ErrAuthenticationFailed
	}
	return user, nil
}

func (a *Auth) verifyDummy(ctx context.Context, password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(ctx, dummyPassword)
		if err != nil {
			a.logger.WarnContext(ctx, "Auth service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash != "" {
		a.hasher.Verify(ctx, password, a.dummyHash)
	}
}

// Login authenticates by email or username and issues an access token.
// Inactive accounts are refused after their password has been checked.
func (a *Auth) Login(ctx context.Context, identifier, password string) (model.AccessToken, error) {
	a.logger.DebugContext(ctx, "Auth service: starting login",
		"identifier", identifier)

	user, err := a.AuthenticateByUsernameOrEmail(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, model.ErrAuthenticationFailed) {
			a.metrics.Login(metrics.LoginFailed)
		} else {
			a.metrics.Login(metrics.LoginError)
		}
		return model.AccessToken{}, err
	}

	if err := RequireActive(user); err != nil {
		a.metrics.Login(metrics.LoginInactive)
		a.logger.InfoContext(ctx, "Auth service: inactive user tried to log in",
			"user_id", user.ID)
		return model.AccessToken{}, err
	}

	token, err := a.tokens.Issue(ctx, user.ID)
	if err != nil {
		a.metrics.Login(metrics.LoginError)
		return model.AccessToken{}, err
	}

	a.metrics.Login(metrics.LoginSuccess)
	a.logger.InfoContext(ctx, "Auth service: login completed successfully",
		"user_id", user.ID)

	return token, nil
}

// CreateUser registers a new account. Nil flags default to active,
// non-superuser.
func (a *Auth) CreateUser(ctx context.Context, params model.UserCreate) (model.User, error) {
	if err := validateCreate(params); err != nil {
		return model.User{}, err
	}

	hash, err := a.hasher.Hash(ctx, params.Password)
	if err != nil {
		a.logger.ErrorContext(ctx, "Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user := model.User{
		ID:             uuid.New(),
		Username:       params.Username,
		Email:          params.Email,
		HashedPassword: hash,
		IsActive:       boolOr(params.IsActive, true),
		IsSuperuser:    boolOr(params.IsSuperuser, false),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.InfoContext(ctx, "Auth service: user already exists",
				"email", params.Email,
				"username", params.Username)
			return model.User{}, err
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}

	a.logger.InfoContext(ctx, "Auth service: user created",
		"user_id", saved.ID,
		"superuser", saved.IsSuperuser)

	return saved, nil
}

// UpdateUser applies a partial update. A new password is hashed before
// it reaches the store.
func (a *Auth) UpdateUser(ctx context.Context, id uuid.UUID, params model.UserUpdate) (model.User, error) {
	if err := validateUpdate(params); err != nil {
		return model.User{}, err
	}

	changes := model.UserChanges{
		Email:       params.Email,
		Username:    params.Username,
		IsActive:    params.IsActive,
		IsSuperuser: params.IsSuperuser,
		UpdatedAt:   a.now().UTC(),
	}

	if params.Password != nil {
		hash, err := a.hasher.Hash(ctx, *params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		changes.HashedPassword = &hash
	}

	saved, err := a.userStore.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, err
		}
		a.logger.ErrorContext(ctx, "Auth service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}

	a.logger.InfoContext(ctx, "Auth service: user updated",
		"user_id", id)

	return saved, nil
}

func (a *Auth) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}
	return user, nil
}

// EnsureSuperuser creates the first superuser unless a user with that email
// already exists. It reports whether an account was created.
func (a *Auth) EnsureSuperuser(ctx context.Context, email, username, password string) (bool, error) {
	if email == "" || username == "" || password == "" {
		a.logger.InfoContext(ctx, "Auth service: first superuser not configured, skipping")
		return false, nil
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.InfoContext(ctx, "Auth service: first superuser already exists",
			"email", email)
		return false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return false, fmt.Errorf("failed to check first superuser: %w", err)
	}

	superuser := true
	if _, err := a.CreateUser(ctx, model.UserCreate{
		Email:       email,
		Username:    username,
		Password:    password,
		IsSuperuser: &superuser,
	}); err != nil {
		return false, fmt.Errorf("failed to create first superuser: %w", err)
	}

	return true, nil
}

func validateCreate(params model.UserCreate) error {
	if err := validateEmail(params.Email); err != nil {
		return err
	}
	if strings.TrimSpace(params.Username) == "" {
		return fmt.Errorf("%w: username is required", model.ErrInvalidUserParams)
	}
	if params.Password == "" {
		return fmt.Errorf("%w: password is required", model.ErrInvalidUserParams)
	}
	return nil
}

func validateUpdate(params model.UserUpdate) error {
	if params.Email != nil {
		if err := validateEmail(*params.Email); err != nil {
			return err
		}
	}
	if params.Username != nil && strings.TrimSpace(*params.Username) == "" {
		return fmt.Errorf("%w: username must not be empty", model.ErrInvalidUserParams)
	}
	if params.Password != nil && *params.Password == "" {
		return fmt.Errorf("%w: password must not be empty", model.ErrInvalidUserParams)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email %q", model.ErrInvalidUserParams, email)
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
