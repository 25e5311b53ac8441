package model

import "errors"

// Persistence errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Authentication and authorization errors. Transports map each of them to a
// single response per kind, so messages here never reach clients verbatim.
var (
	// ErrAuthenticationFailed covers both unknown identifier and wrong password.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrTokenInvalid covers bad signature, expiry and malformed claims.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrIdentityNotFound means the token was valid but its subject no longer exists.
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrAccountInactive   = errors.New("account inactive")
	ErrPrivilegeDenied   = errors.New("privilege denied")
	ErrMissingToken      = errors.New("missing authorization token")
	ErrInvalidUserParams = errors.New("invalid user params")

	// ErrDependencyUnavailable is a server-side fault of a collaborator
	// (database, queue), never an authorization decision.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
