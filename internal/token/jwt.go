package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/model"
)

// Decode errors. All of them wrap model.ErrTokenInvalid.
var (
	ErrBadSignature = fmt.Errorf("%w: bad signature", model.ErrTokenInvalid)
	ErrExpired      = fmt.Errorf("%w: expired", model.ErrTokenInvalid)
	ErrMalformed    = fmt.Errorf("%w: malformed", model.ErrTokenInvalid)
)

// Claims is the fixed token payload: subject, issue time and expiry.
type Claims struct {
	jwt.RegisteredClaims
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC. The algorithm is
// fixed at construction and never taken from the token header.
type JWT struct {
	secretKey []byte
	method    *jwt.SigningMethodHMAC
}

// NewJWT creates a new JWT token manager with the provided secret key and
// HMAC algorithm name (HS256, HS384 or HS512).
func NewJWT(secretKey, algorithm string) (*JWT, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret key must not be empty")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", algorithm)
	}

	return &JWT{secretKey: []byte(secretKey), method: method}, nil
}

// Algorithm returns the configured signing algorithm name.
func (j *JWT) Algorithm() string {
	return j.method.Alg()
}

// ExpiresAt is the expiry Encode writes for a token issued at now, at the
// whole-second precision of the exp claim.
func ExpiresAt(now time.Time, ttl time.Duration) time.Time {
	return jwt.NewNumericDate(now.Add(ttl)).Time
}

// Encode creates a token for subject that expires ttl after now.
func (j *JWT) Encode(subject uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	token := jwt.NewWithClaims(j.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(ExpiresAt(now, ttl)),
		},
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Decode validates tokenString at the instant now and returns its subject.
func (j *JWT) Decode(tokenString string, now time.Time) (uuid.UUID, error) {
	claims, err := j.DecodeClaims(tokenString, now)
	if err != nil {
		return uuid.Nil, err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil || subject == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: subject %q", ErrMalformed, claims.Subject)
	}

	return subject, nil
}

// DecodeClaims validates signature, algorithm and expiry and returns the payload.
func (j *JWT) DecodeClaims(tokenString string, now time.Time) (Claims, error) {
	claims := Claims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, classify(err)
	}

	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
