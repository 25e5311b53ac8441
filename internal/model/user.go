package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, changes UserChanges) (User, error)
	Ping(ctx context.Context) error
}

// User represents a stored user with authentication material.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserCreate carries registration input. Nil flags fall back to
// active=true, superuser=false.
type UserCreate struct {
	Email       string
	Username    string
	Password    string
	IsActive    *bool
	IsSuperuser *bool
}

// UserUpdate carries a partial update. Nil fields are left unchanged.
// Password is plaintext and gets hashed before it reaches the store.
type UserUpdate struct {
	Email       *string
	Username    *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}

// UserChanges is a partial update as the store sees it.
type UserChanges struct {
	Email          *string
	Username       *string
	HashedPassword *string
	IsActive       *bool
	IsSuperuser    *bool
	UpdatedAt      time.Time
}

// Apply returns a copy of u with non-nil changes applied.
func (c UserChanges) Apply(u User) User {
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.Username != nil {
		u.Username = *c.Username
	}
	if c.HashedPassword != nil {
		u.HashedPassword = *c.HashedPassword
	}
	if c.IsActive != nil {
		u.IsActive = *c.IsActive
	}
	if c.IsSuperuser != nil {
		u.IsSuperuser = *c.IsSuperuser
	}
	if !c.UpdatedAt.IsZero() {
		u.UpdatedAt = c.UpdatedAt
	}
	return u
}

// PasswordHasher hashes and verifies stored credentials.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}
