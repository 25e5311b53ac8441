package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository is an in-memory UserStore. It is safe for concurrent use
// and intended for local runs and tests.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]model.User),
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.find(ctx, func(u model.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.find(ctx, func(u model.User) bool { return u.Username == username })
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return model.User{}, model.ErrAlreadyExists
	}
	if r.conflicts(user) {
		return model.User{}, model.ErrAlreadyExists
	}

	r.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, changes model.UserChanges) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	updated := changes.Apply(user)
	if r.conflicts(updated) {
		return model.User{}, model.ErrAlreadyExists
	}

	r.users[id] = updated
	return updated, nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *UserRepository) find(ctx context.Context, match func(model.User) bool) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

// conflicts reports whether another user holds the same email or username.
// Callers must hold the lock.
func (r *UserRepository) conflicts(user model.User) bool {
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email || u.Username == user.Username {
			return true
		}
	}
	return false
}
