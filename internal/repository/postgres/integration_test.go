//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/backend-template/internal/model"
	repo "github.com/dtroode/backend-template/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "app_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/app_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(username, email string) model.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		HashedPassword: "$2a$10$dummyhash",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	require.NoError(t, ur.Ping(ctx))

	u := newUser("alice", "alice@example.com")
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, u.ID, saved.ID)
	require.True(t, saved.IsActive)

	byEmail, err := ur.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byUsername, err := ur.GetByUsername(ctx, u.Username)
	require.NoError(t, err)
	require.Equal(t, u.ID, byUsername.ID)

	_, err = ur.Create(ctx, newUser("alice2", u.Email))
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	_, err = ur.Create(ctx, newUser(u.Username, "other@example.com"))
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	inactive, promoted := false, true
	updated, err := ur.Update(ctx, u.ID, model.UserChanges{
		IsActive:    &inactive,
		IsSuperuser: &promoted,
		UpdatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	require.True(t, updated.IsSuperuser)
	require.Equal(t, u.Email, updated.Email)
	require.Equal(t, u.HashedPassword, updated.HashedPassword)

	byID, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, byID.IsActive)

	_, err = ur.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = ur.Update(ctx, uuid.New(), model.UserChanges{UpdatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, model.ErrNotFound)
}
