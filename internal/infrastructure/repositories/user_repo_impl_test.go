package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/pkg/utils"
)

func newUser(email string) *entities.User {
	return &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hash",
		Role:         entities.UserRoleGuest,
		AvatarURL:    null.StringFrom("https://example.com/a.png"),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newUser("guest@example.com")
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, entities.UserRoleGuest, got.Role)
	assert.True(t, got.AvatarURL.Valid)
	assert.False(t, got.IDVerified)

	byEmail, err := repo.GetByEmail(ctx, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newUser("host@example.com")
	require.NoError(t, repo.Create(ctx, u))

	u.Name = "Renamed"
	u.IDVerified = true
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.IDVerified)

	missing := newUser("missing@example.com")
	assert.ErrorIs(t, repo.Update(ctx, missing), domainerrors.ErrNotFound)
}

func TestUserRepository_ListSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := newUser("alice@example.com")
	alice.Name = "Alice"
	bob := newUser("bob@example.com")
	bob.Name = "Bob"
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, alice.ID, found[0].ID)
}
