package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
)

func TestMemoryUserRepository_CreateAndFetch(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestMemoryUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "h1"}))

	err := repo.Create(ctx, &domain.User{Name: "B", Email: "a@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryUserRepository_UpdateKeepsEmailAndHash(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	phone := int64(555)
	patched := *user
	patched.Name = "B"
	patched.Phone = &phone
	// Even a tampered email on the update struct must not take effect.
	patched.Email = "evil@x.com"
	patched.PasswordHash = "tampered"
	require.NoError(t, repo.Update(ctx, &patched))

	stored, err := repo.GetByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "B", stored.Name)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Equal(t, "hash", stored.PasswordHash)
	require.NotNil(t, stored.Phone)
	assert.Equal(t, int64(555), *stored.Phone)
}

func TestMemoryUserRepository_NotFound(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "64b2f0e1a2b3c4d5e6f70809")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, &domain.User{})
	assert.ErrorIs(t, err, ErrNotFound)
}
