package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and fetch by id", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := newTestUser()
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, got.Username)
		assert.Equal(t, user.Email, got.Email)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
		assert.Equal(t, user.PasswordSalt, got.PasswordSalt)
	})

	t.Run("fetch by username and email", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := newTestUser()
		require.NoError(t, repo.Create(ctx, user))

		byName, err := repo.GetByUsername(ctx, user.Username)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byEmail, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("unknown id yields ErrNotFound", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate username yields ErrDuplicateKey", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		first := newTestUser()
		require.NoError(t, repo.Create(ctx, first))

		second := newTestUser()
		second.Username = first.Username
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	})

	t.Run("duplicate email yields ErrDuplicateKey", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		first := newTestUser()
		require.NoError(t, repo.Create(ctx, first))

		second := newTestUser()
		second.Email = first.Email
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	})

	t.Run("update persists profile fields", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := newTestUser()
		require.NoError(t, repo.Create(ctx, user))

		user.Bio = "updated bio"
		user.Image = "http://example.com/pic.png"
		require.NoError(t, repo.Update(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "updated bio", got.Bio)
		assert.Equal(t, "http://example.com/pic.png", got.Image)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
	})

	t.Run("update of missing user yields ErrNotFound", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := newTestUser()
		err := repo.Update(ctx, user)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
