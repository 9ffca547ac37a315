package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
	"blog-backend/internal/service"
)

func TestPostgresRelationRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	relations := repository.NewPostgresRelationRepository(testDB.Pool)
	articles := repository.NewPostgresArticleRepository(testDB.Pool)
	users := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("add favorite is idempotent and bumps epoch once per change", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "favorites")

		reader := newTestUser()
		require.NoError(t, users.Create(ctx, reader))
		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))
		article := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, article))

		changed, err := relations.AddFavorite(ctx, reader.ID, article.ID)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = relations.AddFavorite(ctx, reader.ID, article.ID)
		require.NoError(t, err)
		assert.False(t, changed)

		got, err := articles.GetByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.FavEpoch)
	})

	t.Run("add favorite on missing article yields ErrNotFound", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "favorites")

		reader := newTestUser()
		require.NoError(t, users.Create(ctx, reader))

		_, err := relations.AddFavorite(ctx, reader.ID, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("remove favorite reports change and tolerates absence", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "favorites")

		reader := newTestUser()
		require.NoError(t, users.Create(ctx, reader))
		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))
		article := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, article))

		_, err := relations.AddFavorite(ctx, reader.ID, article.ID)
		require.NoError(t, err)

		changed, err := relations.RemoveFavorite(ctx, reader.ID, article.ID)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = relations.RemoveFavorite(ctx, reader.ID, article.ID)
		require.NoError(t, err)
		assert.False(t, changed)

		got, err := articles.GetByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.FavEpoch)
	})

	t.Run("snapshot count matches favorite edges", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "favorites")

		first := newTestUser()
		require.NoError(t, users.Create(ctx, first))
		second := newTestUser()
		require.NoError(t, users.Create(ctx, second))
		article := newTestArticle(first.ID)
		require.NoError(t, articles.Create(ctx, article))

		_, err := relations.AddFavorite(ctx, first.ID, article.ID)
		require.NoError(t, err)
		_, err = relations.AddFavorite(ctx, second.ID, article.ID)
		require.NoError(t, err)

		count, epoch, err := articles.CountFavorites(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, int64(2), epoch)

		require.NoError(t, articles.SetFavCount(ctx, article.ID, count, epoch))
		got, err := articles.GetByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.FavCount)
	})

	t.Run("is favorited", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "favorites")

		reader := newTestUser()
		require.NoError(t, users.Create(ctx, reader))
		article := newTestArticle(reader.ID)
		require.NoError(t, articles.Create(ctx, article))

		favorited, err := relations.IsFavorited(ctx, reader.ID, article.ID)
		require.NoError(t, err)
		assert.False(t, favorited)

		_, err = relations.AddFavorite(ctx, reader.ID, article.ID)
		require.NoError(t, err)

		favorited, err = relations.IsFavorited(ctx, reader.ID, article.ID)
		require.NoError(t, err)
		assert.True(t, favorited)
	})

	t.Run("follow and unfollow are idempotent", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "follows")

		follower := newTestUser()
		require.NoError(t, users.Create(ctx, follower))
		followee := newTestUser()
		require.NoError(t, users.Create(ctx, followee))

		changed, err := relations.Follow(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = relations.Follow(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.False(t, changed)

		following, err := relations.IsFollowing(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.True(t, following)

		changed, err = relations.Unfollow(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = relations.Unfollow(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("self follow violates check constraint", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "follows")

		user := newTestUser()
		require.NoError(t, users.Create(ctx, user))

		_, err := relations.Follow(ctx, user.ID, user.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidRelation)
	})

	t.Run("concurrent favorites from two users converge to count 2", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "favorites")

		first := newTestUser()
		require.NoError(t, users.Create(ctx, first))
		second := newTestUser()
		require.NoError(t, users.Create(ctx, second))
		article := newTestArticle(first.ID)
		require.NoError(t, articles.Create(ctx, article))

		// The full mutation path: edge write, epoch bump and recount,
		// racing from both users at once.
		relationService := service.NewRelationService(relations, service.NewAggregateMaintainer(articles))

		errs := make(chan error, 2)
		for _, uid := range []string{first.ID, second.ID} {
			go func(userID string) {
				errs <- relationService.AddFavorite(ctx, userID, article.ID)
			}(uid)
		}
		require.NoError(t, <-errs)
		require.NoError(t, <-errs)

		got, err := articles.GetByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.FavCount)
		assert.Equal(t, int64(2), got.FavEpoch)
	})

	t.Run("follow unknown user yields ErrNotFound", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "follows")

		follower := newTestUser()
		require.NoError(t, users.Create(ctx, follower))

		_, err := relations.Follow(ctx, follower.ID, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
