package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	comments := repository.NewPostgresCommentRepository(testDB.Pool)
	articles := repository.NewPostgresArticleRepository(testDB.Pool)
	users := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	newComment := func(articleID, authorID, body string, at time.Time) *domain.Comment {
		return &domain.Comment{
			ID:        uuid.New().String(),
			Body:      body,
			ArticleID: articleID,
			AuthorID:  authorID,
			CreatedAt: at,
		}
	}

	t.Run("create and fetch by id", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "comments")

		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))
		article := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, article))

		comment := newComment(article.ID, author.ID, "nice write-up", time.Now())
		require.NoError(t, comments.Create(ctx, comment))

		got, err := comments.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "nice write-up", got.Body)
		assert.Equal(t, article.ID, got.ArticleID)
	})

	t.Run("create on missing article yields ErrNotFound", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "comments")

		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))

		comment := newComment("00000000-0000-0000-0000-000000000000", author.ID, "orphan", time.Now())
		assert.ErrorIs(t, comments.Create(ctx, comment), domain.ErrNotFound)
	})

	t.Run("list by article is newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "comments")

		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))
		article := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, article))
		other := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, other))

		first := newComment(article.ID, author.ID, "first", time.Now().Add(-time.Minute))
		require.NoError(t, comments.Create(ctx, first))
		second := newComment(article.ID, author.ID, "second", time.Now())
		require.NoError(t, comments.Create(ctx, second))
		elsewhere := newComment(other.ID, author.ID, "elsewhere", time.Now())
		require.NoError(t, comments.Create(ctx, elsewhere))

		got, err := comments.ListByArticle(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Body)
		assert.Equal(t, "first", got[1].Body)
	})

	t.Run("delete removes the comment", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "comments")

		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))
		article := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, article))

		comment := newComment(article.ID, author.ID, "gone soon", time.Now())
		require.NoError(t, comments.Create(ctx, comment))

		require.NoError(t, comments.Delete(ctx, comment.ID))
		assert.ErrorIs(t, comments.Delete(ctx, comment.ID), domain.ErrNotFound)

		_, err := comments.GetByID(ctx, comment.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("deleting the article cascades", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "comments")

		author := newTestUser()
		require.NoError(t, users.Create(ctx, author))
		article := newTestArticle(author.ID)
		require.NoError(t, articles.Create(ctx, article))

		comment := newComment(article.ID, author.ID, "attached", time.Now())
		require.NoError(t, comments.Create(ctx, comment))

		require.NoError(t, articles.Delete(ctx, article.ID))

		_, err := comments.GetByID(ctx, comment.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
