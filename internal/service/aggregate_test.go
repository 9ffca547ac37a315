package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/mocks"
)

func TestSyncFavoriteCount_Applied(t *testing.T) {
	articles := mocks.NewMockArticleRepository(t)
	maintainer := NewAggregateMaintainer(articles)

	articles.EXPECT().
		CountFavorites(mock.Anything, "a-1").
		Return(3, int64(7), nil)
	articles.EXPECT().
		SetFavCount(mock.Anything, "a-1", 3, int64(7)).
		Return(nil)

	err := maintainer.SyncFavoriteCount(context.Background(), "a-1")
	require.NoError(t, err)
}

func TestSyncFavoriteCount_StaleIsSwallowed(t *testing.T) {
	articles := mocks.NewMockArticleRepository(t)
	maintainer := NewAggregateMaintainer(articles)

	articles.EXPECT().
		CountFavorites(mock.Anything, "a-1").
		Return(3, int64(7), nil)
	articles.EXPECT().
		SetFavCount(mock.Anything, "a-1", 3, int64(7)).
		Return(domain.ErrStaleAggregate)

	// A stale persist means a newer recount owns the value. Not an error.
	err := maintainer.SyncFavoriteCount(context.Background(), "a-1")
	require.NoError(t, err)
}

func TestSyncFavoriteCount_CountError(t *testing.T) {
	articles := mocks.NewMockArticleRepository(t)
	maintainer := NewAggregateMaintainer(articles)

	boom := errors.New("connection reset")
	articles.EXPECT().
		CountFavorites(mock.Anything, "a-1").
		Return(0, int64(0), boom)

	err := maintainer.SyncFavoriteCount(context.Background(), "a-1")
	require.ErrorIs(t, err, boom)
}

func TestSyncFavoriteCount_PersistError(t *testing.T) {
	articles := mocks.NewMockArticleRepository(t)
	maintainer := NewAggregateMaintainer(articles)

	boom := errors.New("connection reset")
	articles.EXPECT().
		CountFavorites(mock.Anything, "a-1").
		Return(1, int64(2), nil)
	articles.EXPECT().
		SetFavCount(mock.Anything, "a-1", 1, int64(2)).
		Return(boom)

	err := maintainer.SyncFavoriteCount(context.Background(), "a-1")
	require.ErrorIs(t, err, boom)
}

func TestSyncFavoriteCount_SerializesPerArticle(t *testing.T) {
	articles := mocks.NewMockArticleRepository(t)
	maintainer := NewAggregateMaintainer(articles)

	articles.EXPECT().
		CountFavorites(mock.Anything, mock.AnythingOfType("string")).
		Return(1, int64(1), nil)
	articles.EXPECT().
		SetFavCount(mock.Anything, mock.AnythingOfType("string"), 1, int64(1)).
		Return(nil)

	// Hammer two articles concurrently; the per-article lock must not
	// deadlock or panic, and every call must complete.
	done := make(chan error, 20)
	for i := 0; i < 10; i++ {
		go func() {
			done <- maintainer.SyncFavoriteCount(context.Background(), "a-1")
		}()
		go func() {
			done <- maintainer.SyncFavoriteCount(context.Background(), "a-2")
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, <-done)
	}
}

func TestLockFor_SameArticleSameLock(t *testing.T) {
	articles := mocks.NewMockArticleRepository(t)
	maintainer := NewAggregateMaintainer(articles)

	require.Same(t, maintainer.lockFor("a-1"), maintainer.lockFor("a-1"))
	require.NotSame(t, maintainer.lockFor("a-1"), maintainer.lockFor("a-2"))
}
