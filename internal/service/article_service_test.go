package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/mocks"
	"blog-backend/internal/validator"
)

func newArticleService(t *testing.T) (*ArticleService, *mocks.MockArticleRepository, *mocks.MockUserRepository) {
	articles := mocks.NewMockArticleRepository(t)
	users := mocks.NewMockUserRepository(t)
	svc := NewArticleService(articles, users, NewSlugAssigner(), validator.NewValidator(), 5)
	return svc, articles, users
}

func validArticleInput() validator.ArticleInput {
	return validator.ArticleInput{
		Title:       "How to Train Your Dragon",
		Description: "Ever wonder how?",
		Body:        "You have to believe",
		Tags:        []string{"dragons", "training"},
	}
}

func TestCreateArticle_AssignsSlugOnce(t *testing.T) {
	svc, articles, users := newArticleService(t)

	users.EXPECT().
		GetByID(mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1"}, nil)

	var saved *domain.Article
	articles.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
		Run(func(ctx context.Context, article *domain.Article) {
			saved = article
		}).
		Return(nil)

	article, err := svc.Create(context.Background(), "u-1", validArticleInput())
	require.NoError(t, err)

	require.Same(t, saved, article)
	require.True(t, strings.HasPrefix(article.Slug, "how-to-train-your-dragon-"))
	require.Len(t, article.Slug, len("how-to-train-your-dragon-")+SlugSuffixLength)
	require.Equal(t, "u-1", article.AuthorID)
	require.Zero(t, article.FavCount)
}

func TestCreateArticle_RetriesOnSlugCollision(t *testing.T) {
	svc, articles, users := newArticleService(t)

	users.EXPECT().
		GetByID(mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1"}, nil)

	var slugs []string
	articles.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
		Run(func(ctx context.Context, article *domain.Article) {
			slugs = append(slugs, article.Slug)
		}).
		Return(domain.ErrDuplicateKey).Times(2)
	articles.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
		Run(func(ctx context.Context, article *domain.Article) {
			slugs = append(slugs, article.Slug)
		}).
		Return(nil).Once()

	_, err := svc.Create(context.Background(), "u-1", validArticleInput())
	require.NoError(t, err)

	// Every attempt must carry fresh entropy.
	require.Len(t, slugs, 3)
	require.NotEqual(t, slugs[0], slugs[1])
	require.NotEqual(t, slugs[1], slugs[2])
}

func TestCreateArticle_SlugExhausted(t *testing.T) {
	svc, articles, users := newArticleService(t)

	users.EXPECT().
		GetByID(mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1"}, nil)
	articles.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
		Return(domain.ErrDuplicateKey).Times(5)

	_, err := svc.Create(context.Background(), "u-1", validArticleInput())
	require.ErrorIs(t, err, domain.ErrSlugExhausted)
}

func TestCreateArticle_UnknownAuthor(t *testing.T) {
	svc, _, users := newArticleService(t)

	users.EXPECT().
		GetByID(mock.Anything, "u-gone").
		Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), "u-gone", validArticleInput())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateArticle_InvalidInput(t *testing.T) {
	svc, _, _ := newArticleService(t)

	in := validArticleInput()
	in.Title = ""

	_, err := svc.Create(context.Background(), "u-1", in)
	require.Error(t, err)
}

func TestUpdateArticle_KeepsSlug(t *testing.T) {
	svc, articles, _ := newArticleService(t)

	existing := &domain.Article{
		ID:       "a-1",
		Slug:     "old-title-abc123",
		Title:    "Old Title",
		AuthorID: "u-1",
	}
	articles.EXPECT().
		GetBySlug(mock.Anything, "old-title-abc123").
		Return(existing, nil)
	articles.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
		Return(nil)

	title := "Completely Different Title"
	article, err := svc.Update(context.Background(), "u-1", "old-title-abc123", UpdateArticleInput{Title: &title})
	require.NoError(t, err)

	require.Equal(t, "Completely Different Title", article.Title)
	require.Equal(t, "old-title-abc123", article.Slug, "slug never follows title edits")
}

func TestUpdateArticle_NonAuthorForbidden(t *testing.T) {
	svc, articles, _ := newArticleService(t)

	articles.EXPECT().
		GetBySlug(mock.Anything, "some-slug").
		Return(&domain.Article{ID: "a-1", AuthorID: "u-1"}, nil)

	title := "hijacked"
	_, err := svc.Update(context.Background(), "u-2", "some-slug", UpdateArticleInput{Title: &title})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteArticle_NonAuthorForbidden(t *testing.T) {
	svc, articles, _ := newArticleService(t)

	articles.EXPECT().
		GetBySlug(mock.Anything, "some-slug").
		Return(&domain.Article{ID: "a-1", AuthorID: "u-1"}, nil)

	err := svc.Delete(context.Background(), "u-2", "some-slug")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteArticle_ByAuthor(t *testing.T) {
	svc, articles, _ := newArticleService(t)

	articles.EXPECT().
		GetBySlug(mock.Anything, "some-slug").
		Return(&domain.Article{ID: "a-1", AuthorID: "u-1"}, nil)
	articles.EXPECT().
		Delete(mock.Anything, "a-1").
		Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "u-1", "some-slug"))
}

func TestList_ResolvesAuthorUsername(t *testing.T) {
	svc, articles, users := newArticleService(t)

	users.EXPECT().
		GetByUsername(mock.Anything, "anna").
		Return(&domain.User{ID: "u-2", Username: "anna"}, nil)
	articles.EXPECT().
		List(mock.Anything, domain.ArticleFilter{AuthorID: "u-2", Limit: 20}).
		Return([]domain.Article{{ID: "a-1"}}, 1, nil)

	result, total, err := svc.List(context.Background(), ListInput{Author: "Anna", Limit: 20})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, 1, total)
}

func TestList_UnknownAuthorYieldsEmptyPage(t *testing.T) {
	svc, _, users := newArticleService(t)

	users.EXPECT().
		GetByUsername(mock.Anything, "ghost").
		Return(nil, domain.ErrNotFound)

	result, total, err := svc.List(context.Background(), ListInput{Author: "ghost", Limit: 20})
	require.NoError(t, err)
	require.Empty(t, result)
	require.Zero(t, total)
}

func TestList_UnknownFavoritedYieldsEmptyPage(t *testing.T) {
	svc, _, users := newArticleService(t)

	users.EXPECT().
		GetByUsername(mock.Anything, "ghost").
		Return(nil, domain.ErrNotFound)

	result, total, err := svc.List(context.Background(), ListInput{Favorited: "ghost", Limit: 20})
	require.NoError(t, err)
	require.Empty(t, result)
	require.Zero(t, total)
}

func TestFeed_FiltersByFollowedAuthors(t *testing.T) {
	svc, articles, _ := newArticleService(t)

	articles.EXPECT().
		List(mock.Anything, domain.ArticleFilter{FollowedBy: "u-1", Limit: 10, Offset: 5}).
		Return(nil, 0, nil)

	_, _, err := svc.Feed(context.Background(), "u-1", 10, 5)
	require.NoError(t, err)
}
