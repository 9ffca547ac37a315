package service

import (
	"context"

	"blog-backend/internal/domain"
	"blog-backend/internal/validator"
)

// Interfaces consumed by the handler layer. Used for dependency injection
// and mocking in tests.

// UserServiceInterface defines the interface for user operations.
type UserServiceInterface interface {
	Register(ctx context.Context, in validator.RegistrationInput) (*domain.User, error)
	Login(ctx context.Context, in validator.LoginInput) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ArticleServiceInterface defines the interface for article operations.
type ArticleServiceInterface interface {
	Create(ctx context.Context, authorID string, in validator.ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, viewerID, slug string, in UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, viewerID, slug string) error
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, in ListInput) ([]domain.Article, int, error)
	Feed(ctx context.Context, viewerID string, limit, offset int) ([]domain.Article, int, error)
	Tags(ctx context.Context) ([]string, error)
}

// CommentServiceInterface defines the interface for comment operations.
type CommentServiceInterface interface {
	Add(ctx context.Context, authorID, slug string, in validator.CommentInput) (*domain.Comment, error)
	List(ctx context.Context, slug string) ([]domain.Comment, error)
	Delete(ctx context.Context, viewerID, commentID string) error
}

// RelationServiceInterface defines the interface for the social graph.
type RelationServiceInterface interface {
	AddFavorite(ctx context.Context, userID, articleID string) error
	RemoveFavorite(ctx context.Context, userID, articleID string) error
	IsFavorited(ctx context.Context, userID, articleID string) (bool, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
}

// ViewServiceInterface defines the interface for viewer-relative rendering.
type ViewServiceInterface interface {
	RenderProfile(ctx context.Context, target *domain.User, viewerID string) (domain.ProfileView, error)
	RenderArticle(ctx context.Context, article *domain.Article, viewerID string) (domain.ArticleView, error)
	RenderArticles(ctx context.Context, articles []domain.Article, viewerID string) ([]domain.ArticleView, error)
	RenderComment(ctx context.Context, comment *domain.Comment, viewerID string) (domain.CommentView, error)
}
