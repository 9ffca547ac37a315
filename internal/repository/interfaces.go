package repository

import (
	"context"

	"blog-backend/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ArticleRepository defines methods for article data access.
// CountFavorites and SetFavCount together implement the epoch-guarded
// favorite recount: CountFavorites snapshots (count, epoch) in a single
// statement, SetFavCount persists the count only if the epoch is unchanged
// and returns domain.ErrStaleAggregate otherwise.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
	Tags(ctx context.Context) ([]string, error)
	CountFavorites(ctx context.Context, articleID string) (count int, epoch int64, err error)
	SetFavCount(ctx context.Context, articleID string, count int, epoch int64) error
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// RelationRepository maintains the favorites (user -> article) and following
// (user -> user) edge sets. Mutations are idempotent: the boolean result
// reports whether the edge set actually changed, so callers can skip the
// recount for no-op repeats.
type RelationRepository interface {
	AddFavorite(ctx context.Context, userID, articleID string) (bool, error)
	RemoveFavorite(ctx context.Context, userID, articleID string) (bool, error)
	IsFavorited(ctx context.Context, userID, articleID string) (bool, error)
	Follow(ctx context.Context, followerID, followeeID string) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID string) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
}
