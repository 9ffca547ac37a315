package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domain"
	"blog-backend/internal/logger"
	"blog-backend/internal/repository"
	"blog-backend/internal/validator"
)

// ArticleService handles article creation, updates, deletion and listing.
type ArticleService struct {
	articles        repository.ArticleRepository
	users           repository.UserRepository
	slugs           *SlugAssigner
	validator       *validator.Validator
	slugMaxAttempts int
}

// NewArticleService creates a new ArticleService. slugMaxAttempts bounds
// how many slug candidates creation tries before giving up with
// domain.ErrSlugExhausted.
func NewArticleService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	slugs *SlugAssigner,
	v *validator.Validator,
	slugMaxAttempts int,
) *ArticleService {
	return &ArticleService{
		articles:        articles,
		users:           users,
		slugs:           slugs,
		validator:       v,
		slugMaxAttempts: slugMaxAttempts,
	}
}

// Create persists a new article. The slug is computed here, once, before
// the first save; it is never recomputed for an existing article even when
// the title changes later. On a slug collision the store's unique index is
// the authority: creation retries with fresh entropy up to the bounded
// attempt count.
func (s *ArticleService) Create(ctx context.Context, authorID string, in validator.ArticleInput) (*domain.Article, error) {
	if err := s.validator.ValidateArticle(&in); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.slugMaxAttempts; attempt++ {
		slug, err := s.slugs.Assign(in.Title)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		article := &domain.Article{
			ID:          uuid.New().String(),
			Slug:        slug,
			Title:       in.Title,
			Description: in.Description,
			Body:        in.Body,
			Tags:        in.Tags,
			AuthorID:    authorID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		err = s.articles.Create(ctx, article)
		if err == nil {
			return article, nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return nil, err
		}
		logger.Warn("slug collision, retrying",
			slog.String("slug", slug),
			slog.Int("attempt", attempt+1))
	}

	return nil, domain.ErrSlugExhausted
}

// UpdateArticleInput carries optional field updates. Nil means "leave
// unchanged". There is deliberately no slug field: slugs never change, so
// they can drift from edited titles.
type UpdateArticleInput struct {
	Title       *string
	Description *string
	Body        *string
}

// Update applies partial updates to an article. Only the author may update.
func (s *ArticleService) Update(ctx context.Context, viewerID, slug string, in UpdateArticleInput) (*domain.Article, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != viewerID {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		article.Title = *in.Title
	}
	if in.Description != nil {
		article.Description = *in.Description
	}
	if in.Body != nil {
		article.Body = *in.Body
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete removes an article. Only the author may delete.
func (s *ArticleService) Delete(ctx context.Context, viewerID, slug string) error {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if article.AuthorID != viewerID {
		return domain.ErrForbidden
	}
	return s.articles.Delete(ctx, article.ID)
}

// GetBySlug fetches an article by slug.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.articles.GetBySlug(ctx, slug)
}

// ListInput selects articles by optional tag, author username and
// favorited-by username.
type ListInput struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

// List returns articles matching the filters, newest first, with the total
// count. Unknown author or favorited usernames yield an empty page rather
// than an error, matching how list filters behave for clients.
func (s *ArticleService) List(ctx context.Context, in ListInput) ([]domain.Article, int, error) {
	filter := domain.ArticleFilter{
		Tag:    in.Tag,
		Limit:  in.Limit,
		Offset: in.Offset,
	}

	if in.Author != "" {
		author, err := s.users.GetByUsername(ctx, domain.NormalizeUsername(in.Author))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, 0, nil
			}
			return nil, 0, err
		}
		filter.AuthorID = author.ID
	}

	if in.Favorited != "" {
		user, err := s.users.GetByUsername(ctx, domain.NormalizeUsername(in.Favorited))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, 0, nil
			}
			return nil, 0, err
		}
		filter.FavoritedBy = user.ID
	}

	return s.articles.List(ctx, filter)
}

// Feed returns articles authored by users the viewer follows, newest first.
func (s *ArticleService) Feed(ctx context.Context, viewerID string, limit, offset int) ([]domain.Article, int, error) {
	return s.articles.List(ctx, domain.ArticleFilter{
		FollowedBy: viewerID,
		Limit:      limit,
		Offset:     offset,
	})
}

// Tags returns the distinct set of tags across all articles.
func (s *ArticleService) Tags(ctx context.Context) ([]string, error) {
	return s.articles.Tags(ctx)
}
