package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
	"blog-backend/internal/validator"
)

// CommentService handles comment creation, listing and deletion.
type CommentService struct {
	comments  repository.CommentRepository
	articles  repository.ArticleRepository
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	articles repository.ArticleRepository,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		comments:  comments,
		articles:  articles,
		validator: v,
	}
}

// Add creates a comment on the article identified by slug.
func (s *CommentService) Add(ctx context.Context, authorID, slug string, in validator.CommentInput) (*domain.Comment, error) {
	if err := s.validator.ValidateComment(&in); err != nil {
		return nil, err
	}

	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		Body:      in.Body,
		ArticleID: article.ID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns the article's comments, newest first.
func (s *CommentService) List(ctx context.Context, slug string) ([]domain.Comment, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByArticle(ctx, article.ID)
}

// Delete removes a comment. Only the comment's author may delete it; the
// article's favorites and follows are untouched.
func (s *CommentService) Delete(ctx context.Context, viewerID, commentID string) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != viewerID {
		return domain.ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}
