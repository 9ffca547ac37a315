package service

import (
	"context"
	"fmt"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

// ViewService projects users and articles into their public shapes relative
// to a viewer. It is a pure projection: no mutation, safe to call
// repeatedly and concurrently. viewerID is empty for anonymous requests.
type ViewService struct {
	users     repository.UserRepository
	relations *RelationService
}

// NewViewService creates a new ViewService.
func NewViewService(users repository.UserRepository, relations *RelationService) *ViewService {
	return &ViewService{
		users:     users,
		relations: relations,
	}
}

// RenderProfile projects a user into a profile, with the following flag
// computed relative to the viewer.
func (s *ViewService) RenderProfile(ctx context.Context, target *domain.User, viewerID string) (domain.ProfileView, error) {
	following, err := s.relations.IsFollowing(ctx, viewerID, target.ID)
	if err != nil {
		return domain.ProfileView{}, fmt.Errorf("check following: %w", err)
	}
	return domain.ProfileView{
		Username:  target.Username,
		Bio:       target.Bio,
		Image:     target.ImageOrDefault(),
		Following: following,
	}, nil
}

// RenderArticle projects an article into its public shape: the favorited
// flag relative to the viewer, and the author rendered as a profile.
func (s *ViewService) RenderArticle(ctx context.Context, article *domain.Article, viewerID string) (domain.ArticleView, error) {
	author, err := s.users.GetByID(ctx, article.AuthorID)
	if err != nil {
		return domain.ArticleView{}, fmt.Errorf("load author: %w", err)
	}

	profile, err := s.RenderProfile(ctx, author, viewerID)
	if err != nil {
		return domain.ArticleView{}, err
	}

	favorited, err := s.relations.IsFavorited(ctx, viewerID, article.ID)
	if err != nil {
		return domain.ArticleView{}, fmt.Errorf("check favorited: %w", err)
	}

	tags := article.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.ArticleView{
		Slug:        article.Slug,
		Title:       article.Title,
		Description: article.Description,
		Body:        article.Body,
		TagList:     tags,
		Favorited:   favorited,
		FavCount:    article.FavCount,
		Author:      profile,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}, nil
}

// RenderArticles projects a list of articles for the same viewer.
func (s *ViewService) RenderArticles(ctx context.Context, articles []domain.Article, viewerID string) ([]domain.ArticleView, error) {
	views := make([]domain.ArticleView, 0, len(articles))
	for i := range articles {
		view, err := s.RenderArticle(ctx, &articles[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// RenderComment projects a comment with its author profile.
func (s *ViewService) RenderComment(ctx context.Context, comment *domain.Comment, viewerID string) (domain.CommentView, error) {
	author, err := s.users.GetByID(ctx, comment.AuthorID)
	if err != nil {
		return domain.CommentView{}, fmt.Errorf("load comment author: %w", err)
	}

	profile, err := s.RenderProfile(ctx, author, viewerID)
	if err != nil {
		return domain.CommentView{}, err
	}

	return domain.CommentView{
		ID:        comment.ID,
		Body:      comment.Body,
		Author:    profile,
		CreatedAt: comment.CreatedAt,
	}, nil
}
