package service

import (
	"context"
	"fmt"

	"blog-backend/internal/domain"
	"blog-backend/internal/metrics"
	"blog-backend/internal/repository"
)

// RelationService is the social graph: the favorites (user -> article) and
// following (user -> user) edge sets. All mutations are idempotent set
// operations, so retried client requests are safe to repeat.
//
// Every favorite mutation that changes the edge set triggers a favorite
// recount as part of the same logical operation.
type RelationService struct {
	relations  repository.RelationRepository
	aggregates *AggregateMaintainer
}

// NewRelationService creates a new RelationService.
func NewRelationService(relations repository.RelationRepository, aggregates *AggregateMaintainer) *RelationService {
	return &RelationService{
		relations:  relations,
		aggregates: aggregates,
	}
}

// AddFavorite inserts the favorite edge and synchronizes the article's
// favorite count. Adding an existing favorite is a no-op. Missing records
// surface as domain.ErrNotFound.
func (s *RelationService) AddFavorite(ctx context.Context, userID, articleID string) error {
	changed, err := s.relations.AddFavorite(ctx, userID, articleID)
	if err != nil {
		metrics.ObserveRelationMutation("favorite", metrics.ResultError)
		return err
	}
	if !changed {
		metrics.ObserveRelationMutation("favorite", metrics.ResultNoop)
		return nil
	}
	metrics.ObserveRelationMutation("favorite", metrics.ResultChanged)

	// The edge write committed; the recount must still run even if the
	// client has gone away, or fav_count is left behind until the next
	// mutation on this article.
	if err := s.aggregates.SyncFavoriteCount(context.WithoutCancel(ctx), articleID); err != nil {
		return fmt.Errorf("sync after favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the favorite edge and synchronizes the count.
// Removing an absent favorite is a no-op.
func (s *RelationService) RemoveFavorite(ctx context.Context, userID, articleID string) error {
	changed, err := s.relations.RemoveFavorite(ctx, userID, articleID)
	if err != nil {
		metrics.ObserveRelationMutation("unfavorite", metrics.ResultError)
		return err
	}
	if !changed {
		metrics.ObserveRelationMutation("unfavorite", metrics.ResultNoop)
		return nil
	}
	metrics.ObserveRelationMutation("unfavorite", metrics.ResultChanged)

	if err := s.aggregates.SyncFavoriteCount(context.WithoutCancel(ctx), articleID); err != nil {
		return fmt.Errorf("sync after unfavorite: %w", err)
	}
	return nil
}

// IsFavorited reports whether the user has favorited the article. An empty
// user id means an anonymous viewer and always yields false, never an error.
func (s *RelationService) IsFavorited(ctx context.Context, userID, articleID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.relations.IsFavorited(ctx, userID, articleID)
}

// Follow inserts the following edge. Following yourself fails with
// domain.ErrInvalidRelation; following someone twice is a no-op.
func (s *RelationService) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return fmt.Errorf("%w: cannot follow yourself", domain.ErrInvalidRelation)
	}

	changed, err := s.relations.Follow(ctx, followerID, followeeID)
	if err != nil {
		metrics.ObserveRelationMutation("follow", metrics.ResultError)
		return err
	}
	if changed {
		metrics.ObserveRelationMutation("follow", metrics.ResultChanged)
	} else {
		metrics.ObserveRelationMutation("follow", metrics.ResultNoop)
	}
	return nil
}

// Unfollow deletes the following edge; absent edges are a no-op.
func (s *RelationService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	changed, err := s.relations.Unfollow(ctx, followerID, followeeID)
	if err != nil {
		metrics.ObserveRelationMutation("unfollow", metrics.ResultError)
		return err
	}
	if changed {
		metrics.ObserveRelationMutation("unfollow", metrics.ResultChanged)
	} else {
		metrics.ObserveRelationMutation("unfollow", metrics.ResultNoop)
	}
	return nil
}

// IsFollowing reports whether follower follows followee. An empty follower
// id means an anonymous viewer and always yields false.
func (s *RelationService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}
	return s.relations.IsFollowing(ctx, followerID, followeeID)
}
