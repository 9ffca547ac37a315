package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

// PostgresRelationRepository implements RelationRepository using PostgreSQL.
//
// Favorite mutations and the fav_epoch bump commit in one transaction, so a
// recount can never observe the edge change without the epoch change. The
// pair primary keys make every mutation idempotent: repeating a request
// after a timeout is safe.
type PostgresRelationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRelationRepository creates a new PostgresRelationRepository.
func NewPostgresRelationRepository(pool *pgxpool.Pool) *PostgresRelationRepository {
	return &PostgresRelationRepository{pool: pool}
}

// AddFavorite inserts the (user, article) favorite edge if absent. It
// returns true when the edge set changed. A missing user or article
// surfaces as domain.ErrNotFound via the foreign keys, so the existence
// check and the write are a single atomic statement.
func (r *PostgresRelationRepository) AddFavorite(ctx context.Context, userID, articleID string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		INSERT INTO favorites (user_id, article_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("insert favorite: %w", translateError(err))
	}

	changed := tag.RowsAffected() == 1
	if changed {
		if _, err := tx.Exec(ctx, `
			UPDATE articles SET fav_epoch = fav_epoch + 1 WHERE id = $1
		`, articleID); err != nil {
			return false, fmt.Errorf("bump epoch: %w", err)
		}
	} else {
		// Edge already present, but the article must still exist for the
		// call to count as a no-op rather than a dangling reference.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, articleID).Scan(&exists); err != nil {
			return false, fmt.Errorf("check article: %w", err)
		}
		if !exists {
			return false, domain.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return changed, nil
}

// RemoveFavorite deletes the (user, article) favorite edge. Removing an
// absent edge is a no-op, never an error.
func (r *PostgresRelationRepository) RemoveFavorite(ctx context.Context, userID, articleID string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND article_id = $2
	`, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}

	changed := tag.RowsAffected() == 1
	if changed {
		if _, err := tx.Exec(ctx, `
			UPDATE articles SET fav_epoch = fav_epoch + 1 WHERE id = $1
		`, articleID); err != nil {
			return false, fmt.Errorf("bump epoch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return changed, nil
}

// IsFavorited reports whether the favorite edge exists. Unknown ids simply
// yield false.
func (r *PostgresRelationRepository) IsFavorited(ctx context.Context, userID, articleID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND article_id = $2)
	`, userID, articleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query favorite: %w", err)
	}
	return exists, nil
}

// Follow inserts the (follower, followee) edge if absent. The self-follow
// check constraint surfaces as domain.ErrInvalidRelation; the service layer
// rejects self-follows before ever reaching here.
func (r *PostgresRelationRepository) Follow(ctx context.Context, followerID, followeeID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("insert follow: %w", translateError(err))
	}
	return tag.RowsAffected() == 1, nil
}

// Unfollow deletes the (follower, followee) edge; absent edges are a no-op.
func (r *PostgresRelationRepository) Unfollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2
	`, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("delete follow: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// IsFollowing reports whether the follow edge exists.
func (r *PostgresRelationRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)
	`, followerID, followeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query follow: %w", err)
	}
	return exists, nil
}
