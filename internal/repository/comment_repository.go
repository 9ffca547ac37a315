package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a new comment. A missing article or author surfaces as
// domain.ErrNotFound via the foreign keys.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, body, article_id, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.Body, comment.ArticleID, comment.AuthorID, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", translateError(err))
	}
	return nil
}

// GetByID fetches a comment by id.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, body, article_id, author_id, created_at FROM comments WHERE id = $1
	`, id).Scan(&c.ID, &c.Body, &c.ArticleID, &c.AuthorID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query comment: %w", err)
	}
	return &c, nil
}

// ListByArticle returns an article's comments, newest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, body, article_id, author_id, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.ArticleID, &c.AuthorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Delete removes a single comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
