package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleColumns = `id, slug, title, description, body, tags, author_id, fav_count, fav_epoch, created_at, updated_at`

// Create inserts a new article. A slug collision surfaces as
// domain.ErrDuplicateKey so the caller can regenerate and retry.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, slug, title, description, body, tags, author_id, fav_count, fav_epoch, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8, $9)
	`, article.ID, article.Slug, article.Title, article.Description, article.Body,
		article.Tags, article.AuthorID, article.CreatedAt, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", translateError(err))
	}
	return nil
}

// GetByID fetches an article by id.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

// GetBySlug fetches an article by its slug.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
}

func (r *PostgresArticleRepository) getOne(ctx context.Context, query string, arg any) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.Tags,
		&a.AuthorID, &a.FavCount, &a.FavEpoch, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query article: %w", err)
	}
	return &a, nil
}

// List returns articles matching the filter, newest first, plus the total
// count for pagination.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var conds []string
	var args []any
	addCond := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if filter.Tag != "" {
		addCond("a.tags @> ARRAY[$%d]::text[]", filter.Tag)
	}
	if filter.AuthorID != "" {
		addCond("a.author_id = $%d", filter.AuthorID)
	}
	if filter.FavoritedBy != "" {
		addCond("EXISTS (SELECT 1 FROM favorites f WHERE f.article_id = a.id AND f.user_id = $%d)", filter.FavoritedBy)
	}
	if filter.FollowedBy != "" {
		addCond("EXISTS (SELECT 1 FROM follows fo WHERE fo.followee_id = a.author_id AND fo.follower_id = $%d)", filter.FollowedBy)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM articles a`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.slug, a.title, a.description, a.body, a.tags, a.author_id,
		       a.fav_count, a.fav_epoch, a.created_at, a.updated_at
		FROM articles a%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.Tags,
			&a.AuthorID, &a.FavCount, &a.FavEpoch, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read articles: %w", err)
	}

	return articles, total, nil
}

// Update persists title, description, body and tags. The slug column is
// deliberately untouched: slugs are immutable after creation.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, description = $3, body = $4, tags = $5, updated_at = NOW()
		WHERE id = $1
	`, article.ID, article.Title, article.Description, article.Body, article.Tags)
	if err != nil {
		return fmt.Errorf("update article: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an article. Comments and favorite edges cascade.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Tags returns the distinct set of tags across all articles.
func (r *PostgresArticleRepository) Tags(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT unnest(tags) AS tag FROM articles ORDER BY tag
	`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// CountFavorites snapshots the true favorite count and the current epoch in
// a single statement, so the pair is consistent with one point in time.
func (r *PostgresArticleRepository) CountFavorites(ctx context.Context, articleID string) (int, int64, error) {
	var count int
	var epoch int64
	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT count(*) FROM favorites f WHERE f.article_id = a.id), a.fav_epoch
		FROM articles a WHERE a.id = $1
	`, articleID).Scan(&count, &epoch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrNotFound
		}
		return 0, 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, epoch, nil
}

// SetFavCount persists a recounted favorite total, but only if no edge
// mutation has happened since the count was taken. A moved epoch means the
// count is stale and a fresher recount is responsible for the final value.
func (r *PostgresArticleRepository) SetFavCount(ctx context.Context, articleID string, count int, epoch int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET fav_count = $2 WHERE id = $1 AND fav_epoch = $3
	`, articleID, count, epoch)
	if err != nil {
		return fmt.Errorf("set fav count: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, articleID).Scan(&exists); err != nil {
		return fmt.Errorf("check article: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrStaleAggregate
}
