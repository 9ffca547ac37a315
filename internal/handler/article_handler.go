package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
	"blog-backend/internal/validator"
)

// ArticleHandler handles article CRUD, listing and favorite HTTP requests.
type ArticleHandler struct {
	articleService  service.ArticleServiceInterface
	relationService service.RelationServiceInterface
	viewService     service.ViewServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(
	articleService service.ArticleServiceInterface,
	relationService service.RelationServiceInterface,
	viewService service.ViewServiceInterface,
) *ArticleHandler {
	return &ArticleHandler{
		articleService:  articleService,
		relationService: relationService,
		viewService:     viewService,
	}
}

// CreateArticleRequest represents the request for creating an article.
type CreateArticleRequest struct {
	Article struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Body        string   `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

// UpdateArticleRequest represents the request for updating an article.
// Absent fields are left unchanged. The slug is not updatable.
type UpdateArticleRequest struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article"`
}

// maxListLimit caps the page size a client can request. Every listed
// article is rendered viewer-relative, so unbounded pages are unbounded
// work.
const maxListLimit = 100

func parsePagination(c *gin.Context) (limit, offset int) {
	limit = domain.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = min(v, maxListLimit)
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}

func (h *ArticleHandler) respondArticle(c *gin.Context, status int, article *domain.Article) {
	view, err := h.viewService.RenderArticle(c.Request.Context(), article, middleware.GetViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{"article": view})
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	limit, offset := parsePagination(c)

	articles, total, err := h.articleService.List(c.Request.Context(), service.ListInput{
		Tag:       c.Query("tag"),
		Author:    c.Query("author"),
		Favorited: c.Query("favorited"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.viewService.RenderArticles(c.Request.Context(), articles, middleware.GetViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": views, "articlesCount": total})
}

// Feed handles GET /api/articles/feed
func (h *ArticleHandler) Feed(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	limit, offset := parsePagination(c)

	articles, total, err := h.articleService.Feed(c.Request.Context(), viewerID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.viewService.RenderArticles(c.Request.Context(), articles, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": views, "articlesCount": total})
}

// GetArticle handles GET /api/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondArticle(c, http.StatusOK, article)
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), middleware.GetViewerID(c), validator.ArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		Tags:        req.Article.TagList,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondArticle(c, http.StatusCreated, article)
}

// UpdateArticle handles PUT /api/articles/:slug
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), middleware.GetViewerID(c), c.Param("slug"), service.UpdateArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondArticle(c, http.StatusOK, article)
}

// DeleteArticle handles DELETE /api/articles/:slug
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.Delete(c.Request.Context(), middleware.GetViewerID(c), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite handles POST /api/articles/:slug/favorite
func (h *ArticleHandler) Favorite(c *gin.Context) {
	h.setFavorite(c, true)
}

// Unfavorite handles DELETE /api/articles/:slug/favorite
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	h.setFavorite(c, false)
}

func (h *ArticleHandler) setFavorite(c *gin.Context, favorite bool) {
	viewerID := middleware.GetViewerID(c)
	slug := c.Param("slug")

	article, err := h.articleService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	if favorite {
		err = h.relationService.AddFavorite(c.Request.Context(), viewerID, article.ID)
	} else {
		err = h.relationService.RemoveFavorite(c.Request.Context(), viewerID, article.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	// Re-read so the response carries the refreshed favorite count.
	article, err = h.articleService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondArticle(c, http.StatusOK, article)
}
