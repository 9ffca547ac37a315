package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/mocks/servicemocks"
	"blog-backend/internal/service"
)

func newArticleRouter(articleService *servicemocks.MockArticleServiceInterface, relationService *servicemocks.MockRelationServiceInterface, viewService *servicemocks.MockViewServiceInterface, viewerID string) (*gin.Engine, *ArticleHandler) {
	handler := NewArticleHandler(articleService, relationService, viewService)

	router := gin.New()
	if viewerID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("viewer_id", viewerID)
			c.Next()
		})
	}
	return router, handler
}

func TestListArticles_ReturnsEnvelope(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articles := []domain.Article{{ID: "a-1", Slug: "how-to-train-your-dragon-abc123"}}
	articleService.EXPECT().
		List(mock.Anything, service.ListInput{
			Tag:    "dragons",
			Limit:  domain.DefaultListLimit,
			Offset: 0,
		}).
		Return(articles, 1, nil)

	viewService.EXPECT().
		RenderArticles(mock.Anything, articles, "").
		Return([]domain.ArticleView{{Slug: "how-to-train-your-dragon-abc123"}}, nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "")
	router.GET("/api/articles", handler.ListArticles)

	req := httptest.NewRequest(http.MethodGet, "/api/articles?tag=dragons", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Articles      []domain.ArticleView `json:"articles"`
		ArticlesCount int                  `json:"articlesCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Articles, 1)
	require.Equal(t, 1, response.ArticlesCount)
}

func TestListArticles_PaginationParams(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		List(mock.Anything, service.ListInput{Limit: 5, Offset: 10}).
		Return(nil, 0, nil)
	viewService.EXPECT().
		RenderArticles(mock.Anything, mock.Anything, "").
		Return([]domain.ArticleView{}, nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "")
	router.GET("/api/articles", handler.ListArticles)

	req := httptest.NewRequest(http.MethodGet, "/api/articles?limit=5&offset=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestListArticles_LimitIsClamped(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		List(mock.Anything, service.ListInput{Limit: 100, Offset: 0}).
		Return(nil, 0, nil)
	viewService.EXPECT().
		RenderArticles(mock.Anything, mock.Anything, "").
		Return([]domain.ArticleView{}, nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "")
	router.GET("/api/articles", handler.ListArticles)

	req := httptest.NewRequest(http.MethodGet, "/api/articles?limit=1000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetArticle_NotFound(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		GetBySlug(mock.Anything, "missing-slug").
		Return(nil, domain.ErrNotFound)

	router, handler := newArticleRouter(articleService, relationService, viewService, "")
	router.GET("/api/articles/:slug", handler.GetArticle)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/missing-slug", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArticle_Success(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	created := &domain.Article{ID: "a-1", Slug: "my-title-x1y2z3", Title: "My Title"}
	articleService.EXPECT().
		Create(mock.Anything, "user-1", mock.AnythingOfType("validator.ArticleInput")).
		Return(created, nil)
	viewService.EXPECT().
		RenderArticle(mock.Anything, created, "user-1").
		Return(domain.ArticleView{Slug: "my-title-x1y2z3", Title: "My Title"}, nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "user-1")
	router.POST("/api/articles", handler.CreateArticle)

	body := `{"article":{"title":"My Title","description":"d","body":"b","tagList":["go"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "my-title-x1y2z3")
}

func TestUpdateArticle_Forbidden(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		Update(mock.Anything, "user-2", "some-slug", mock.AnythingOfType("service.UpdateArticleInput")).
		Return(nil, domain.ErrForbidden)

	router, handler := newArticleRouter(articleService, relationService, viewService, "user-2")
	router.PUT("/api/articles/:slug", handler.UpdateArticle)

	body := `{"article":{"title":"New Title"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/articles/some-slug", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteArticle_NoContent(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		Delete(mock.Anything, "user-1", "some-slug").
		Return(nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "user-1")
	router.DELETE("/api/articles/:slug", handler.DeleteArticle)

	req := httptest.NewRequest(http.MethodDelete, "/api/articles/some-slug", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestFavorite_RereadsArticle(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	stale := &domain.Article{ID: "a-1", Slug: "some-slug", FavCount: 0}
	fresh := &domain.Article{ID: "a-1", Slug: "some-slug", FavCount: 1}

	articleService.EXPECT().
		GetBySlug(mock.Anything, "some-slug").
		Return(stale, nil).Once()
	relationService.EXPECT().
		AddFavorite(mock.Anything, "user-1", "a-1").
		Return(nil)
	articleService.EXPECT().
		GetBySlug(mock.Anything, "some-slug").
		Return(fresh, nil).Once()
	viewService.EXPECT().
		RenderArticle(mock.Anything, fresh, "user-1").
		Return(domain.ArticleView{Slug: "some-slug", Favorited: true, FavCount: 1}, nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "user-1")
	router.POST("/api/articles/:slug/favorite", handler.Favorite)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/some-slug/favorite", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"favCount":1`)
	require.Contains(t, w.Body.String(), `"favorited":true`)
}

func TestUnfavorite_MissingArticle(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		GetBySlug(mock.Anything, "missing-slug").
		Return(nil, domain.ErrNotFound)

	router, handler := newArticleRouter(articleService, relationService, viewService, "user-1")
	router.DELETE("/api/articles/:slug/favorite", handler.Unfavorite)

	req := httptest.NewRequest(http.MethodDelete, "/api/articles/missing-slug/favorite", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeed_UsesViewer(t *testing.T) {
	articleService := servicemocks.NewMockArticleServiceInterface(t)
	relationService := servicemocks.NewMockRelationServiceInterface(t)
	viewService := servicemocks.NewMockViewServiceInterface(t)

	articleService.EXPECT().
		Feed(mock.Anything, "user-1", domain.DefaultListLimit, 0).
		Return(nil, 0, nil)
	viewService.EXPECT().
		RenderArticles(mock.Anything, mock.Anything, "user-1").
		Return([]domain.ArticleView{}, nil)

	router, handler := newArticleRouter(articleService, relationService, viewService, "user-1")
	router.GET("/api/articles/feed", handler.Feed)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/feed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"articlesCount":0`)
}
