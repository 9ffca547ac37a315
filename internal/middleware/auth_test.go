package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, ttl time.Duration) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("test-secret", ttl)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer": middleware.GetViewerID(c)})
	})
	router.GET("/open", middleware.OptionalAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer": middleware.GetViewerID(c)})
	})
	return router, tokens
}

func TestRequireAuth_ValidToken(t *testing.T) {
	router, tokens := newAuthRouter(t, time.Hour)

	token, err := tokens.Issue("user-1", "jake")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuth_BearerScheme(t *testing.T) {
	router, tokens := newAuthRouter(t, time.Hour)

	token, err := tokens.Issue("user-1", "jake")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	cases := []string{
		"Token",
		"Token ",
		"Basic abc123",
		"garbage",
	}
	for _, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q should be rejected", header)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	router, tokens := newAuthRouter(t, -time.Minute)

	token, err := tokens.Issue("user-1", "jake")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	other := auth.NewTokenManager("other-secret", time.Hour)
	token, err := other.Issue("user-1", "jake")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":""`)
}

func TestOptionalAuth_ValidTokenSetsViewer(t *testing.T) {
	router, tokens := newAuthRouter(t, time.Hour)

	token, err := tokens.Issue("user-7", "anna")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
}

func TestOptionalAuth_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Token not.a.jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":""`)
}

func TestGetViewerID_ReturnsEmptyWhenNotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, middleware.GetViewerID(c))
}
