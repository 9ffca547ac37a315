package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/middleware"
)

func newRequestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/api/tags", func(c *gin.Context) {
		if captured != nil {
			*captured = middleware.GetRequestID(c)
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID_AssignsUUIDWhenAbsent(t *testing.T) {
	var seen string
	router := newRequestIDRouter(&seen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	require.Equal(t, http.StatusOK, w.Code)
	echoed := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, echoed, 36)
	assert.Equal(t, echoed, seen, "handler and response header must agree on the id")
}

func TestRequestID_HonorsClientProvidedID(t *testing.T) {
	var seen string
	router := newRequestIDRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-id-42", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "client-id-42", seen)
}

func TestRequestID_DistinctAcrossRequests(t *testing.T) {
	var seen string
	router := newRequestIDRouter(&seen)

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tags", nil))
		require.Equal(t, http.StatusOK, w.Code)
		ids[seen] = true
	}
	assert.Len(t, ids, 3)
}

func TestGetRequestID_EmptyWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, 12345)
	assert.Empty(t, middleware.GetRequestID(c), "non-string value must not panic")
}
