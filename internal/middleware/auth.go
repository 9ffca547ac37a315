package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/auth"
)

const (
	// ViewerIDKey is the context key for the authenticated user's ID
	ViewerIDKey = "viewer_id"

	authorizationHeader = "Authorization"
)

// RequireAuth returns a middleware that rejects requests without a valid token.
// The token is read from the Authorization header using either the "Token" or
// "Bearer" scheme.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseRequestToken(tokens, c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ViewerIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth returns a middleware that sets viewer identity when a valid
// token is present and lets anonymous requests through unchanged. A malformed
// or expired token is treated the same as no token at all.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseRequestToken(tokens, c)
		if err == nil {
			c.Set(ViewerIDKey, claims.UserID)
		}
		c.Next()
	}
}

func parseRequestToken(tokens *auth.TokenManager, c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return nil, auth.ErrNoToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, auth.ErrInvalidToken
	}
	scheme := strings.ToLower(parts[0])
	if scheme != "token" && scheme != "bearer" {
		return nil, auth.ErrInvalidToken
	}

	return tokens.Parse(parts[1])
}

// GetViewerID retrieves the authenticated user's ID from the gin context.
// It returns an empty string for anonymous requests.
func GetViewerID(c *gin.Context) string {
	if viewerID, exists := c.Get(ViewerIDKey); exists {
		if id, ok := viewerID.(string); ok {
			return id
		}
	}
	return ""
}
