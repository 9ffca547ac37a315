package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/service"
)

// TagHandler handles tag listing HTTP requests.
type TagHandler struct {
	articleService service.ArticleServiceInterface
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(articleService service.ArticleServiceInterface) *TagHandler {
	return &TagHandler{articleService: articleService}
}

// ListTags handles GET /api/tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.articleService.Tags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
