package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
	"blog-backend/internal/validator"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
	viewService    service.ViewServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface, viewService service.ViewServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		viewService:    viewService,
	}
}

// AddCommentRequest represents the request for adding a comment.
type AddCommentRequest struct {
	Comment struct {
		Body string `json:"body"`
	} `json:"comment"`
}

// AddComment handles POST /api/articles/:slug/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), middleware.GetViewerID(c), c.Param("slug"), validator.CommentInput{
		Body: req.Comment.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.viewService.RenderComment(c.Request.Context(), comment, middleware.GetViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": view})
}

// ListComments handles GET /api/articles/:slug/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)

	comments, err := h.commentService.List(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]domain.CommentView, 0, len(comments))
	for i := range comments {
		view, err := h.viewService.RenderComment(c.Request.Context(), &comments[i], viewerID)
		if err != nil {
			respondError(c, err)
			return
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"comments": views})
}

// DeleteComment handles DELETE /api/articles/:slug/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), middleware.GetViewerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
