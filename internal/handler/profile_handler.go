package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
)

// ProfileHandler handles public profile and follow HTTP requests.
type ProfileHandler struct {
	userService     service.UserServiceInterface
	relationService service.RelationServiceInterface
	viewService     service.ViewServiceInterface
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(
	userService service.UserServiceInterface,
	relationService service.RelationServiceInterface,
	viewService service.ViewServiceInterface,
) *ProfileHandler {
	return &ProfileHandler{
		userService:     userService,
		relationService: relationService,
		viewService:     viewService,
	}
}

func (h *ProfileHandler) respondProfile(c *gin.Context, username string) {
	viewerID := middleware.GetViewerID(c)

	target, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.viewService.RenderProfile(c.Request.Context(), target, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetProfile handles GET /api/profiles/:username
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	h.respondProfile(c, c.Param("username"))
}

// Follow handles POST /api/profiles/:username/follow
func (h *ProfileHandler) Follow(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	username := c.Param("username")

	target, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.relationService.Follow(c.Request.Context(), viewerID, target.ID); err != nil {
		respondError(c, err)
		return
	}

	h.respondProfile(c, username)
}

// Unfollow handles DELETE /api/profiles/:username/follow
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	username := c.Param("username")

	target, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.relationService.Unfollow(c.Request.Context(), viewerID, target.ID); err != nil {
		respondError(c, err)
		return
	}

	h.respondProfile(c, username)
}
