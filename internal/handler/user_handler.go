package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/auth"
	"blog-backend/internal/domain"
	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
	"blog-backend/internal/validator"
)

// UserHandler handles registration, login and current-user HTTP requests.
type UserHandler struct {
	userService service.UserServiceInterface
	tokens      *auth.TokenManager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserServiceInterface, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{
		userService: userService,
		tokens:      tokens,
	}
}

// RegisterRequest represents the request for creating a user.
type RegisterRequest struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// LoginRequest represents the request for logging in.
type LoginRequest struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// UpdateUserRequest represents the request for updating the current user.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	User struct {
		Email    *string `json:"email"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
		Password *string `json:"password"`
	} `json:"user"`
}

// UserResponse represents a user in the API response, including a fresh token.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

func (h *UserHandler) toUserResponse(user *domain.User) (UserResponse, error) {
	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return UserResponse{}, err
	}
	return UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
		Bio:      user.Bio,
		Image:    user.ImageOrDefault(),
	}, nil
}

func (h *UserHandler) respondUser(c *gin.Context, status int, user *domain.User) {
	response, err := h.toUserResponse(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{"user": response})
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), validator.RegistrationInput{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondUser(c, http.StatusCreated, user)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), validator.LoginInput{
		Email:    req.User.Email,
		Password: req.User.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondUser(c, http.StatusOK, user)
}

// CurrentUser handles GET /api/user
func (h *UserHandler) CurrentUser(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)

	user, err := h.userService.GetByID(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondUser(c, http.StatusOK, user)
}

// UpdateUser handles PUT /api/user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), viewerID, service.UpdateUserInput{
		Email:    req.User.Email,
		Bio:      req.User.Bio,
		Image:    req.User.Image,
		Password: req.User.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondUser(c, http.StatusOK, user)
}
