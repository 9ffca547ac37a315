package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/auth"
	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
	"blog-backend/internal/validator"
)

// UserService handles registration, login and profile updates. Token
// issuance lives in the handler layer; this service never sees a JWT.
type UserService struct {
	users     repository.UserRepository
	validator *validator.Validator
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, v *validator.Validator) *UserService {
	return &UserService{users: users, validator: v}
}

// Register creates a new user. Username and email are normalized to
// lowercase before storage; collisions surface as domain.ErrDuplicateKey
// for user-facing validation messaging.
func (s *UserService) Register(ctx context.Context, in validator.RegistrationInput) (*domain.User, error) {
	in.Username = domain.NormalizeUsername(in.Username)
	in.Email = domain.NormalizeEmail(in.Email)

	if err := s.validator.ValidateRegistration(&in); err != nil {
		return nil, err
	}

	salt, hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the user. Unknown email and wrong
// password both yield domain.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, in validator.LoginInput) (*domain.User, error) {
	if err := s.validator.ValidateLogin(&in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(in.Password, user.PasswordSalt, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateUserInput carries optional field updates for the current user.
// Nil means "leave unchanged".
type UpdateUserInput struct {
	Email    *string
	Bio      *string
	Image    *string
	Password *string
}

// UpdateUser applies partial updates to the current user's profile and
// credentials.
func (s *UserService) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		user.Email = domain.NormalizeEmail(*in.Email)
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Image != nil {
		user.Image = *in.Image
	}
	if in.Password != nil {
		salt, hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordSalt = salt
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID fetches a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByUsername fetches a user by (case-insensitive) username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, domain.NormalizeUsername(username))
}
