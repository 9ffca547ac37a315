package domain

import (
	"strings"
	"time"
)

// DefaultUserImage is served for profiles that never set an image.
const DefaultUserImage = "https://static.productionready.io/images/smiley-cyrus.jpg"

// User represents a registered user. Username and email are stored lowercase
// and are globally unique. PasswordHash and PasswordSalt are opaque to
// everything except the auth package.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio"`
	Image        string    `json:"image"`
	PasswordHash string    `json:"-"`
	PasswordSalt string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeUsername lowercases and trims a username for storage and lookup.
// Usernames are case-insensitive: "Ada" and "ada" are the same account.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ImageOrDefault returns the profile image, falling back to the default avatar.
func (u *User) ImageOrDefault() string {
	if u.Image == "" {
		return DefaultUserImage
	}
	return u.Image
}
