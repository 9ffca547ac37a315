package domain

import "time"

// ProfileView is the public projection of a user, relative to a viewer.
// Following is always false for an anonymous viewer.
type ProfileView struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ArticleView is the public projection of an article, relative to a viewer.
type ArticleView struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Body        string      `json:"body"`
	TagList     []string    `json:"tagList"`
	Favorited   bool        `json:"favorited"`
	FavCount    int         `json:"favCount"`
	Author      ProfileView `json:"author"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CommentView is the public projection of a comment.
type CommentView struct {
	ID        string      `json:"id"`
	Body      string      `json:"body"`
	Author    ProfileView `json:"author"`
	CreatedAt time.Time   `json:"createdAt"`
}
