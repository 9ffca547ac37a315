package domain

import "time"

// Comment represents a comment on an article. The article reference is
// immutable; deleting a comment never touches favorites or follows.
type Comment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	ArticleID string    `json:"article_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
