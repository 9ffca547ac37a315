package domain

import "time"

// Article represents a published article. The slug is assigned once at
// creation and never changes, even when the title is edited later.
// FavCount is a derived value: it always converges to the number of distinct
// users whose favorites contain this article. FavEpoch increments with every
// favorite edge mutation and guards recounts against lost updates.
type Article struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Tags        []string  `json:"tags,omitempty"`
	AuthorID    string    `json:"author_id"`
	FavCount    int       `json:"fav_count"`
	FavEpoch    int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasTag reports whether the article carries the given tag.
func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ArticleFilter selects articles for listing. Zero values mean "no filter".
// FollowedBy restricts to articles whose author is followed by that user
// (the feed). Limit and Offset paginate; DefaultListLimit applies when
// Limit is zero.
type ArticleFilter struct {
	Tag         string
	AuthorID    string
	FavoritedBy string
	FollowedBy  string
	Limit       int
	Offset      int
}

// DefaultListLimit is the page size used when a filter does not set one.
const DefaultListLimit = 20
