package domain

import "time"

// Article represents one entry retrieved from a feed with user state.
// Identity is the (FeedID, GUID) pair, the GUID falls back to the entry link
// when the source supplies none.
type Article struct {
	ID         int64      `json:"id"`
	FeedID     int64      `json:"feedId"`
	GUID       string     `json:"guid"`
	Title      string     `json:"title"`
	Link       string     `json:"link"`
	Content    string     `json:"content,omitempty"`
	Snippet    string     `json:"contentSnippet,omitempty"`
	Author     string     `json:"author,omitempty"`
	Published  *time.Time `json:"pubDate,omitempty"`
	IsRead     bool       `json:"isRead"`
	IsFavorite bool       `json:"isFavorite"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ArticleUpdate describes a partial article update, nil fields are left
// untouched. Only user state is mutable, ingestion never rewrites articles.
type ArticleUpdate struct {
	IsRead     *bool `json:"isRead,omitempty"`
	IsFavorite *bool `json:"isFavorite,omitempty"`
}
