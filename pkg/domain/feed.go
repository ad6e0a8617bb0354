package domain

import "time"

// PlaceholderTitle is assigned to a feed until its first successful fetch
// resolves the real title.
const PlaceholderTitle = "Loading..."

// DefaultCategory is used when a feed has no category or references a
// category that no longer exists.
const DefaultCategory = "Other"

// Feed represents a subscribed syndication source
type Feed struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
	LastFetched *time.Time `json:"lastFetched,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// FeedUpdate describes a partial feed update, nil fields are left untouched.
// URL is absent on purpose: changing a feed's source requires delete+recreate.
type FeedUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Category    *string    `json:"category,omitempty"`
	LastFetched *time.Time `json:"lastFetched,omitempty"`
}

// Category groups feeds in the UI, referenced by name from feeds
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ParsedFeed is the normalized result of fetching and parsing a feed URL
type ParsedFeed struct {
	Title string       `json:"title"`
	Items []ParsedItem `json:"items"`
}

// ParsedItem is one normalized entry from a parsed feed
type ParsedItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Content   string    `json:"content"`
	Snippet   string    `json:"contentSnippet"`
	Author    string    `json:"author"`
	Published time.Time `json:"pubDate"`
	GUID      string    `json:"guid"`
}
