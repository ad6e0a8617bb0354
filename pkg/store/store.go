// Package store defines the persistence contract shared by both storage
// backends. The relational sqlite backend and the bolt key-value backend
// implement the same interfaces, the deployment picks one via configuration.
package store

import (
	"context"

	"github.com/pazow/feedbox/pkg/domain"
)

// FeedStore holds subscribed feeds
type FeedStore interface {
	List(ctx context.Context) ([]domain.Feed, error)
	Get(ctx context.Context, id int64) (*domain.Feed, error)
	Create(ctx context.Context, feed *domain.Feed) error
	Update(ctx context.Context, id int64, upd domain.FeedUpdate) error
	Delete(ctx context.Context, id int64) error
}

// ArticleStore holds all known articles. UpsertNew inserts only candidates
// whose (feed id, guid) identity is unseen and silently skips the rest, so
// repeated ingestion of the same entries is idempotent.
type ArticleStore interface {
	List(ctx context.Context) ([]domain.Article, error)
	ListByFeed(ctx context.Context, feedID int64) ([]domain.Article, error)
	UpsertNew(ctx context.Context, articles []domain.Article) (inserted int, err error)
	UpdateFields(ctx context.Context, id int64, upd domain.ArticleUpdate) error
	UnreadCounts(ctx context.Context) (map[int64]int, error)
	MarkAllRead(ctx context.Context) error
	MarkFeedRead(ctx context.Context, feedID int64) error
	DeleteByFeed(ctx context.Context, feedID int64) error
}

// CategoryStore holds the category list used for grouping feeds
type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
}

// Store aggregates all stores of one backend
type Store struct {
	Feeds      FeedStore
	Articles   ArticleStore
	Categories CategoryStore

	closeFn func() error
}

// Close releases the underlying backend
func (s *Store) Close() error {
	return s.closeFn()
}
