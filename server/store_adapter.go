package server

import (
	"context"

	"github.com/pazow/feedbox/pkg/domain"
	"github.com/pazow/feedbox/pkg/store"
)

// StoreAdapter bridges the storage contract to the flat Database interface
// the handlers consume
type StoreAdapter struct {
	store *store.Store
}

// NewStoreAdapter creates an adapter over the configured backend
func NewStoreAdapter(s *store.Store) *StoreAdapter {
	return &StoreAdapter{store: s}
}

// CreateCategory adds a category, duplicate names are a no-op returning
// the stored record
func (a *StoreAdapter) CreateCategory(ctx context.Context, category *domain.Category) error {
	return a.store.Categories.Create(ctx, category)
}

// ListFeeds returns all feeds
func (a *StoreAdapter) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	return a.store.Feeds.List(ctx)
}

// GetFeed returns a single feed by ID
func (a *StoreAdapter) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	return a.store.Feeds.Get(ctx, id)
}

// UpdateFeed applies a partial feed update
func (a *StoreAdapter) UpdateFeed(ctx context.Context, id int64, upd domain.FeedUpdate) error {
	return a.store.Feeds.Update(ctx, id, upd)
}

// ListArticles returns articles matching the view selector. The feed filter
// is pushed down to the backend, the view filter is applied in memory.
func (a *StoreAdapter) ListArticles(ctx context.Context, sel domain.ViewSelector) ([]domain.Article, error) {
	var articles []domain.Article
	var err error
	if sel.FeedID != 0 {
		articles, err = a.store.Articles.ListByFeed(ctx, sel.FeedID)
	} else {
		articles, err = a.store.Articles.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return domain.ApplyView(articles, sel), nil
}

// UpdateArticle applies a partial article update
func (a *StoreAdapter) UpdateArticle(ctx context.Context, id int64, upd domain.ArticleUpdate) error {
	return a.store.Articles.UpdateFields(ctx, id, upd)
}

// UnreadCounts returns per-feed unread counts
func (a *StoreAdapter) UnreadCounts(ctx context.Context) (map[int64]int, error) {
	return a.store.Articles.UnreadCounts(ctx)
}

// MarkAllRead marks every article read
func (a *StoreAdapter) MarkAllRead(ctx context.Context) error {
	return a.store.Articles.MarkAllRead(ctx)
}

// MarkFeedRead marks one feed's articles read
func (a *StoreAdapter) MarkFeedRead(ctx context.Context, feedID int64) error {
	return a.store.Articles.MarkFeedRead(ctx, feedID)
}

// ListCategories returns all categories
func (a *StoreAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return a.store.Categories.List(ctx)
}
