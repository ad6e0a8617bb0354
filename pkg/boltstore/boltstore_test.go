package boltstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pazow/feedbox/pkg/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func makeFeed(t *testing.T, store *Store, url string) *domain.Feed {
	t.Helper()
	feed := &domain.Feed{Title: "Feed " + url, URL: url, Category: "Tech"}
	require.NoError(t, store.Feed.Create(context.Background(), feed))
	return feed
}

func TestFeedBucket_CRUD(t *testing.T) {
	store := setupTestStore(t)

	feed := &domain.Feed{Title: domain.PlaceholderTitle, URL: "https://example.com/a.xml"}
	require.NoError(t, store.Feed.Create(context.Background(), feed))
	assert.NotZero(t, feed.ID)
	assert.Equal(t, domain.DefaultCategory, feed.Category, "empty category falls back to default")
	assert.False(t, feed.CreatedAt.IsZero())

	t.Run("get", func(t *testing.T) {
		got, err := store.Feed.Get(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Equal(t, feed.URL, got.URL)

		_, err = store.Feed.Get(context.Background(), 99999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		title := "Resolved"
		now := time.Now().UTC()
		require.NoError(t, store.Feed.Update(context.Background(), feed.ID, domain.FeedUpdate{Title: &title, LastFetched: &now}))

		got, err := store.Feed.Get(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Equal(t, "Resolved", got.Title)
		require.NotNil(t, got.LastFetched)
		assert.Equal(t, domain.DefaultCategory, got.Category, "category untouched")

		err = store.Feed.Update(context.Background(), 99999, domain.FeedUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		second := &domain.Feed{Title: "Second", URL: "https://example.com/b.xml", CreatedAt: time.Now().UTC().Add(time.Minute)}
		require.NoError(t, store.Feed.Create(context.Background(), second))

		feeds, err := store.Feed.List(context.Background())
		require.NoError(t, err)
		require.Len(t, feeds, 2)
		assert.Equal(t, "Second", feeds[0].Title)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Feed.Delete(context.Background(), feed.ID))
		_, err := store.Feed.Get(context.Background(), feed.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = store.Feed.Delete(context.Background(), feed.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleBucket_UpsertNew(t *testing.T) {
	store := setupTestStore(t)
	feed := makeFeed(t, store, "https://example.com/feed.xml")
	now := time.Now().UTC()

	batch := []domain.Article{
		{FeedID: feed.ID, GUID: "g1", Title: "One", Published: &now},
		{FeedID: feed.ID, GUID: "g2", Title: "Two", Published: &now},
		{FeedID: feed.ID, GUID: "g3", Title: "Three", Published: &now},
	}

	inserted, err := store.Article.UpsertNew(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	t.Run("re-ingest is idempotent", func(t *testing.T) {
		inserted, err := store.Article.UpsertNew(context.Background(), batch)
		require.NoError(t, err)
		assert.Zero(t, inserted)

		articles, err := store.Article.ListByFeed(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Len(t, articles, 3)
	})

	t.Run("existing user state survives re-ingest", func(t *testing.T) {
		articles, err := store.Article.ListByFeed(context.Background(), feed.ID)
		require.NoError(t, err)
		read := true
		require.NoError(t, store.Article.UpdateFields(context.Background(), articles[0].ID, domain.ArticleUpdate{IsRead: &read}))

		_, err = store.Article.UpsertNew(context.Background(), batch)
		require.NoError(t, err)

		counts, err := store.Article.UnreadCounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, counts[feed.ID])
	})

	t.Run("same guid on another feed is distinct", func(t *testing.T) {
		other := makeFeed(t, store, "https://example.com/other.xml")
		inserted, err := store.Article.UpsertNew(context.Background(), []domain.Article{
			{FeedID: other.ID, GUID: "g1", Title: "Other", Published: &now},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)
	})
}

func TestArticleBucket_ListOrdering(t *testing.T) {
	store := setupTestStore(t)
	feed := makeFeed(t, store, "https://example.com/feed.xml")

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Article.UpsertNew(context.Background(), []domain.Article{
		{FeedID: feed.ID, GUID: "older", Title: "Older", Published: &older},
		{FeedID: feed.ID, GUID: "undated", Title: "Undated"},
		{FeedID: feed.ID, GUID: "newer", Title: "Newer", Published: &newer},
	})
	require.NoError(t, err)

	articles, err := store.Article.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "Newer", articles[0].Title)
	assert.Equal(t, "Older", articles[1].Title)
	assert.Equal(t, "Undated", articles[2].Title, "undated articles sort last")
}

func TestArticleBucket_UpdateFields(t *testing.T) {
	store := setupTestStore(t)
	feed := makeFeed(t, store, "https://example.com/feed.xml")
	now := time.Now().UTC()

	_, err := store.Article.UpsertNew(context.Background(), []domain.Article{
		{FeedID: feed.ID, GUID: "g1", Published: &now},
	})
	require.NoError(t, err)

	articles, err := store.Article.ListByFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	target := articles[0]

	fav := true
	require.NoError(t, store.Article.UpdateFields(context.Background(), target.ID, domain.ArticleUpdate{IsFavorite: &fav}))

	got, err := store.Article.ListByFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.True(t, got[0].IsFavorite)
	assert.False(t, got[0].IsRead, "read state untouched")

	read := true
	err = store.Article.UpdateFields(context.Background(), 99999, domain.ArticleUpdate{IsRead: &read})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleBucket_MarkReadAndCounts(t *testing.T) {
	store := setupTestStore(t)
	feed1 := makeFeed(t, store, "https://example.com/1.xml")
	feed2 := makeFeed(t, store, "https://example.com/2.xml")
	now := time.Now().UTC()

	_, err := store.Article.UpsertNew(context.Background(), []domain.Article{
		{FeedID: feed1.ID, GUID: "a", Published: &now},
		{FeedID: feed1.ID, GUID: "b", Published: &now},
		{FeedID: feed2.ID, GUID: "c", Published: &now},
	})
	require.NoError(t, err)

	require.NoError(t, store.Article.MarkFeedRead(context.Background(), feed1.ID))

	counts, err := store.Article.UnreadCounts(context.Background())
	require.NoError(t, err)
	_, ok := counts[feed1.ID]
	assert.False(t, ok, "feeds with zero unread are omitted")
	assert.Equal(t, 1, counts[feed2.ID])

	require.NoError(t, store.Article.MarkAllRead(context.Background()))
	counts, err = store.Article.UnreadCounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestArticleBucket_DeleteByFeed(t *testing.T) {
	store := setupTestStore(t)
	feed1 := makeFeed(t, store, "https://example.com/1.xml")
	feed2 := makeFeed(t, store, "https://example.com/2.xml")
	now := time.Now().UTC()

	_, err := store.Article.UpsertNew(context.Background(), []domain.Article{
		{FeedID: feed1.ID, GUID: "a", Published: &now},
		{FeedID: feed2.ID, GUID: "b", Published: &now},
	})
	require.NoError(t, err)

	require.NoError(t, store.Article.DeleteByFeed(context.Background(), feed1.ID))

	gone, err := store.Article.ListByFeed(context.Background(), feed1.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := store.Article.ListByFeed(context.Background(), feed2.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	t.Run("identity freed after delete", func(t *testing.T) {
		inserted, err := store.Article.UpsertNew(context.Background(), []domain.Article{
			{FeedID: feed1.ID, GUID: "a", Published: &now},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted, "index entries removed with the articles")
	})
}

func TestCategoryBucket(t *testing.T) {
	store := setupTestStore(t)

	tech := &domain.Category{Name: "Tech", Color: "#3b82f6"}
	require.NoError(t, store.Category.Create(context.Background(), tech))
	assert.NotZero(t, tech.ID)

	t.Run("duplicate name is a no-op", func(t *testing.T) {
		dup := &domain.Category{Name: "Tech", Color: "#000000"}
		require.NoError(t, store.Category.Create(context.Background(), dup))
		assert.Equal(t, tech.ID, dup.ID)
		assert.Equal(t, "#3b82f6", dup.Color)

		categories, err := store.Category.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		require.NoError(t, store.Category.Create(context.Background(), &domain.Category{Name: "News"}))

		categories, err := store.Category.List(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "News", categories[0].Name)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := store.Category.Create(context.Background(), &domain.Category{})
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
