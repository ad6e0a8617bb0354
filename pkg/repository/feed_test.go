package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pazow/feedbox/pkg/domain"
)

func TestFeedRepository_CreateAndList(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{Title: domain.PlaceholderTitle, URL: "https://example.com/a.xml", Category: "Tech"}
	require.NoError(t, repos.Feed.Create(context.Background(), feed))
	assert.NotZero(t, feed.ID)

	second := &domain.Feed{Title: "Second", URL: "https://example.com/b.xml"}
	require.NoError(t, repos.Feed.Create(context.Background(), second))

	t.Run("empty category falls back to default", func(t *testing.T) {
		got, err := repos.Feed.Get(context.Background(), second.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCategory, got.Category)
	})

	t.Run("list returns all feeds", func(t *testing.T) {
		feeds, err := repos.Feed.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, feeds, 2)
	})

	t.Run("get unknown feed", func(t *testing.T) {
		_, err := repos.Feed.Get(context.Background(), 99999)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFeedRepository_Update(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := makeFeed(t, repos, "https://example.com/feed.xml")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		title := "Resolved Title"
		require.NoError(t, repos.Feed.Update(context.Background(), feed.ID, domain.FeedUpdate{Title: &title}))

		got, err := repos.Feed.Get(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Equal(t, "Resolved Title", got.Title)
		assert.Equal(t, "Tech", got.Category, "category untouched")
		assert.Nil(t, got.LastFetched, "last fetched untouched")
	})

	t.Run("set last fetched", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, repos.Feed.Update(context.Background(), feed.ID, domain.FeedUpdate{LastFetched: &now}))

		got, err := repos.Feed.Get(context.Background(), feed.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastFetched)
		assert.WithinDuration(t, now, *got.LastFetched, time.Second)
	})

	t.Run("change category", func(t *testing.T) {
		cat := "News"
		require.NoError(t, repos.Feed.Update(context.Background(), feed.ID, domain.FeedUpdate{Category: &cat}))

		got, err := repos.Feed.Get(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Equal(t, "News", got.Category)
	})

	t.Run("unknown feed", func(t *testing.T) {
		title := "x"
		err := repos.Feed.Update(context.Background(), 99999, domain.FeedUpdate{Title: &title})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty update checks existence only", func(t *testing.T) {
		require.NoError(t, repos.Feed.Update(context.Background(), feed.ID, domain.FeedUpdate{}))
		err := repos.Feed.Update(context.Background(), 99999, domain.FeedUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFeedRepository_Delete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := makeFeed(t, repos, "https://example.com/feed.xml")

	require.NoError(t, repos.Feed.Delete(context.Background(), feed.ID))

	_, err := repos.Feed.Get(context.Background(), feed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repos.Feed.Delete(context.Background(), feed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
