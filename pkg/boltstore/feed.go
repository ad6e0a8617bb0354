package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/pazow/feedbox/pkg/domain"
)

// FeedBucket handles feed records
type FeedBucket struct {
	db *bolt.DB
}

// List retrieves all feeds, newest first
func (b *FeedBucket) List(_ context.Context) ([]domain.Feed, error) {
	var feeds []domain.Feed

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(feedsBucket).ForEach(func(_, v []byte) error {
			var feed domain.Feed
			if err := json.Unmarshal(v, &feed); err != nil {
				return fmt.Errorf("decode feed: %w", err)
			}
			feeds = append(feeds, feed)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	sort.SliceStable(feeds, func(i, j int) bool {
		if !feeds[i].CreatedAt.Equal(feeds[j].CreatedAt) {
			return feeds[i].CreatedAt.After(feeds[j].CreatedAt)
		}
		return feeds[i].ID > feeds[j].ID
	})
	return feeds, nil
}

// Get retrieves a feed by ID
func (b *FeedBucket) Get(_ context.Context, id int64) (*domain.Feed, error) {
	var feed domain.Feed

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(feedsBucket).Get(itob(id))
		if data == nil {
			return fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
		}
		return json.Unmarshal(data, &feed)
	})
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

// Create inserts a new feed and assigns its ID
func (b *FeedBucket) Create(_ context.Context, feed *domain.Feed) error {
	if feed.Category == "" {
		feed.Category = domain.DefaultCategory
	}
	if feed.CreatedAt.IsZero() {
		feed.CreatedAt = time.Now().UTC()
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(feedsBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		feed.ID = int64(seq) //nolint:gosec // bolt sequences stay well below int64 max

		data, err := json.Marshal(feed)
		if err != nil {
			return fmt.Errorf("encode feed: %w", err)
		}
		return bucket.Put(itob(feed.ID), data)
	})
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}
	return nil
}

// Update applies a partial update inside a single transaction, nil fields are
// left untouched
func (b *FeedBucket) Update(_ context.Context, id int64, upd domain.FeedUpdate) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(feedsBucket)
		data := bucket.Get(itob(id))
		if data == nil {
			return fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
		}

		var feed domain.Feed
		if err := json.Unmarshal(data, &feed); err != nil {
			return fmt.Errorf("decode feed: %w", err)
		}

		if upd.Title != nil {
			feed.Title = *upd.Title
		}
		if upd.Category != nil {
			feed.Category = *upd.Category
		}
		if upd.LastFetched != nil {
			feed.LastFetched = upd.LastFetched
		}

		updated, err := json.Marshal(feed)
		if err != nil {
			return fmt.Errorf("encode feed: %w", err)
		}
		return bucket.Put(itob(id), updated)
	})
}

// Delete removes a feed. Articles are not cascaded here, the caller deletes
// them explicitly first.
func (b *FeedBucket) Delete(_ context.Context, id int64) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(feedsBucket)
		if bucket.Get(itob(id)) == nil {
			return fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
		}
		return bucket.Delete(itob(id))
	})
}
