package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/pazow/feedbox/pkg/domain"
)

// ArticleBucket handles article records and their identity index
type ArticleBucket struct {
	db *bolt.DB
}

// List retrieves all articles ordered by publish time descending, undated
// articles last
func (b *ArticleBucket) List(_ context.Context) ([]domain.Article, error) {
	return b.list(func(domain.Article) bool { return true })
}

// ListByFeed retrieves articles of one feed ordered by publish time descending
func (b *ArticleBucket) ListByFeed(_ context.Context, feedID int64) ([]domain.Article, error) {
	return b.list(func(a domain.Article) bool { return a.FeedID == feedID })
}

// list scans articles matching the predicate. Bucket keys iterate in id
// order, so the stable sort preserves insertion order for equal timestamps.
func (b *ArticleBucket) list(match func(domain.Article) bool) ([]domain.Article, error) {
	var articles []domain.Article

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(articlesBucket).ForEach(func(_, v []byte) error {
			var article domain.Article
			if err := json.Unmarshal(v, &article); err != nil {
				return fmt.Errorf("decode article: %w", err)
			}
			if match(article) {
				articles = append(articles, article)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	domain.SortArticles(articles)
	return articles, nil
}

// UpsertNew inserts candidates whose (feed id, guid) identity is unseen and
// silently skips duplicates, all within one transaction. Returns the number
// of actually inserted articles.
func (b *ArticleBucket) UpsertNew(_ context.Context, articles []domain.Article) (int, error) {
	inserted := 0

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(articlesBucket)
		idx := tx.Bucket(articleIdxBucket)

		for _, article := range articles {
			key := identityKey(article.FeedID, article.GUID)
			if idx.Get(key) != nil {
				continue // already seen, leave the stored article untouched
			}

			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("next sequence: %w", err)
			}
			article.ID = int64(seq) //nolint:gosec // bolt sequences stay well below int64 max
			if article.CreatedAt.IsZero() {
				article.CreatedAt = time.Now().UTC()
			}

			data, err := json.Marshal(article)
			if err != nil {
				return fmt.Errorf("encode article: %w", err)
			}
			if err := bucket.Put(itob(article.ID), data); err != nil {
				return fmt.Errorf("store article: %w", err)
			}
			if err := idx.Put(key, itob(article.ID)); err != nil {
				return fmt.Errorf("index article: %w", err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("upsert articles: %w", err)
	}

	return inserted, nil
}

// UpdateFields applies a partial update of user state as a single
// read-modify-write transaction, nil fields are left untouched
func (b *ArticleBucket) UpdateFields(_ context.Context, id int64, upd domain.ArticleUpdate) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(articlesBucket)
		data := bucket.Get(itob(id))
		if data == nil {
			return fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
		}

		var article domain.Article
		if err := json.Unmarshal(data, &article); err != nil {
			return fmt.Errorf("decode article: %w", err)
		}

		if upd.IsRead != nil {
			article.IsRead = *upd.IsRead
		}
		if upd.IsFavorite != nil {
			article.IsFavorite = *upd.IsFavorite
		}

		updated, err := json.Marshal(article)
		if err != nil {
			return fmt.Errorf("encode article: %w", err)
		}
		return bucket.Put(itob(id), updated)
	})
}

// UnreadCounts returns per-feed counts of unread articles. Feeds with no
// unread articles are absent from the map.
func (b *ArticleBucket) UnreadCounts(_ context.Context) (map[int64]int, error) {
	counts := make(map[int64]int)

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(articlesBucket).ForEach(func(_, v []byte) error {
			var article domain.Article
			if err := json.Unmarshal(v, &article); err != nil {
				return fmt.Errorf("decode article: %w", err)
			}
			if !article.IsRead {
				counts[article.FeedID]++
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("unread counts: %w", err)
	}
	return counts, nil
}

// MarkAllRead marks every article as read
func (b *ArticleBucket) MarkAllRead(ctx context.Context) error {
	return b.markRead(ctx, func(domain.Article) bool { return true })
}

// MarkFeedRead marks every article of one feed as read
func (b *ArticleBucket) MarkFeedRead(ctx context.Context, feedID int64) error {
	return b.markRead(ctx, func(a domain.Article) bool { return a.FeedID == feedID })
}

func (b *ArticleBucket) markRead(_ context.Context, match func(domain.Article) bool) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(articlesBucket)

		// collect first, mutating a bucket while iterating it is not allowed
		var pending []domain.Article
		err := bucket.ForEach(func(_, v []byte) error {
			var article domain.Article
			if err := json.Unmarshal(v, &article); err != nil {
				return fmt.Errorf("decode article: %w", err)
			}
			if match(article) && !article.IsRead {
				pending = append(pending, article)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, article := range pending {
			article.IsRead = true
			data, err := json.Marshal(article)
			if err != nil {
				return fmt.Errorf("encode article: %w", err)
			}
			if err := bucket.Put(itob(article.ID), data); err != nil {
				return fmt.Errorf("store article: %w", err)
			}
		}
		return nil
	})
}

// DeleteByFeed removes all articles of one feed together with their identity
// index entries, the explicit cascade step of feed deletion
func (b *ArticleBucket) DeleteByFeed(_ context.Context, feedID int64) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(articlesBucket)
		idx := tx.Bucket(articleIdxBucket)

		type victim struct {
			key      []byte
			identity []byte
		}
		var victims []victim

		err := bucket.ForEach(func(k, v []byte) error {
			var article domain.Article
			if err := json.Unmarshal(v, &article); err != nil {
				return fmt.Errorf("decode article: %w", err)
			}
			if article.FeedID == feedID {
				key := make([]byte, len(k))
				copy(key, k)
				victims = append(victims, victim{key: key, identity: identityKey(feedID, article.GUID)})
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, v := range victims {
			if err := bucket.Delete(v.key); err != nil {
				return fmt.Errorf("delete article: %w", err)
			}
			if err := idx.Delete(v.identity); err != nil {
				return fmt.Errorf("delete article index: %w", err)
			}
		}
		return nil
	})
}
