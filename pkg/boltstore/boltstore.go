// Package boltstore is the key-value storage backend. It keeps feeds,
// articles and categories as JSON values in bolt buckets and satisfies the
// same contract as the sqlite backend, including the (feed id, guid)
// uniqueness guarantee which it enforces through an index bucket.
package boltstore

import (
	"encoding/binary"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// bucket names
var (
	feedsBucket      = []byte("feeds")
	articlesBucket   = []byte("articles")
	articleIdxBucket = []byte("article_idx") // "feedID/guid" -> article id
	categoriesBucket = []byte("categories")
)

// Store is a bolt-backed storage with per-entity accessors
type Store struct {
	Feed     *FeedBucket
	Article  *ArticleBucket
	Category *CategoryBucket
	db       *bolt.DB
}

// New opens (or creates) the bolt database at path and prepares all buckets
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{feedsBucket, articlesBucket, articleIdxBucket, categoriesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Feed:     &FeedBucket{db: db},
		Article:  &ArticleBucket{db: db},
		Category: &CategoryBucket{db: db},
		db:       db,
	}, nil
}

// Close closes the underlying bolt database
func (s *Store) Close() error {
	return s.db.Close()
}

// itob converts an id to a big-endian key so keys iterate in id order
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id)) //nolint:gosec // ids are bolt sequences, never negative
	return b
}

// identityKey is the dedup key of an article within the index bucket
func identityKey(feedID int64, guid string) []byte {
	return fmt.Appendf(nil, "%d/%s", feedID, guid)
}
