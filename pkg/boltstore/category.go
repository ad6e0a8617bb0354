package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/pazow/feedbox/pkg/domain"
)

// CategoryBucket handles category records
type CategoryBucket struct {
	db *bolt.DB
}

// List retrieves all categories ordered by name
func (b *CategoryBucket) List(_ context.Context) ([]domain.Category, error) {
	var categories []domain.Category

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(categoriesBucket).ForEach(func(_, v []byte) error {
			var category domain.Category
			if err := json.Unmarshal(v, &category); err != nil {
				return fmt.Errorf("decode category: %w", err)
			}
			categories = append(categories, category)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// Create inserts a category. Creating an already existing name is a no-op
// that loads the existing record, so startup seeding is idempotent.
func (b *CategoryBucket) Create(_ context.Context, category *domain.Category) error {
	if category.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(categoriesBucket)

		var existing *domain.Category
		err := bucket.ForEach(func(_, v []byte) error {
			var c domain.Category
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("decode category: %w", err)
			}
			if c.Name == category.Name {
				existing = &c
			}
			return nil
		})
		if err != nil {
			return err
		}

		if existing != nil {
			category.ID = existing.ID
			category.Color = existing.Color
			return nil
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		category.ID = int64(seq) //nolint:gosec // bolt sequences stay well below int64 max

		data, err := json.Marshal(category)
		if err != nil {
			return fmt.Errorf("encode category: %w", err)
		}
		return bucket.Put(itob(category.ID), data)
	})
}
