package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pazow/feedbox/pkg/boltstore"
	"github.com/pazow/feedbox/pkg/config"
	"github.com/pazow/feedbox/pkg/domain"
	"github.com/pazow/feedbox/pkg/repository"
)

// New opens the storage backend selected by configuration. Both backends
// satisfy the same contract, callers never inspect which one they got.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Database.Backend {
	case "sqlite":
		repos, err := repository.NewRepositories(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return &Store{
			Feeds:      repos.Feed,
			Articles:   repos.Article,
			Categories: repos.Category,
			closeFn:    repos.Close,
		}, nil

	case "bolt":
		bs, err := boltstore.New(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open bolt backend: %w", err)
		}
		return &Store{
			Feeds:      bs.Feed,
			Articles:   bs.Article,
			Categories: bs.Category,
			closeFn:    bs.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Database.Backend)
	}
}

// Seed creates the configured categories if missing, idempotent across starts
func Seed(ctx context.Context, s *Store, seeds []config.CategorySeed) error {
	for _, seed := range seeds {
		category := domain.Category{Name: seed.Name, Color: seed.Color}
		if err := s.Categories.Create(ctx, &category); err != nil {
			return fmt.Errorf("seed category %q: %w", seed.Name, err)
		}
	}
	return nil
}
