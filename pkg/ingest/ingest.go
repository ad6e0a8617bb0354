// Package ingest orchestrates the fetch-parse-store cycle for feeds.
package ingest

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/pazow/feedbox/pkg/domain"
	"github.com/pazow/feedbox/pkg/store"
)

// Parser retrieves and parses a syndication feed at a URL
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Service runs ingestion against the configured storage backend
type Service struct {
	parser   Parser
	feeds    store.FeedStore
	articles store.ArticleStore
}

// NewService creates an ingestion service
func NewService(parser Parser, st *store.Store) *Service {
	return &Service{parser: parser, feeds: st.Feeds, articles: st.Articles}
}

// Ingest fetches one feed and stores its new articles. A fetch failure
// aborts with no state changes and propagates to the caller. The article
// insert and the feed timestamp update are not atomic together, a crash in
// between leaves last_fetched stale and the next ingestion corrects it.
func (s *Service) Ingest(ctx context.Context, feed *domain.Feed) error {
	parsed, err := s.parser.Parse(ctx, feed.URL)
	if err != nil {
		return err
	}

	candidates := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		published := item.Published
		candidates = append(candidates, domain.Article{
			FeedID:    feed.ID,
			GUID:      item.GUID,
			Title:     item.Title,
			Link:      item.Link,
			Content:   item.Content,
			Snippet:   item.Snippet,
			Author:    item.Author,
			Published: &published,
		})
	}

	inserted, err := s.articles.UpsertNew(ctx, candidates)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	upd := domain.FeedUpdate{LastFetched: &now}
	if feed.LastFetched == nil {
		// first successful fetch resolves the placeholder title
		upd.Title = &parsed.Title
	}
	if err := s.feeds.Update(ctx, feed.ID, upd); err != nil {
		return err
	}

	log.Printf("[INFO] ingested feed %q: %d new of %d entries", feed.URL, inserted, len(parsed.Items))
	return nil
}

// IngestAll ingests every registered feed strictly one after another, to
// bound load on remote servers. One feed's failure does not block the rest,
// the first error is reported after all feeds were attempted.
func (s *Service) IngestAll(ctx context.Context) error {
	feeds, err := s.feeds.List(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for i := range feeds {
		if err := s.Ingest(ctx, &feeds[i]); err != nil {
			log.Printf("[WARN] failed to ingest %q: %v", feeds[i].URL, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// AddFeed registers a feed and runs its first ingestion. If the first fetch
// fails the tentatively created feed is rolled back entirely, so no broken
// feed persists silently.
func (s *Service) AddFeed(ctx context.Context, url, category string) (*domain.Feed, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if category == "" {
		category = domain.DefaultCategory
	}

	feed := &domain.Feed{Title: domain.PlaceholderTitle, URL: url, Category: category}
	if err := s.feeds.Create(ctx, feed); err != nil {
		return nil, err
	}

	if err := s.Ingest(ctx, feed); err != nil {
		if rollbackErr := s.DeleteFeed(ctx, feed.ID); rollbackErr != nil {
			log.Printf("[WARN] failed to roll back feed %d: %v", feed.ID, rollbackErr)
		}
		return nil, err
	}

	return s.feeds.Get(ctx, feed.ID)
}

// DeleteFeed removes a feed and cascades to its articles. The cascade is an
// explicit step here, store deletes stay single-purpose.
func (s *Service) DeleteFeed(ctx context.Context, id int64) error {
	if _, err := s.feeds.Get(ctx, id); err != nil {
		return err
	}
	if err := s.articles.DeleteByFeed(ctx, id); err != nil {
		return err
	}
	return s.feeds.Delete(ctx, id)
}

// RefreshFeed ingests a single feed by id
func (s *Service) RefreshFeed(ctx context.Context, id int64) error {
	feed, err := s.feeds.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.Ingest(ctx, feed)
}

// Preview fetches and parses a URL without touching any store
func (s *Service) Preview(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}
	return s.parser.Parse(ctx, url)
}
