package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pazow/feedbox/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	URL         string     `db:"url"`
	Category    string     `db:"category"`
	LastFetched *time.Time `db:"last_fetched"`
	CreatedAt   time.Time  `db:"created_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// List retrieves all feeds, newest first
func (r *FeedRepository) List(ctx context.Context) ([]domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, "SELECT * FROM feeds ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = r.toDomainFeed(&f)
	}
	return feeds, nil
}

// Get retrieves a feed by ID
func (r *FeedRepository) Get(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	feed := r.toDomainFeed(&sqlFeed)
	return &feed, nil
}

// Create inserts a new feed and assigns its ID
func (r *FeedRepository) Create(ctx context.Context, feed *domain.Feed) error {
	if feed.Category == "" {
		feed.Category = domain.DefaultCategory
	}

	sqlFeed := &feedSQL{
		Title:       feed.Title,
		URL:         feed.URL,
		Category:    feed.Category,
		LastFetched: feed.LastFetched,
	}

	query := `INSERT INTO feeds (title, url, category, last_fetched) VALUES (:title, :url, :category, :last_fetched)`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// Update applies a partial update, nil fields are left untouched. The update
// races with ingestion touching last_fetched, so lock errors are retried.
func (r *FeedRepository) Update(ctx context.Context, id int64, upd domain.FeedUpdate) error {
	var sets []string
	var args []interface{}

	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}
	if upd.LastFetched != nil {
		sets = append(sets, "last_fetched = ?")
		args = append(args, *upd.LastFetched)
	}

	if len(sets) == 0 {
		// nothing to update, but the target must still exist
		_, err := r.Get(ctx, id)
		return err
	}

	query := "UPDATE feeds SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	return newRetrier().Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed: %w", err)}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)}
		}
		return nil
	})
}

// Delete removes a feed. Articles are not cascaded here, the caller deletes
// them explicitly first.
func (r *FeedRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// toDomainFeed converts feedSQL to domain.Feed
func (r *FeedRepository) toDomainFeed(sqlFeed *feedSQL) domain.Feed {
	return domain.Feed{
		ID:          sqlFeed.ID,
		Title:       sqlFeed.Title,
		URL:         sqlFeed.URL,
		Category:    sqlFeed.Category,
		LastFetched: sqlFeed.LastFetched,
		CreatedAt:   sqlFeed.CreatedAt,
	}
}
