package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pazow/feedbox/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID         int64      `db:"id"`
	FeedID     int64      `db:"feed_id"`
	GUID       string     `db:"guid"`
	Title      string     `db:"title"`
	Link       string     `db:"link"`
	Content    string     `db:"content"`
	Snippet    string     `db:"snippet"`
	Author     string     `db:"author"`
	Published  *time.Time `db:"published"`
	IsRead     bool       `db:"is_read"`
	IsFavorite bool       `db:"is_favorite"`
	CreatedAt  time.Time  `db:"created_at"`
}

// listQuery orders by publish time descending with undated articles last,
// id breaks ties in insertion order
const listQuery = "SELECT * FROM articles %s ORDER BY published IS NULL, published DESC, id ASC"

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// List retrieves all articles ordered by publish time descending
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var sqlArticles []articleSQL
	err := r.db.SelectContext(ctx, &sqlArticles, fmt.Sprintf(listQuery, ""))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return r.toDomainArticles(sqlArticles), nil
}

// ListByFeed retrieves articles of one feed ordered by publish time descending
func (r *ArticleRepository) ListByFeed(ctx context.Context, feedID int64) ([]domain.Article, error) {
	var sqlArticles []articleSQL
	err := r.db.SelectContext(ctx, &sqlArticles, fmt.Sprintf(listQuery, "WHERE feed_id = ?"), feedID)
	if err != nil {
		return nil, fmt.Errorf("list articles by feed: %w", err)
	}
	return r.toDomainArticles(sqlArticles), nil
}

// UpsertNew inserts candidates whose (feed_id, guid) identity is unseen and
// silently skips duplicates. Safe to call repeatedly with overlapping input.
// Returns the number of actually inserted articles.
func (r *ArticleRepository) UpsertNew(ctx context.Context, articles []domain.Article) (int, error) {
	inserted := 0

	err := newRetrier().Do(ctx, func() error {
		query := `
			INSERT OR IGNORE INTO articles (
				feed_id, guid, title, link, content, snippet, author,
				published, is_read, is_favorite
			) VALUES (
				:feed_id, :guid, :title, :link, :content, :snippet, :author,
				:published, :is_read, :is_favorite
			)
		`
		inserted = 0
		for _, article := range articles {
			sqlArticle := &articleSQL{
				FeedID:     article.FeedID,
				GUID:       article.GUID,
				Title:      article.Title,
				Link:       article.Link,
				Content:    article.Content,
				Snippet:    article.Snippet,
				Author:     article.Author,
				Published:  article.Published,
				IsRead:     article.IsRead,
				IsFavorite: article.IsFavorite,
			}

			result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
			if err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("insert article %q: %w", article.GUID, err)}
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
			}
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// UpdateFields applies a partial update of user state, nil fields are left
// untouched
func (r *ArticleRepository) UpdateFields(ctx context.Context, id int64, upd domain.ArticleUpdate) error {
	var sets []string
	var args []interface{}

	if upd.IsRead != nil {
		sets = append(sets, "is_read = ?")
		args = append(args, *upd.IsRead)
	}
	if upd.IsFavorite != nil {
		sets = append(sets, "is_favorite = ?")
		args = append(args, *upd.IsFavorite)
	}

	if len(sets) == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)", id); err != nil {
			return fmt.Errorf("check article exists: %w", err)
		}
		if !exists {
			return fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
		}
		return nil
	}

	query := "UPDATE articles SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UnreadCounts returns per-feed counts of unread articles. Feeds with no
// unread articles are absent from the map.
func (r *ArticleRepository) UnreadCounts(ctx context.Context) (map[int64]int, error) {
	rows := []struct {
		FeedID int64 `db:"feed_id"`
		Count  int   `db:"count"`
	}{}

	query := "SELECT feed_id, COUNT(*) AS count FROM articles WHERE is_read = 0 GROUP BY feed_id"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("unread counts: %w", err)
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.FeedID] = row.Count
	}
	return counts, nil
}

// MarkAllRead marks every article as read
func (r *ArticleRepository) MarkAllRead(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE articles SET is_read = 1"); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

// MarkFeedRead marks every article of one feed as read
func (r *ArticleRepository) MarkFeedRead(ctx context.Context, feedID int64) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE articles SET is_read = 1 WHERE feed_id = ?", feedID); err != nil {
		return fmt.Errorf("mark feed read: %w", err)
	}
	return nil
}

// DeleteByFeed removes all articles of one feed, the explicit cascade step of
// feed deletion
func (r *ArticleRepository) DeleteByFeed(ctx context.Context, feedID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE feed_id = ?", feedID); err != nil {
		return fmt.Errorf("delete articles by feed: %w", err)
	}
	return nil
}

// toDomainArticles converts articleSQL rows to domain articles
func (r *ArticleRepository) toDomainArticles(sqlArticles []articleSQL) []domain.Article {
	articles := make([]domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = domain.Article{
			ID:         a.ID,
			FeedID:     a.FeedID,
			GUID:       a.GUID,
			Title:      a.Title,
			Link:       a.Link,
			Content:    a.Content,
			Snippet:    a.Snippet,
			Author:     a.Author,
			Published:  a.Published,
			IsRead:     a.IsRead,
			IsFavorite: a.IsFavorite,
			CreatedAt:  a.CreatedAt,
		}
	}
	return articles
}
