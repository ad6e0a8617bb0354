package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/pazow/feedbox/pkg/domain"
)

// snippets are trimmed to a reasonable preview length
const maxSnippetLen = 300

// Parser fetches and parses RSS/Atom feeds into normalized entries
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser with the given per-request timeout
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Parse fetches the document at url and parses it as a syndication feed.
// A single attempt is made, retry is the caller's concern. Any network,
// timeout or parse failure is reported as *domain.FetchError.
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: fmt.Errorf("parse feed: %w", err)}
	}

	result := &domain.ParsedFeed{
		Title: parsed.Title,
		Items: make([]domain.ParsedItem, 0, len(parsed.Items)),
	}
	if result.Title == "" {
		result.Title = "Unknown Feed"
	}

	now := time.Now()
	for _, item := range parsed.Items {
		result.Items = append(result.Items, p.normalize(parsed.Title, item, now))
	}

	return result, nil
}

// normalize maps a gofeed item to a ParsedItem, applying per-field fallbacks
func (p *Parser) normalize(feedTitle string, item *gofeed.Item, now time.Time) domain.ParsedItem {
	res := domain.ParsedItem{
		Title:   item.Title,
		Link:    item.Link,
		Content: item.Content,
		Snippet: p.snippet(item.Description),
	}

	if res.Title == "" {
		res.Title = "No Title"
	}
	if res.Content == "" {
		res.Content = item.Description
	}

	// identity token: guid, else link, else a synthetic title pair
	switch {
	case item.GUID != "":
		res.GUID = item.GUID
	case item.Link != "":
		res.GUID = item.Link
	default:
		res.GUID = fmt.Sprintf("%s-%s", feedTitle, item.Title)
	}

	if item.Author != nil {
		res.Author = item.Author.Name
	}

	// prefer published, fall back to updated, then to fetch time so the
	// entry still sorts near the top on first sight
	switch {
	case item.PublishedParsed != nil:
		res.Published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		res.Published = *item.UpdatedParsed
	default:
		res.Published = now
	}

	return res
}

// snippet strips markup from a description and trims it to preview length
func (p *Parser) snippet(description string) string {
	text := strings.TrimSpace(p.sanitizer.Sanitize(description))
	runes := []rune(text)
	if len(runes) > maxSnippetLen {
		text = strings.TrimSpace(string(runes[:maxSnippetLen])) + "..."
	}
	return text
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
