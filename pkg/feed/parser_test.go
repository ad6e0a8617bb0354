package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pazow/feedbox/pkg/domain"
)

func TestParser_Parse(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>Test Article 1</title>
		<link>http://example.com/article1</link>
		<description>&lt;b&gt;Article 1&lt;/b&gt; description</description>
		<content:encoded><![CDATA[<p>Full content of article 1</p>]]></content:encoded>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>guid-1</guid>
		<author>test@example.com (Test Author)</author>
	</item>
	<item>
		<title>Test Article 2</title>
		<link>http://example.com/article2</link>
		<description>Article 2 description</description>
		<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "Feedbox/test")
	feed, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Test Feed", feed.Title)
	require.Len(t, feed.Items, 2)

	item1 := feed.Items[0]
	assert.Equal(t, "Test Article 1", item1.Title)
	assert.Equal(t, "http://example.com/article1", item1.Link)
	assert.Equal(t, "<p>Full content of article 1</p>", item1.Content)
	assert.Equal(t, "Article 1 description", item1.Snippet, "snippet should have markup stripped")
	assert.Equal(t, "guid-1", item1.GUID)
	assert.Equal(t, "Test Author", item1.Author)
	assert.Equal(t, 2006, item1.Published.Year())

	// second item has no guid, identity falls back to link
	item2 := feed.Items[1]
	assert.Equal(t, "http://example.com/article2", item2.GUID)
	assert.Equal(t, "Article 2 description", item2.Content, "content falls back to description")
}

func TestParser_Parse_Fallbacks(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Sparse Feed</title>
	<item>
		<description>only a description</description>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(rssContent))
	}))
	defer server.Close()

	before := time.Now()
	parser := NewParser(5*time.Second, "Feedbox/test")
	feed, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)

	require.Len(t, feed.Items, 1)
	item := feed.Items[0]
	assert.Equal(t, "No Title", item.Title)
	assert.Empty(t, item.Link)
	assert.Equal(t, "Sparse Feed-", item.GUID, "synthetic identity from feed and entry titles")
	assert.False(t, item.Published.Before(before), "missing publish date falls back to now")
}

func TestParser_Parse_LongSnippet(t *testing.T) {
	long := strings.Repeat("word ", 200)
	rssContent := `<?xml version="1.0"?><rss version="2.0"><channel><title>F</title>
<item><title>A</title><link>http://example.com/a</link><description>` + long + `</description></item>
</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "Feedbox/test")
	feed, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.LessOrEqual(t, len(feed.Items[0].Snippet), maxSnippetLen+3)
	assert.True(t, strings.HasSuffix(feed.Items[0].Snippet, "..."))
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "Feedbox/test")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)

		var fetchErr *domain.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, server.URL, fetchErr.URL)
	})

	t.Run("invalid feed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("this is not a feed"))
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "Feedbox/test")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)

		var fetchErr *domain.FetchError
		assert.True(t, errors.As(err, &fetchErr))
	})

	t.Run("unreachable host", func(t *testing.T) {
		parser := NewParser(time.Second, "Feedbox/test")
		_, err := parser.Parse(context.Background(), "http://127.0.0.1:1/feed.xml")
		require.Error(t, err)

		var fetchErr *domain.FetchError
		assert.True(t, errors.As(err, &fetchErr))
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer server.Close()

		parser := NewParser(100*time.Millisecond, "Feedbox/test")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)
	})
}
