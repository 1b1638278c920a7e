package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<link>https://example.com</link>
	<description>A test feed</description>
	<item>
		<title>First Article</title>
		<link>https://example.com/first</link>
		<guid>guid-1</guid>
		<description>First description</description>
		<pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate>
	</item>
	<item>
		<title>Second Article</title>
		<link>https://example.com/second</link>
		<description>Second description</description>
	</item>
</channel>
</rss>`

func TestParser_Parse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer srv.Close()

	parser := NewParser(5*time.Second, "test-agent/1.0")
	feed, err := parser.Parse(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Test Feed", feed.Title)
	require.Len(t, feed.Items, 2)

	first := feed.Items[0]
	assert.Equal(t, "guid-1", first.GUID)
	assert.Equal(t, "First Article", first.Title)
	assert.Equal(t, "First description", first.Description)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), first.Published.UTC())

	// GUID falls back to the link when absent
	assert.Equal(t, "https://example.com/second", feed.Items[1].GUID)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		parser := NewParser(time.Second, "")
		_, err := parser.Parse(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 502")
	})

	t.Run("invalid body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not a feed"))
		}))
		defer srv.Close()

		parser := NewParser(time.Second, "")
		_, err := parser.Parse(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})
}
