package feed_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefwire/briefwire/pkg/config"
	"github.com/briefwire/briefwire/pkg/feed"
	"github.com/briefwire/briefwire/pkg/feed/mocks"
)

func TestCollector_Collect(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	parser := &mocks.FeedParserMock{
		ParseFunc: func(_ context.Context, url string) (*feed.ParsedFeed, error) {
			switch url {
			case "https://a.example.com/rss":
				return &feed.ParsedFeed{Items: []feed.ParsedItem{
					{GUID: "a-1", Title: "older story", Link: "https://a.example.com/1", Published: now.Add(-time.Hour)},
					{GUID: "shared", Title: "shared story", Published: now},
				}}, nil
			case "https://b.example.com/rss":
				return &feed.ParsedFeed{Items: []feed.ParsedItem{
					{GUID: "b-1", Title: "newest story", Description: "summary text", Published: now.Add(time.Hour)},
					{GUID: "shared", Title: "shared story again", Published: now},
				}}, nil
			default:
				return nil, fmt.Errorf("connection refused")
			}
		},
	}

	sources := []config.SourceConfig{
		{Name: "Source A", URL: "https://a.example.com/rss", Category: "news", Country: "PT"},
		{Name: "Source B", URL: "https://b.example.com/rss", Category: "business"},
		{Name: "Broken", URL: "https://broken.example.com/rss"},
	}

	pool := feed.NewCollector(parser, sources).Collect(context.Background())

	require.Len(t, pool, 3, "duplicate GUID kept once, failing source skipped")
	assert.Len(t, parser.ParseCalls(), 3)

	assert.Equal(t, "b-1", pool[0].ID, "newest first")
	assert.Equal(t, "Source B", pool[0].Source)
	assert.Equal(t, "summary text", pool[0].Summary)

	byID := make(map[string]int)
	for i, doc := range pool {
		byID[doc.ID] = i
	}
	require.Contains(t, byID, "a-1")
	assert.Equal(t, "news", pool[byID["a-1"]].Category)
	assert.Equal(t, "PT", pool[byID["a-1"]].Country)
	assert.Equal(t, "https://a.example.com/1", pool[byID["a-1"]].URL)
	require.Contains(t, byID, "shared")
}

func TestCollector_Collect_NoSources(t *testing.T) {
	parser := &mocks.FeedParserMock{
		ParseFunc: func(context.Context, string) (*feed.ParsedFeed, error) {
			return nil, fmt.Errorf("must not be called")
		},
	}
	pool := feed.NewCollector(parser, nil).Collect(context.Background())
	assert.Empty(t, pool)
	assert.Empty(t, parser.ParseCalls())
}
