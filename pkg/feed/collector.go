package feed

import (
	"context"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/briefwire/briefwire/pkg/config"
	"github.com/briefwire/briefwire/pkg/digest"
)

//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser

// FeedParser retrieves and parses one RSS/Atom feed
type FeedParser interface {
	Parse(ctx context.Context, url string) (*ParsedFeed, error)
}

// Collector gathers candidate documents from configured feed sources.
// Sources are fetched concurrently; a failing source is logged and skipped
// rather than failing the whole collection.
type Collector struct {
	parser  FeedParser
	sources []config.SourceConfig
}

// NewCollector creates a collector over the configured sources
func NewCollector(parser FeedParser, sources []config.SourceConfig) *Collector {
	return &Collector{parser: parser, sources: sources}
}

// Collect fetches all sources and returns a deduplicated document pool,
// newest first. Entries keep the source's category and country annotations.
func (c *Collector) Collect(ctx context.Context) []digest.RawDocument {
	var wg sync.WaitGroup
	docsChan := make(chan []digest.RawDocument, len(c.sources))

	for _, src := range c.sources {
		wg.Add(1)
		go func(src config.SourceConfig) {
			defer wg.Done()
			parsed, err := c.parser.Parse(ctx, src.URL)
			if err != nil {
				lgr.Printf("[WARN] source %q failed: %v", src.Name, err)
				return
			}
			docs := make([]digest.RawDocument, 0, len(parsed.Items))
			for _, item := range parsed.Items {
				docs = append(docs, digest.RawDocument{
					ID:        item.GUID,
					Title:     item.Title,
					Body:      item.Content,
					Summary:   item.Description,
					Source:    src.Name,
					URL:       item.Link,
					Category:  src.Category,
					Country:   src.Country,
					Published: item.Published,
				})
			}
			docsChan <- docs
		}(src)
	}

	wg.Wait()
	close(docsChan)

	seen := make(map[string]bool)
	var pool []digest.RawDocument
	for docs := range docsChan {
		for _, doc := range docs {
			if doc.ID != "" && seen[doc.ID] {
				continue
			}
			seen[doc.ID] = true
			pool = append(pool, doc)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Published.After(pool[j].Published) })

	lgr.Printf("[INFO] collected %d documents from %d sources", len(pool), len(c.sources))
	return pool
}
