package content

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/briefwire/briefwire/pkg/domain"
)

// Enricher fetches full article text for candidate documents whose feed body
// is too thin to curate from. Fetch failures are logged and the original
// document is kept, enrichment never fails the pipeline.
type Enricher struct {
	extractor     *HTTPExtractor
	maxConcurrent int
	minTextLength int
}

// EnricherParams configures the document enricher
type EnricherParams struct {
	Timeout       time.Duration
	MaxConcurrent int
	MinTextLength int
	UserAgent     string
}

// NewEnricher creates a document enricher with defaults applied
func NewEnricher(p EnricherParams) *Enricher {
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	if p.MaxConcurrent == 0 {
		p.MaxConcurrent = 5
	}
	if p.MinTextLength == 0 {
		p.MinTextLength = 200
	}
	return &Enricher{
		extractor:     NewHTTPExtractor(p.Timeout, p.UserAgent),
		maxConcurrent: p.MaxConcurrent,
		minTextLength: p.MinTextLength,
	}
}

// Enrich replaces thin document bodies with extracted article text. Documents
// without a source URL or with enough body text already are left untouched.
func (e *Enricher) Enrich(ctx context.Context, docs []domain.CandidateDocument) []domain.CandidateDocument {
	enriched := make([]domain.CandidateDocument, len(docs))
	copy(enriched, docs)

	var eg errgroup.Group
	eg.SetLimit(e.maxConcurrent)

	var fetched int
	for i := range enriched {
		if enriched[i].SourceURL == "" || len(enriched[i].Body) >= e.minTextLength {
			continue
		}
		fetched++
		eg.Go(func() error {
			text, err := e.extractor.Extract(ctx, enriched[i].SourceURL)
			if err != nil {
				lgr.Printf("[WARN] enrich %s: %v", enriched[i].ID, err)
				return nil
			}
			enriched[i].Body = text
			return nil
		})
	}
	_ = eg.Wait() // workers never return errors

	if fetched > 0 {
		lgr.Printf("[DEBUG] enriched %d of %d documents", fetched, len(docs))
	}
	return enriched
}
