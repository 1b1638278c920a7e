package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/pkg/llm"
)

//go:generate moq -out mocks/oracle.go -pkg mocks -skip-ensure -fmt goimports . Oracle
//go:generate moq -out mocks/recipients.go -pkg mocks -skip-ensure -fmt goimports . RecipientLoader
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher

// RecipientLoader loads a digest recipient from the datastore
type RecipientLoader interface {
	LoadRecipient(ctx context.Context, id string) (*domain.Recipient, error)
}

// Enricher supplements thin documents with full text before curation
type Enricher interface {
	Enrich(ctx context.Context, docs []domain.CandidateDocument) []domain.CandidateDocument
}

// Params holds everything the pipeline needs
type Params struct {
	Oracle     Oracle
	Recipients RecipientLoader
	Enricher   Enricher // optional

	BatchSize        int
	PreFilterTarget  int
	ScoreThreshold   int
	MaxRetries       int
	ContinuityTitles int
	RetryDelay       time.Duration
}

// Pipeline sequences the digest stages: normalize, pre-filter, partition,
// per-batch extraction with continuity context, merge, summary. Batches run
// strictly in partition order; each gets its own bounded retry, so a failure
// in batch N never re-invokes the oracle for batches already completed.
type Pipeline struct {
	oracle     Oracle
	recipients RecipientLoader
	enricher   Enricher
	prefilter  *PreFilter
	extractor  *Extractor

	batchSize        int
	prefilterTarget  int
	maxRetries       int
	continuityTitles int
	retryDelay       time.Duration
}

// NewPipeline creates a digest pipeline with defaults applied
func NewPipeline(p Params) *Pipeline {
	if p.BatchSize == 0 {
		p.BatchSize = 25
	}
	if p.PreFilterTarget == 0 {
		p.PreFilterTarget = 100
	}
	if p.ScoreThreshold == 0 {
		p.ScoreThreshold = 5
	}
	if p.MaxRetries == 0 {
		p.MaxRetries = 3
	}
	if p.ContinuityTitles == 0 {
		p.ContinuityTitles = 5
	}
	if p.RetryDelay == 0 {
		p.RetryDelay = time.Second
	}

	return &Pipeline{
		oracle:           p.Oracle,
		recipients:       p.Recipients,
		enricher:         p.Enricher,
		prefilter:        NewPreFilter(p.Oracle, p.BatchSize, p.ScoreThreshold),
		extractor:        NewExtractor(p.Oracle),
		batchSize:        p.BatchSize,
		prefilterTarget:  p.PreFilterTarget,
		maxRetries:       p.MaxRetries,
		continuityTitles: p.ContinuityTitles,
		retryDelay:       p.RetryDelay,
	}
}

// Request is one digest invocation
type Request struct {
	RecipientID string                    `json:"recipient_id"`
	Documents   []RawDocument             `json:"documents"`
	Country     string                    `json:"country,omitempty"`
	Profile     *domain.TopicProfile      `json:"profile,omitempty"`
	Continuity  *domain.ContinuityContext `json:"continuity,omitempty"`
}

// Result is the digest plus its metadata envelope
type Result struct {
	Digest         domain.MergedDigest `json:"digest"`
	RecipientID    string              `json:"recipient_id"`
	GeneratedAt    time.Time           `json:"generated_at"`
	ContinuityUsed bool                `json:"continuity_used"`
	Duration       time.Duration       `json:"duration"`
}

// Run executes the full pipeline for one request. Either a complete digest is
// produced or an error is returned; there is no partial-success mode.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if len(req.Documents) == 0 {
		return nil, fmt.Errorf("validate request: %w", ErrEmptyPool)
	}

	// collaborator loading happens before any retryable work: a missing
	// recipient surfaces immediately, without oracle calls
	profile := domain.TopicProfile{}
	country := req.Country
	if req.RecipientID != "" && p.recipients != nil {
		recipient, err := p.recipients.LoadRecipient(ctx, req.RecipientID)
		if err != nil {
			return nil, fmt.Errorf("load recipient %s: %w", req.RecipientID, err)
		}
		profile = recipient.Profile
		if country == "" {
			country = recipient.Country
		}
	}
	if req.Profile != nil {
		profile = *req.Profile
	}

	docs, err := Normalize(req.Documents)
	if err != nil {
		return nil, fmt.Errorf("normalize pool: %w", err)
	}
	if country != "" {
		for i := range docs {
			if docs[i].Country == "" {
				docs[i].Country = country
			}
		}
	}

	if p.enricher != nil {
		docs = p.enricher.Enrich(ctx, docs)
	}

	pool := p.prefilter.Filter(ctx, docs, profile, p.prefilterTarget)
	batches := PartitionPool(pool, p.batchSize)
	lgr.Printf("[INFO] digest for %q: %d documents in %d batches", req.RecipientID, len(pool), len(batches))

	continuity := req.Continuity
	if continuity != nil && len(continuity.MainStoryTitles) > p.continuityTitles {
		bounded := *continuity
		bounded.MainStoryTitles = bounded.MainStoryTitles[:p.continuityTitles]
		continuity = &bounded
	}

	// batches run strictly in partition order; completed results are kept, so
	// a retry re-invokes only the failed batch
	results := make([]domain.BatchResult, 0, len(batches))
	for _, b := range batches {
		var res domain.BatchResult
		retrier := repeater.NewBackoff(p.maxRetries, p.retryDelay, repeater.WithMaxDelay(10*time.Second))
		err := retrier.Do(ctx, func() error {
			r, extractErr := p.extractor.Extract(ctx, b, profile, continuity)
			if extractErr != nil {
				lgr.Printf("[WARN] batch %d/%d extraction failed: %v", b.Index+1, b.Total, extractErr)
				return extractErr
			}
			res = r
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("batch %d/%d failed after %d attempts: %w", b.Index+1, b.Total, p.maxRetries, err)
		}
		results = append(results, res)
	}

	generatedAt := time.Now().UTC()
	digest := Merge(results, generatedAt)

	if err := p.summarize(ctx, &digest); err != nil {
		return nil, err
	}

	return &Result{
		Digest:         digest,
		RecipientID:    req.RecipientID,
		GeneratedAt:    generatedAt,
		ContinuityUsed: req.Continuity != nil,
		Duration:       time.Since(start),
	}, nil
}

// summarize produces the editorial headline from the top main stories.
// Skipped when the digest has no main-tier stories.
func (p *Pipeline) summarize(ctx context.Context, digest *domain.MergedDigest) error {
	top := TopMainStories(digest, 5)
	if len(top) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("Write an editorial headline and a short intro paragraph for a digest with these top stories:\n\n")
	for i, story := range top {
		fmt.Fprintf(&sb, "%d. %s", i+1, story.Title)
		if len(story.Paragraphs) > 0 {
			fmt.Fprintf(&sb, " — %s", story.Paragraphs[0])
		}
		sb.WriteString("\n")
	}

	var summary domain.DigestSummary
	retrier := repeater.NewBackoff(p.maxRetries, p.retryDelay, repeater.WithMaxDelay(10*time.Second))
	err := retrier.Do(ctx, func() error {
		return p.oracle.CompleteStructured(ctx, "digest_summary", sb.String(), &summary)
	})
	if err != nil {
		if errors.Is(err, llm.ErrMalformed) {
			return &SchemaError{Call: "digest_summary", Err: err}
		}
		return fmt.Errorf("digest summary failed after %d attempts: %w", p.maxRetries, err)
	}

	digest.Summary = &summary
	return nil
}
