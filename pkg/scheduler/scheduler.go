package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/briefwire/briefwire/pkg/digest"
	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/pkg/store"
)

//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . PoolCollector
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . DigestRunner
//go:generate moq -out mocks/datastore.go -pkg mocks -skip-ensure -fmt goimports . Datastore

// PoolCollector gathers the candidate pool from configured sources
type PoolCollector interface {
	Collect(ctx context.Context) []digest.RawDocument
}

// DigestRunner executes the digest pipeline for one request
type DigestRunner interface {
	Run(ctx context.Context, req digest.Request) (*digest.Result, error)
}

// Datastore provides recipients and digest persistence
type Datastore interface {
	ListRecipients(ctx context.Context) ([]domain.Recipient, error)
	LastDigest(ctx context.Context, recipientID string) (*domain.MergedDigest, error)
	SaveDigest(ctx context.Context, recipientID string, d *domain.MergedDigest) error
}

// Scheduler periodically collects the candidate pool and generates a digest
// for every known recipient. Recipients run sequentially to avoid hammering
// the oracle; one failed recipient does not block the others.
type Scheduler struct {
	collector PoolCollector
	runner    DigestRunner
	store     Datastore
	interval  time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler with the given generation interval
func NewScheduler(collector PoolCollector, runner DigestRunner, dataStore Datastore, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = time.Hour
	}
	return &Scheduler{
		collector: collector,
		runner:    runner,
		store:     dataStore,
		interval:  interval,
	}
}

// Start begins periodic generation, first run happens immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.generateAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.generateAll(ctx)
		}
	}
}

// generateAll collects the pool once and runs the pipeline per recipient
func (s *Scheduler) generateAll(ctx context.Context) {
	pool := s.collector.Collect(ctx)
	if len(pool) == 0 {
		lgr.Printf("[WARN] no documents collected, skipping generation")
		return
	}

	recipients, err := s.store.ListRecipients(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list recipients: %v", err)
		return
	}

	// with no recipients registered produce a single default digest
	if len(recipients) == 0 {
		s.generate(ctx, "", pool)
		return
	}

	for _, r := range recipients {
		if ctx.Err() != nil {
			return
		}
		s.generate(ctx, r.ID, pool)
	}
}

// generate runs one digest, carrying continuity from the prior stored digest
func (s *Scheduler) generate(ctx context.Context, recipientID string, pool []digest.RawDocument) {
	req := digest.Request{RecipientID: recipientID, Documents: pool}

	prior, err := s.store.LastDigest(ctx, recipientID)
	switch {
	case err == nil:
		req.Continuity = digest.BuildContinuity(prior, 0)
	case errors.Is(err, store.ErrNotFound):
		// first digest for this recipient
	default:
		lgr.Printf("[WARN] prior digest lookup for %q failed: %v", recipientID, err)
	}

	result, err := s.runner.Run(ctx, req)
	if err != nil {
		lgr.Printf("[ERROR] digest for %q failed: %v", recipientID, err)
		return
	}

	if err := s.store.SaveDigest(ctx, recipientID, &result.Digest); err != nil {
		lgr.Printf("[ERROR] save digest for %q failed: %v", recipientID, err)
		return
	}

	lgr.Printf("[INFO] digest for %q: %d stories from %d documents in %v",
		recipientID, result.Digest.Meta.ArticlesIncluded, len(pool), result.Duration)
}
