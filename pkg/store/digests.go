package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/briefwire/briefwire/pkg/domain"
)

// digestSQL represents a stored digest row
type digestSQL struct {
	ID          int64     `db:"id"`
	RecipientID string    `db:"recipient_id"`
	Digest      string    `db:"digest"`
	GeneratedAt time.Time `db:"generated_at"`
}

// SaveDigest persists a generated digest for a recipient. An empty recipient
// ID stores the digest under the default profile. Lock errors are retried.
func (s *Store) SaveDigest(ctx context.Context, recipientID string, digest *domain.MergedDigest) error {
	data, err := json.Marshal(digest)
	if err != nil {
		return fmt.Errorf("marshal digest: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx,
			"INSERT INTO digests (recipient_id, digest, generated_at) VALUES (?, ?, ?)",
			recipientID, string(data), digest.Meta.GeneratedAt)
		if execErr != nil {
			if isLockError(execErr) {
				return execErr // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save digest: %w", execErr)}
		}
		return nil
	}, errCritical)
}

// LastDigest returns the most recent digest for a recipient, ErrNotFound
// when the recipient has no stored digests
func (s *Store) LastDigest(ctx context.Context, recipientID string) (*domain.MergedDigest, error) {
	var row digestSQL
	err := s.db.GetContext(ctx, &row,
		"SELECT id, recipient_id, digest, generated_at FROM digests WHERE recipient_id = ? ORDER BY generated_at DESC, id DESC LIMIT 1",
		recipientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("digest for %q: %w", recipientID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load last digest: %w", err)
	}

	var digest domain.MergedDigest
	if err := json.Unmarshal([]byte(row.Digest), &digest); err != nil {
		return nil, fmt.Errorf("unmarshal digest %d: %w", row.ID, err)
	}
	return &digest, nil
}

// ListDigests returns recent digests for a recipient, newest first
func (s *Store) ListDigests(ctx context.Context, recipientID string, limit int) ([]domain.MergedDigest, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []digestSQL
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, recipient_id, digest, generated_at FROM digests WHERE recipient_id = ? ORDER BY generated_at DESC, id DESC LIMIT ?",
		recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list digests: %w", err)
	}

	digests := make([]domain.MergedDigest, 0, len(rows))
	for _, row := range rows {
		var digest domain.MergedDigest
		if err := json.Unmarshal([]byte(row.Digest), &digest); err != nil {
			return nil, fmt.Errorf("unmarshal digest %d: %w", row.ID, err)
		}
		digests = append(digests, digest)
	}
	return digests, nil
}

// CountDigests returns the number of stored digests for a recipient
func (s *Store) CountDigests(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM digests WHERE recipient_id = ?", recipientID)
	if err != nil {
		return 0, fmt.Errorf("count digests: %w", err)
	}
	return count, nil
}
