package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/briefwire/briefwire/pkg/domain"
)

// recipientSQL represents a recipient row
type recipientSQL struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Country   string     `db:"country"`
	Profile   profileSQL `db:"profile"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// profileSQL stores a topic profile as a JSON column
type profileSQL domain.TopicProfile

// Value implements driver.Valuer for database storage
func (p profileSQL) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *profileSQL) Scan(value interface{}) error {
	if value == nil {
		*p = profileSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported profile type %T", value)
	}

	return json.Unmarshal(data, p)
}

// SaveRecipient inserts or updates a recipient
func (s *Store) SaveRecipient(ctx context.Context, r *domain.Recipient) error {
	if r.ID == "" {
		return fmt.Errorf("recipient id is required")
	}
	query := `
		INSERT INTO recipients (id, name, country, profile, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			country = excluded.country,
			profile = excluded.profile,
			updated_at = datetime('now')
	`
	if _, err := s.db.ExecContext(ctx, query, r.ID, r.Name, r.Country, profileSQL(r.Profile)); err != nil {
		return fmt.Errorf("save recipient: %w", err)
	}
	return nil
}

// LoadRecipient retrieves a recipient by ID, ErrNotFound when absent
func (s *Store) LoadRecipient(ctx context.Context, id string) (*domain.Recipient, error) {
	var row recipientSQL
	err := s.db.GetContext(ctx, &row,
		"SELECT id, name, country, profile, created_at, updated_at FROM recipients WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipient %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load recipient: %w", err)
	}

	return &domain.Recipient{
		ID:        row.ID,
		Name:      row.Name,
		Country:   row.Country,
		Profile:   domain.TopicProfile(row.Profile),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// ListRecipients returns all recipients ordered by ID
func (s *Store) ListRecipients(ctx context.Context) ([]domain.Recipient, error) {
	var rows []recipientSQL
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, name, country, profile, created_at, updated_at FROM recipients ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	recipients := make([]domain.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, domain.Recipient{
			ID:        row.ID,
			Name:      row.Name,
			Country:   row.Country,
			Profile:   domain.TopicProfile(row.Profile),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return recipients, nil
}

// DeleteRecipient removes a recipient, ErrNotFound when absent
func (s *Store) DeleteRecipient(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recipients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipient %s: %w", id, ErrNotFound)
	}
	return nil
}
