package digest

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/briefwire/briefwire/pkg/domain"
)

// RawDocument is a loosely-shaped candidate document as supplied by callers.
// Alternate field names map to the same canonical slot; normalization picks
// the first non-empty one.
type RawDocument struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Body        string    `json:"body,omitempty"`
	Content     string    `json:"content,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Source      string    `json:"source,omitempty"`
	SourceName  string    `json:"source_name,omitempty"`
	URL         string    `json:"url,omitempty"`
	Link        string    `json:"link,omitempty"`
	Category    string    `json:"category,omitempty"`
	Country     string    `json:"country,omitempty"`
	Published   time.Time `json:"published,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// strips all markup, leaving plain text for prompt payloads
var htmlPolicy = bluemonday.StrictPolicy()

// Normalize validates and coerces raw candidate documents into the canonical
// shape. A document is accepted only if it carries a non-empty title or body;
// everything else is defaulted. Returns ErrEmptyPool when nothing survives.
func Normalize(raw []RawDocument) ([]domain.CandidateDocument, error) {
	docs := make([]domain.CandidateDocument, 0, len(raw))
	dropped := 0

	for i, r := range raw {
		title := cleanText(r.Title)
		body := cleanText(firstNonEmpty(r.Body, r.Content, r.Summary))

		if title == "" && body == "" {
			dropped++
			continue
		}

		doc := domain.CandidateDocument{
			ID:        r.ID,
			Title:     title,
			Body:      body,
			Source:    firstNonEmpty(r.Source, r.SourceName, "unknown"),
			SourceURL: firstNonEmpty(r.URL, r.Link),
			Category:  r.Category,
			Country:   r.Country,
			Published: r.Published,
		}
		if doc.Published.IsZero() {
			doc.Published = r.PublishedAt
		}
		if doc.ID == "" {
			doc.ID = fmt.Sprintf("doc-%d", i+1)
		}

		docs = append(docs, doc)
	}

	if dropped > 0 {
		lgr.Printf("[INFO] dropped %d invalid documents, %d remain", dropped, len(docs))
	}

	if len(docs) == 0 {
		return nil, ErrEmptyPool
	}

	return docs, nil
}

// cleanText strips markup and collapses whitespace
func cleanText(s string) string {
	if strings.ContainsAny(s, "<>") {
		s = htmlPolicy.Sanitize(s)
	}
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
