package digest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/pkg/llm"
)

// Oracle is the generative service invoked by the pipeline stages
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteStructured(ctx context.Context, name, prompt string, out any) error
}

// PreFilter reduces an oversized candidate pool to a bounded, relevance-ranked
// subset using a single oracle pass. Degrades to plain truncation on any
// oracle failure; relevance quality drops but the pipeline does not abort.
type PreFilter struct {
	oracle    Oracle
	batchSize int
	threshold int
}

// NewPreFilter creates a relevance pre-filter
func NewPreFilter(oracle Oracle, batchSize, threshold int) *PreFilter {
	if batchSize < 1 {
		batchSize = 25
	}
	if threshold < 1 {
		threshold = 5
	}
	return &PreFilter{oracle: oracle, batchSize: batchSize, threshold: threshold}
}

// selection is one entry of the oracle's pre-filter response
type selection struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Filter returns a ranked subset of at most target documents. The pool passes
// through unchanged (truncated to target) when no topics are configured or the
// pool is smaller than four batches.
func (f *PreFilter) Filter(ctx context.Context, pool []domain.CandidateDocument, profile domain.TopicProfile, target int) []domain.CandidateDocument {
	if target < 1 {
		target = len(pool)
	}

	if len(profile.Topics) == 0 || len(pool) < f.batchSize*4 {
		if len(pool) > target {
			return pool[:target]
		}
		return pool
	}

	selected, err := f.oracleFilter(ctx, pool, profile, target)
	if err != nil {
		lgr.Printf("[WARN] relevance pre-filter degraded to truncation: %v", err)
		if len(pool) > target {
			return pool[:target]
		}
		return pool
	}

	lgr.Printf("[INFO] pre-filter reduced pool from %d to %d documents", len(pool), len(selected))
	return selected
}

// oracleFilter runs the semantic relevance pass against the oracle
func (f *PreFilter) oracleFilter(ctx context.Context, pool []domain.CandidateDocument, profile domain.TopicProfile, target int) ([]domain.CandidateDocument, error) {
	prompt := f.buildPrompt(pool, profile, target)

	content, err := f.oracle.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("relevance pass: %w", err)
	}

	var selections []selection
	if err := json.Unmarshal([]byte(llm.ExtractJSON(content)), &selections); err != nil {
		return nil, fmt.Errorf("parse relevance response: %w", err)
	}

	byID := make(map[string]domain.CandidateDocument, len(pool))
	for _, doc := range pool {
		byID[doc.ID] = doc
	}

	selected := make([]domain.CandidateDocument, 0, len(selections))
	seen := make(map[string]bool, len(selections))
	for _, sel := range selections {
		doc, ok := byID[sel.ID]
		if !ok || seen[sel.ID] {
			continue
		}
		seen[sel.ID] = true

		score := sel.Score
		if score < 0 {
			score = 0
		} else if score > 10 {
			score = 10
		}
		if score < f.threshold {
			continue
		}

		// annotated copy, the original pool entry stays untouched
		doc.RelevanceScore = score
		doc.Justification = sel.Reason
		selected = append(selected, doc)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("relevance response selected no known documents")
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].RelevanceScore > selected[j].RelevanceScore
	})

	if len(selected) > target {
		selected = selected[:target]
	}
	return selected, nil
}

// buildPrompt creates the scoring rubric and document listing for the oracle
func (f *PreFilter) buildPrompt(pool []domain.CandidateDocument, profile domain.TopicProfile, target int) string {
	var sb strings.Builder

	sb.WriteString("Score the documents below for relevance to the recipient's interests.\n\n")

	sb.WriteString("Recipient topics: ")
	sb.WriteString(strings.Join(profile.Topics, ", "))
	sb.WriteString("\n")
	if len(profile.Keywords) > 0 {
		sb.WriteString("Boost keywords: ")
		sb.WriteString(strings.Join(profile.Keywords, ", "))
		sb.WriteString("\n")
	}
	if profile.Brief != "" {
		sb.WriteString("Recipient brief: ")
		sb.WriteString(profile.Brief)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, `
Scoring rubric: integer 0-10, include only documents scoring %d or higher.
A document that merely contains a topic word in a name or unrelated context
(e.g. a company called "Solaris" for the topic "solar energy") is a false
positive and must score 0-3. Select at most %d documents.

Documents:

`, f.threshold, target)

	for i, doc := range pool {
		fmt.Fprintf(&sb, "%d. ID: %s\n   Title: %s\n", i+1, doc.ID, doc.Title)
		if doc.Body != "" {
			body := doc.Body
			if len(body) > 300 {
				body = body[:300] + "..."
			}
			fmt.Fprintf(&sb, "   Text: %s\n", body)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`Respond with a JSON array of {"id": string, "score": integer, "reason": string} for the selected documents only.`)
	return sb.String()
}
