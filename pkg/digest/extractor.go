package digest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/pkg/llm"
)

// Extractor turns one batch of candidate documents into structured stories
// with a single oracle call per batch
type Extractor struct {
	oracle Oracle
}

// NewExtractor creates a batch extractor
func NewExtractor(oracle Oracle) *Extractor {
	return &Extractor{oracle: oracle}
}

// flexSource tolerates both "source": "Name" and "source": {"name","url"}
type flexSource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

func (s *flexSource) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		s.Name = name
		return nil
	}
	type alias flexSource
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = flexSource(a)
	return nil
}

// storyPayload mirrors the declared output schema for one story. Legacy
// summary/content fields are tolerated and folded into paragraphs.
type storyPayload struct {
	Title             string     `json:"title"`
	Source            flexSource `json:"source"`
	RelevanceScore    int        `json:"relevance_score"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Paragraphs        []string   `json:"paragraphs"`
	Summary           string     `json:"summary,omitempty"`
	Content           string     `json:"content,omitempty"`
	ContinuedFromPrev bool       `json:"continued_from_previous,omitempty"`
	DocumentID        string     `json:"document_id,omitempty"`
}

// batchExtraction is the declared container shape for one batch call
type batchExtraction struct {
	Stories    []storyPayload `json:"stories"`
	Skipped    int            `json:"skipped"`
	Duplicates int            `json:"duplicates"`
}

// Extract invokes the oracle for one batch and parses the structured result.
// Individual stories with missing fields are defaulted conservatively; a
// response that is not parseable as the container object is a hard failure
// surfaced as *SchemaError.
func (e *Extractor) Extract(ctx context.Context, batch domain.Batch, profile domain.TopicProfile, continuity *domain.ContinuityContext) (domain.BatchResult, error) {
	prompt := e.buildPrompt(batch, profile, continuity)

	var resp batchExtraction
	if err := e.oracle.CompleteStructured(ctx, "batch_extraction", prompt, &resp); err != nil {
		if errors.Is(err, llm.ErrMalformed) {
			return domain.BatchResult{}, &SchemaError{Call: "batch_extraction", Err: err}
		}
		return domain.BatchResult{}, fmt.Errorf("extract batch %d/%d: %w", batch.Index+1, batch.Total, err)
	}

	result := domain.BatchResult{
		Stories:    make([]domain.CandidateStory, 0, len(resp.Stories)),
		Skipped:    resp.Skipped,
		Duplicates: resp.Duplicates,
	}
	for _, p := range resp.Stories {
		result.Stories = append(result.Stories, canonicalStory(p))
	}

	lgr.Printf("[DEBUG] batch %d/%d extracted %d stories, %d skipped, %d duplicates",
		batch.Index+1, batch.Total, len(result.Stories), result.Skipped, result.Duplicates)

	return result, nil
}

// canonicalStory coerces a loosely-shaped payload into the canonical story.
// Missing values default conservatively rather than rejecting the story.
func canonicalStory(p storyPayload) domain.CandidateStory {
	story := domain.CandidateStory{
		Title:             strings.TrimSpace(p.Title),
		Source:            domain.StorySource{Name: p.Source.Name, URL: p.Source.URL},
		RelevanceScore:    p.RelevanceScore,
		Category:          domain.Category(p.Category),
		Priority:          domain.Priority(p.Priority),
		Paragraphs:        p.Paragraphs,
		ContinuedFromPrev: p.ContinuedFromPrev,
		DocumentID:        p.DocumentID,
	}

	if story.RelevanceScore < 0 {
		story.RelevanceScore = 0
	} else if story.RelevanceScore > 10 {
		story.RelevanceScore = 10
	}

	if !story.Category.Valid() {
		story.Category = domain.CategoryNews
	}
	if story.Priority != domain.PriorityMain {
		story.Priority = domain.PriorityBSide
	}

	// synthesize a single paragraph from legacy fields when absent
	if len(story.Paragraphs) == 0 {
		if text := strings.TrimSpace(firstNonEmpty(p.Summary, p.Content)); text != "" {
			story.Paragraphs = []string{text}
		} else {
			story.Paragraphs = []string{}
		}
	}
	if len(story.Paragraphs) > 3 {
		story.Paragraphs = story.Paragraphs[:3]
	}

	return story
}

// buildPrompt assembles the per-batch oracle request: topic profile, hints,
// continuity instructions and the numbered batch content
func (e *Extractor) buildPrompt(batch domain.Batch, profile domain.TopicProfile, continuity *domain.ContinuityContext) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Curate batch %d of %d into digest stories.\n\n", batch.Index+1, batch.Total)

	if len(profile.Topics) > 0 {
		sb.WriteString("Recipient topics: " + strings.Join(profile.Topics, ", ") + "\n")
	}
	if len(profile.Keywords) > 0 {
		sb.WriteString("Boost keywords: " + strings.Join(profile.Keywords, ", ") + "\n")
	}
	if len(profile.Categories) > 0 {
		sb.WriteString("Accepted source categories: " + strings.Join(profile.Categories, ", ") + "\n")
	}
	if profile.Language != "" {
		sb.WriteString("Output language: " + profile.Language + "\n")
	}
	if profile.Brief != "" {
		sb.WriteString("Recipient brief: " + profile.Brief + "\n")
	}
	sb.WriteString("\n")

	if continuity != nil {
		fmt.Fprintf(&sb, "A previous digest from %s covered %d articles. Its main stories were:\n",
			continuity.GeneratedAt.Format("2006-01-02 15:04"), continuity.ArticlesCovered)
		for _, title := range continuity.MainStoryTitles {
			sb.WriteString("- " + title + "\n")
		}
		sb.WriteString(`Skip documents that repeat these stories and count them as duplicates.
When a document is a genuine new development of one of them, include it with
"continued_from_previous": true.

`)
	}

	sb.WriteString("Documents:\n\n")
	for i, doc := range batch.Documents {
		fmt.Fprintf(&sb, "%d. ID: %s\n   Title: %s\n   Source: %s\n", i+1, doc.ID, doc.Title, doc.Source)
		if doc.Country != "" {
			fmt.Fprintf(&sb, "   Country: %s\n", doc.Country)
		}
		if doc.Category != "" {
			fmt.Fprintf(&sb, "   Category hint: %s\n", doc.Category)
		}
		if doc.Body != "" {
			body := doc.Body
			if len(body) > 500 {
				body = body[:500] + "..."
			}
			fmt.Fprintf(&sb, "   Content: %s\n", body)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`For each relevant document produce one story with:
- title: concise headline
- source: {"name", "url"} of the originating outlet
- relevance_score: integer 0-10
- category: one of news, business, politics, eu_relations
- priority: "main" for top stories, "b_side" otherwise
- paragraphs: 1-3 short narrative paragraphs
- document_id: the originating document ID
Count documents you leave out as "skipped" when irrelevant and as "duplicates"
when they repeat an already covered story.`)

	return sb.String()
}
