package domain

import "time"

// Category represents the fixed digest sections
type Category string

const (
	CategoryNews        Category = "news"
	CategoryBusiness    Category = "business"
	CategoryPolitics    Category = "politics"
	CategoryEURelations Category = "eu_relations"
)

// Categories lists all digest categories in section order
var Categories = []Category{CategoryNews, CategoryBusiness, CategoryPolitics, CategoryEURelations}

// Valid reports whether the category is one of the fixed sections
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Priority represents the story tier in the digest
type Priority string

const (
	PriorityMain  Priority = "main"
	PriorityBSide Priority = "b_side"
)

// StorySource identifies where a story came from
type StorySource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CandidateStory is a single extraction unit produced per batch call.
// Immutable once produced.
type CandidateStory struct {
	Title             string      `json:"title"`
	Source            StorySource `json:"source"`
	RelevanceScore    int         `json:"relevance_score"`
	Category          Category    `json:"category"`
	Priority          Priority    `json:"priority"`
	Paragraphs        []string    `json:"paragraphs"`
	ContinuedFromPrev bool        `json:"continued_from_previous,omitempty"`
	DocumentID        string      `json:"document_id,omitempty"`
}

// BatchResult holds one batch's stories plus oracle-reported counters
type BatchResult struct {
	Stories    []CandidateStory
	Skipped    int // explicitly irrelevant per oracle
	Duplicates int // redundant vs continuity context or within batch
}

// ContinuityContext is a condensed reference to a previously issued digest,
// injected into every batch request to prevent re-coverage
type ContinuityContext struct {
	GeneratedAt     time.Time `json:"generated_at"`
	ArticlesCovered int       `json:"articles_covered"`
	MainStoryTitles []string  `json:"main_story_titles"`
}

// DigestMeta holds aggregate counters for a merged digest
type DigestMeta struct {
	ArticlesReviewed  int       `json:"articles_reviewed"`
	ArticlesIncluded  int       `json:"articles_included"`
	MainStories       int       `json:"main_stories"`
	SideStories       int       `json:"side_stories"`
	DuplicatesRemoved int       `json:"duplicates_removed"`
	Batches           int       `json:"batches"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// CategorySections partitions stories of one priority tier by category
type CategorySections struct {
	News        []CandidateStory `json:"news"`
	Business    []CandidateStory `json:"business"`
	Politics    []CandidateStory `json:"politics"`
	EURelations []CandidateStory `json:"eu_relations"`
}

// ByCategory returns the section slice for the given category,
// falling back to news for anything unknown
func (s *CategorySections) ByCategory(c Category) *[]CandidateStory {
	switch c {
	case CategoryBusiness:
		return &s.Business
	case CategoryPolitics:
		return &s.Politics
	case CategoryEURelations:
		return &s.EURelations
	default:
		return &s.News
	}
}

// DigestSummary is the editorial headline produced from the top main stories
type DigestSummary struct {
	Headline string `json:"headline"`
	Intro    string `json:"intro"`
}

// MergedDigest is the final artifact of a pipeline run
type MergedDigest struct {
	Meta    DigestMeta       `json:"meta"`
	Main    CategorySections `json:"main"`
	BSide   CategorySections `json:"b_side"`
	Summary *DigestSummary   `json:"summary,omitempty"`
}

// AllStories returns every story across both tiers in section order
func (d *MergedDigest) AllStories() []CandidateStory {
	var out []CandidateStory
	for _, sections := range []*CategorySections{&d.Main, &d.BSide} {
		for _, c := range Categories {
			out = append(out, *sections.ByCategory(c)...)
		}
	}
	return out
}
