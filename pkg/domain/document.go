package domain

import "time"

// CandidateDocument represents a single source item entering the pipeline.
// Created by the caller, never mutated in place; the pre-filter annotates
// scored copies.
type CandidateDocument struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Source    string    `json:"source"`
	SourceURL string    `json:"source_url,omitempty"`
	Category  string    `json:"category,omitempty"`
	Country   string    `json:"country,omitempty"`
	Published time.Time `json:"published,omitempty"`

	// set by the relevance pre-filter on a derived copy
	RelevanceScore int    `json:"relevance_score,omitempty"`
	Justification  string `json:"justification,omitempty"`
}

// TopicProfile holds recipient filtering preferences, immutable for a run
type TopicProfile struct {
	Topics     []string `json:"topics,omitempty" yaml:"topics"`
	Keywords   []string `json:"keywords,omitempty" yaml:"keywords"`
	Categories []string `json:"categories,omitempty" yaml:"categories"`
	Language   string   `json:"language,omitempty" yaml:"language"`
	Brief      string   `json:"brief,omitempty" yaml:"brief"`
}

// Batch is an ordered fixed-capacity slice of the candidate pool,
// existing only during extraction
type Batch struct {
	Documents []CandidateDocument
	Index     int // zero-based ordinal
	Total     int // total batch count for the run
}
