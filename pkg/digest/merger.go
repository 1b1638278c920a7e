package digest

import (
	"sort"
	"strings"
	"time"

	"github.com/briefwire/briefwire/pkg/domain"
)

// Merge assembles per-batch results into the final digest: concatenates all
// stories, ranks them by relevance (stable, ties keep batch order), partitions
// into priority tiers and category sections, and computes aggregate metadata.
// Pure function of its inputs; same results in the same order produce an
// identical digest.
func Merge(results []domain.BatchResult, generatedAt time.Time) domain.MergedDigest {
	var stories []domain.CandidateStory
	skipped, duplicates := 0, 0

	for _, r := range results {
		for _, s := range r.Stories {
			stories = append(stories, canonicalMergeStory(s))
		}
		skipped += r.Skipped
		duplicates += r.Duplicates
	}

	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].RelevanceScore > stories[j].RelevanceScore
	})

	digest := domain.MergedDigest{
		Meta: domain.DigestMeta{
			ArticlesReviewed:  len(stories) + skipped + duplicates,
			ArticlesIncluded:  len(stories),
			DuplicatesRemoved: duplicates,
			Batches:           len(results),
			GeneratedAt:       generatedAt,
		},
		Main:  emptySections(),
		BSide: emptySections(),
	}

	for _, story := range stories {
		tier := &digest.BSide
		if story.Priority == domain.PriorityMain {
			tier = &digest.Main
			digest.Meta.MainStories++
		} else {
			digest.Meta.SideStories++
		}
		section := tier.ByCategory(story.Category)
		*section = append(*section, story)
	}

	return digest
}

// canonicalMergeStory re-normalizes a story: results may come from sources
// other than this run's extractor and the merge must stay idempotent
func canonicalMergeStory(s domain.CandidateStory) domain.CandidateStory {
	s.Title = strings.TrimSpace(s.Title)

	if s.RelevanceScore < 0 {
		s.RelevanceScore = 0
	} else if s.RelevanceScore > 10 {
		s.RelevanceScore = 10
	}
	if !s.Category.Valid() {
		s.Category = domain.CategoryNews
	}
	if s.Priority != domain.PriorityMain {
		s.Priority = domain.PriorityBSide
	}
	if s.Paragraphs == nil {
		s.Paragraphs = []string{}
	}
	if len(s.Paragraphs) > 3 {
		s.Paragraphs = s.Paragraphs[:3]
	}

	return s
}

// emptySections keeps all four section slices non-nil so the serialized
// digest always carries the full structure
func emptySections() domain.CategorySections {
	return domain.CategorySections{
		News:        []domain.CandidateStory{},
		Business:    []domain.CandidateStory{},
		Politics:    []domain.CandidateStory{},
		EURelations: []domain.CandidateStory{},
	}
}

// TopMainStories returns up to limit highest-ranked main-tier stories in
// section order, used as input for the digest summary step
func TopMainStories(d *domain.MergedDigest, limit int) []domain.CandidateStory {
	var main []domain.CandidateStory
	for _, c := range domain.Categories {
		main = append(main, *d.Main.ByCategory(c)...)
	}

	sort.SliceStable(main, func(i, j int) bool {
		return main[i].RelevanceScore > main[j].RelevanceScore
	})

	if limit > 0 && len(main) > limit {
		main = main[:limit]
	}
	return main
}
