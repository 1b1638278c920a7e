package digest

import "github.com/briefwire/briefwire/pkg/domain"

// BuildContinuity condenses a previously issued digest into a compact context
// injected into every batch request. Returns nil when there is no prior
// digest, in which case batches are extracted without continuity instructions.
func BuildContinuity(prior *domain.MergedDigest, maxTitles int) *domain.ContinuityContext {
	if prior == nil {
		return nil
	}
	if maxTitles <= 0 {
		maxTitles = 5
	}

	titles := make([]string, 0, maxTitles)
	for _, c := range domain.Categories {
		for _, story := range *prior.Main.ByCategory(c) {
			if len(titles) >= maxTitles {
				break
			}
			if story.Title != "" {
				titles = append(titles, story.Title)
			}
		}
	}

	return &domain.ContinuityContext{
		GeneratedAt:     prior.Meta.GeneratedAt,
		ArticlesCovered: prior.Meta.ArticlesIncluded,
		MainStoryTitles: titles,
	}
}
