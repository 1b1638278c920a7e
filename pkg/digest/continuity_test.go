package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefwire/briefwire/pkg/domain"
)

func TestBuildContinuity(t *testing.T) {
	issued := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	prior := &domain.MergedDigest{
		Meta: domain.DigestMeta{GeneratedAt: issued, ArticlesIncluded: 14},
		Main: domain.CategorySections{
			News:     []domain.CandidateStory{{Title: "story one"}, {Title: "story two"}},
			Business: []domain.CandidateStory{{Title: "story three"}},
		},
		BSide: domain.CategorySections{
			News: []domain.CandidateStory{{Title: "b-side story, must not appear"}},
		},
	}

	ctx := BuildContinuity(prior, 5)
	require.NotNil(t, ctx)

	assert.Equal(t, issued, ctx.GeneratedAt)
	assert.Equal(t, 14, ctx.ArticlesCovered)
	assert.Equal(t, []string{"story one", "story two", "story three"}, ctx.MainStoryTitles)
}

func TestBuildContinuity_BoundsTitles(t *testing.T) {
	prior := &domain.MergedDigest{
		Main: domain.CategorySections{
			News: []domain.CandidateStory{
				{Title: "t1"}, {Title: "t2"}, {Title: "t3"}, {Title: "t4"},
				{Title: "t5"}, {Title: "t6"}, {Title: "t7"},
			},
		},
	}

	ctx := BuildContinuity(prior, 5)
	require.NotNil(t, ctx)
	assert.Len(t, ctx.MainStoryTitles, 5)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4", "t5"}, ctx.MainStoryTitles)

	// zero maxTitles falls back to the default bound
	ctx = BuildContinuity(prior, 0)
	require.NotNil(t, ctx)
	assert.Len(t, ctx.MainStoryTitles, 5)
}

func TestBuildContinuity_NoPriorDigest(t *testing.T) {
	assert.Nil(t, BuildContinuity(nil, 5))
}

func TestBuildContinuity_SkipsEmptyTitles(t *testing.T) {
	prior := &domain.MergedDigest{
		Main: domain.CategorySections{
			News: []domain.CandidateStory{{Title: ""}, {Title: "real title"}},
		},
	}

	ctx := BuildContinuity(prior, 5)
	require.NotNil(t, ctx)
	assert.Equal(t, []string{"real title"}, ctx.MainStoryTitles)
}
