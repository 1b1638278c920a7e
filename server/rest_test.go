package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefwire/briefwire/pkg/digest"
	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/pkg/store"
	"github.com/briefwire/briefwire/server/mocks"
)

func TestServer_DigestHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(_ context.Context, req digest.Request) (*digest.Result, error) {
				return sampleResult(req.RecipientID), nil
			},
		}
		ds := &mocks.DatastoreMock{
			LastDigestFunc: func(_ context.Context, recipientID string) (*domain.MergedDigest, error) {
				return nil, fmt.Errorf("digest for %q: %w", recipientID, store.ErrNotFound)
			},
			SaveDigestFunc: func(context.Context, string, *domain.MergedDigest) error { return nil },
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, ds, "test", false)

		body := `{"recipient_id": "ana", "documents": [{"id": "d1", "title": "headline"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result digest.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "ana", result.RecipientID)
		assert.Equal(t, 2, result.Digest.Meta.ArticlesIncluded)

		require.Len(t, runner.RunCalls(), 1)
		assert.Nil(t, runner.RunCalls()[0].Req.Continuity, "no prior digest, no continuity")
		assert.Len(t, ds.SaveDigestCalls(), 1, "produced digest is persisted")
	})

	t.Run("continuity from last digest", func(t *testing.T) {
		prior := &domain.MergedDigest{
			Meta: domain.DigestMeta{ArticlesIncluded: 7, GeneratedAt: time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)},
			Main: domain.CategorySections{News: []domain.CandidateStory{{Title: "prior story"}}},
		}
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(_ context.Context, req digest.Request) (*digest.Result, error) {
				return sampleResult(req.RecipientID), nil
			},
		}
		ds := &mocks.DatastoreMock{
			LastDigestFunc: func(context.Context, string) (*domain.MergedDigest, error) { return prior, nil },
			SaveDigestFunc: func(context.Context, string, *domain.MergedDigest) error { return nil },
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, ds, "test", false)

		body := `{"recipient_id": "ana", "documents": [{"id": "d1", "title": "headline"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, runner.RunCalls(), 1)

		continuity := runner.RunCalls()[0].Req.Continuity
		require.NotNil(t, continuity)
		assert.Equal(t, 7, continuity.ArticlesCovered)
		assert.Equal(t, []string{"prior story"}, continuity.MainStoryTitles)
	})

	t.Run("explicit continuity wins over stored digest", func(t *testing.T) {
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(_ context.Context, req digest.Request) (*digest.Result, error) {
				return sampleResult(req.RecipientID), nil
			},
		}
		ds := &mocks.DatastoreMock{
			SaveDigestFunc: func(context.Context, string, *domain.MergedDigest) error { return nil },
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, ds, "test", false)

		body := `{"recipient_id": "ana", "documents": [{"id": "d1", "title": "headline"}],
			"continuity": {"articles_covered": 3, "main_story_titles": ["given"]}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, ds.LastDigestCalls(), "stored digest not consulted")
		require.Len(t, runner.RunCalls(), 1)
		require.NotNil(t, runner.RunCalls()[0].Req.Continuity)
		assert.Equal(t, []string{"given"}, runner.RunCalls()[0].Req.Continuity.MainStoryTitles)
	})

	t.Run("bad json", func(t *testing.T) {
		srv := New(&mocks.ConfigProviderMock{}, &mocks.DigestRunnerMock{}, &mocks.DatastoreMock{}, "test", false)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty pool", func(t *testing.T) {
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(context.Context, digest.Request) (*digest.Result, error) {
				return nil, fmt.Errorf("validate request: %w", digest.ErrEmptyPool)
			},
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, &mocks.DatastoreMock{}, "test", false)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader(`{"documents": []}`))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "empty")
	})

	t.Run("unknown recipient", func(t *testing.T) {
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(_ context.Context, req digest.Request) (*digest.Result, error) {
				return nil, fmt.Errorf("load recipient %s: %w", req.RecipientID, store.ErrNotFound)
			},
		}
		ds := &mocks.DatastoreMock{
			LastDigestFunc: func(_ context.Context, id string) (*domain.MergedDigest, error) {
				return nil, fmt.Errorf("digest for %q: %w", id, store.ErrNotFound)
			},
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, ds, "test", false)

		body := `{"recipient_id": "ghost", "documents": [{"id": "d1", "title": "headline"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("oracle schema failure", func(t *testing.T) {
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(context.Context, digest.Request) (*digest.Result, error) {
				return nil, fmt.Errorf("batch 1/2 failed after 3 attempts: %w",
					&digest.SchemaError{Call: "batch_extraction", Err: fmt.Errorf("bad payload")})
			},
		}
		ds := &mocks.DatastoreMock{
			LastDigestFunc: func(_ context.Context, id string) (*domain.MergedDigest, error) {
				return nil, fmt.Errorf("digest for %q: %w", id, store.ErrNotFound)
			},
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, ds, "test", false)

		body := `{"recipient_id": "ana", "documents": [{"id": "d1", "title": "headline"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("transport failure", func(t *testing.T) {
		runner := &mocks.DigestRunnerMock{
			RunFunc: func(context.Context, digest.Request) (*digest.Result, error) {
				return nil, fmt.Errorf("extract batch 1/1: connection refused")
			},
		}
		srv := New(&mocks.ConfigProviderMock{}, runner, &mocks.DatastoreMock{}, "test", false)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/digest",
			strings.NewReader(`{"documents": [{"id": "d1", "title": "headline"}]}`))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_RecipientHandlers(t *testing.T) {
	ana := &domain.Recipient{ID: "ana", Name: "Ana", Country: "PT"}

	ds := &mocks.DatastoreMock{
		LoadRecipientFunc: func(_ context.Context, id string) (*domain.Recipient, error) {
			if id != "ana" {
				return nil, fmt.Errorf("recipient %s: %w", id, store.ErrNotFound)
			}
			return ana, nil
		},
		ListRecipientsFunc: func(context.Context) ([]domain.Recipient, error) {
			return []domain.Recipient{*ana}, nil
		},
		SaveRecipientFunc: func(context.Context, *domain.Recipient) error { return nil },
	}
	srv := New(&mocks.ConfigProviderMock{}, &mocks.DigestRunnerMock{}, ds, "test", false)

	t.Run("get existing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipients/ana", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Recipient
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Ana", got.Name)
	})

	t.Run("get missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipients/ghost", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipients", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Recipient
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
	})

	t.Run("save", func(t *testing.T) {
		body := `{"id": "bob", "name": "Bob", "profile": {"topics": ["energy"]}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipients", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, ds.SaveRecipientCalls(), 1)
		assert.Equal(t, "bob", ds.SaveRecipientCalls()[0].R.ID)
	})

	t.Run("save without id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipients", strings.NewReader(`{"name": "Nameless"}`))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_ListDigestsHandler(t *testing.T) {
	ds := &mocks.DatastoreMock{
		ListDigestsFunc: func(_ context.Context, recipientID string, limit int) ([]domain.MergedDigest, error) {
			return []domain.MergedDigest{{Meta: domain.DigestMeta{ArticlesIncluded: 3}}}, nil
		},
	}
	srv := New(&mocks.ConfigProviderMock{}, &mocks.DigestRunnerMock{}, ds, "test", false)

	t.Run("default limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipients/ana/digests", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, ds.ListDigestsCalls(), 1)
		assert.Equal(t, "ana", ds.ListDigestsCalls()[0].RecipientID)
		assert.Equal(t, 10, ds.ListDigestsCalls()[0].Limit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipients/ana/digests?limit=3", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, ds.ListDigestsCalls()[1].Limit)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipients/ana/digests?limit=zero", http.NoBody)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
