package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefwire/briefwire/pkg/domain"
)

func TestEnricher_Enrich(t *testing.T) {
	article := `<html><body><article><p>` + strings.Repeat("Full article text. ", 30) + `</p></article></body></html>`

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if strings.HasSuffix(r.URL.Path, "/broken") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(article))
	}))
	defer srv.Close()

	enricher := NewEnricher(EnricherParams{Timeout: 5 * time.Second, MinTextLength: 200, MaxConcurrent: 2})

	docs := []domain.CandidateDocument{
		{ID: "thin", Title: "thin doc", Body: "short", SourceURL: srv.URL + "/article"},
		{ID: "full", Title: "full doc", Body: strings.Repeat("x", 300), SourceURL: srv.URL + "/never"},
		{ID: "no-url", Title: "no url", Body: "short"},
		{ID: "broken", Title: "broken doc", Body: "short", SourceURL: srv.URL + "/broken"},
	}

	enriched := enricher.Enrich(context.Background(), docs)
	require.Len(t, enriched, 4)

	assert.Contains(t, enriched[0].Body, "Full article text", "thin document gets extracted body")
	assert.Equal(t, docs[1].Body, enriched[1].Body, "document with enough text untouched")
	assert.Equal(t, "short", enriched[2].Body, "document without URL untouched")
	assert.Equal(t, "short", enriched[3].Body, "fetch failure keeps original body")

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "only thin documents with URLs are fetched")
	assert.Equal(t, "short", docs[0].Body, "input slice not mutated")
}

func TestEnricher_Enrich_Empty(t *testing.T) {
	enricher := NewEnricher(EnricherParams{})
	enriched := enricher.Enrich(context.Background(), nil)
	assert.Empty(t, enriched)
}
