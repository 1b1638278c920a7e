package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefwire/briefwire/pkg/digest"
	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/server/mocks"
)

func TestServer_New(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}

	srv := New(cfg, &mocks.DigestRunnerMock{}, &mocks.DatastoreMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := New(cfg, &mocks.DigestRunnerMock{}, &mocks.DatastoreMock{}, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.0.0", status["version"])
}

func TestServer_StatusHandler(t *testing.T) {
	srv := New(&mocks.ConfigProviderMock{}, &mocks.DigestRunnerMock{}, &mocks.DatastoreMock{}, "test", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
}

func TestRenderJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	renderJSON(rec, nil, http.StatusTeapot, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"k":"v"}`, rec.Body.String())
}

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()
	renderError(rec, nil, fmt.Errorf("boom"), http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	renderError(rec, nil, nil, http.StatusInternalServerError)
	assert.JSONEq(t, `{"error":"unknown error"}`, rec.Body.String())
}

// sampleResult builds a minimal pipeline result for handler tests
func sampleResult(recipientID string) *digest.Result {
	return &digest.Result{
		RecipientID: recipientID,
		GeneratedAt: time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC),
		Digest: domain.MergedDigest{
			Meta: domain.DigestMeta{
				ArticlesReviewed: 10,
				ArticlesIncluded: 2,
				Batches:          1,
				GeneratedAt:      time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC),
			},
		},
	}
}
