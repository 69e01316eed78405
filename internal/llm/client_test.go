package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(resty.New(), srv.URL, "test-model", "test-key")
	return client, srv
}

func TestAnalyzeSendsChatCompletionRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatCompletionRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"[]"}}]}`))
	})

	out, err := client.Analyze(context.Background(), "var x = 1;", "find issues")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Contains(t, gotBody.Messages[1].Content, "find issues")
	assert.Contains(t, gotBody.Messages[1].Content, "var x = 1;")
	assert.Equal(t, 0.3, gotBody.Temperature)
	assert.Equal(t, 2000, gotBody.MaxTokens)
}

func TestAnalyzeServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})

	_, err := client.Analyze(context.Background(), "code", "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable), "expected ErrUnavailable, got %v", err)
}

func TestAnalyzeUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(resty.New(), srv.URL, "test-model", "")
	_, err := client.Analyze(context.Background(), "code", "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable), "expected ErrUnavailable, got %v", err)
}

func TestAnalyzeEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Analyze(context.Background(), "code", "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable), "expected ErrUnavailable, got %v", err)
}

func TestHealthHealthy(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"qwen/qwen3-coder-30b"},{"id":"other-model"}]}`))
	})

	status := client.Health(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.True(t, status.Available)
	assert.Equal(t, []string{"qwen/qwen3-coder-30b", "other-model"}, status.Models)
	assert.Equal(t, srv.URL, status.BaseURL)
}

func TestHealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(resty.New(), srv.URL, "test-model", "")
	status := client.Health(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
	assert.False(t, status.Available)
	assert.NotEmpty(t, status.Error)
}

func TestHealthServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	status := client.Health(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
	assert.False(t, status.Available)
}
