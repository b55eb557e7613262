package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/tinybites/backend/config"
)

func completionClientFor(url, key string) *CompletionClient {
	return NewCompletionClient(&config.Config{
		OpenAIAPIKey: key,
		OpenAIAPIURL: url,
		OpenAIModel:  "gpt-4o-mini",
	})
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "json_object", req.ResponseFormat["type"])
		assert.Equal(t, completionTemperature, req.Temperature)

		_, _ = w.Write([]byte(completionBody(`{"ok": true}`)))
	}))
	defer srv.Close()

	client := completionClientFor(srv.URL, "test-key")
	got, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, got)
}

func TestCompleteNoCredential(t *testing.T) {
	client := completionClientFor("http://unused.invalid", "")
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCompleteUpstreamErrors(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error": "nope"}`))
		}))

		client := completionClientFor(srv.URL, "test-key")
		_, err := client.Complete(context.Background(), "s", "u")
		assert.ErrorIs(t, err, ErrUpstreamUnavailable, "status %d", status)
		srv.Close()
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := completionClientFor(srv.URL, "test-key")
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCompleteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the call, so the dial fails

	client := completionClientFor(srv.URL, "test-key")
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
