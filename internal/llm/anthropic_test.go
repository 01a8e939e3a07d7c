package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.AnthropicAPIKey = "test-key"
	cfg.AnthropicBaseURL = baseURL
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func TestAnthropicClient_Complete(t *testing.T) {
	var gotReq messagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"model": "claude-sonnet-4-20250514",
			"content": []map[string]string{
				{"type": "text", "text": `{"events": []}`},
			},
		})
	}))
	defer srv.Close()

	client := NewAnthropicClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), Request{
		SystemPrompt: "You are a scheduler.",
		UserPrompt:   "Plan my week.",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"events": []}`, resp.Text)
	assert.Equal(t, "claude-sonnet-4-20250514", resp.Model)
	assert.Equal(t, "You are a scheduler.", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
}

func TestAnthropicClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewAnthropicClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), Request{UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestAnthropicClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	client := NewAnthropicClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), Request{UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestAnthropicClient_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewAnthropicClient(testConfig(srv.URL), obs)
	_, err := client.Complete(context.Background(), Request{UserPrompt: "hi"})

	require.Error(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "anthropic", events[0].Backend)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
