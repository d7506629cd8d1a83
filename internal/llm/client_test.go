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

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func TestClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.NotEmpty(t, req.Prompt)

		json.NewEncoder(w).Encode(ollamaResponse{
			Model:    req.Model,
			Response: "Practice Read Aloud twice daily.",
		})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		UserPrompt: "give me a study tip",
	})
	require.NoError(t, err)
	assert.Equal(t, "Practice Read Aloud twice daily.", resp.Text)
}

func TestClient_Generate_TimeoutMapsToErrTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 30
	client := NewOllamaClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Generate_ServerErrorExhaustsRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewOllamaClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 2, calls)
}

func TestClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

func TestClient_ObserverRecordsOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	var events []CallEvent
	obs := callObserverFunc(func(e CallEvent) { events = append(events, e) })

	client := NewOllamaClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
}

type callObserverFunc func(CallEvent)

func (f callObserverFunc) OnCallComplete(e CallEvent) { f(e) }
