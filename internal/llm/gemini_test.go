package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.APIKey = "test-key"
	cfg.Model = "gemini-test"
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return cfg
}

func geminiServer(t *testing.T, handle func(body map[string]any) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handle(body)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiClient_GroundedAnswerWithSources(t *testing.T) {
	var sawSearchTool bool
	srv := geminiServer(t, func(body map[string]any) string {
		tools, _ := body["tools"].([]any)
		for _, tool := range tools {
			if m, ok := tool.(map[string]any); ok {
				_, sawSearchTool = m["googleSearch"]
			}
		}
		return `{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "Applications open in September."}]},
				"groundingMetadata": {"groundingChunks": [
					{"web": {"uri": "https://www.spcc.edu.hk"}},
					{"web": {"uri": "https://www.spcc.edu.hk"}},
					{"web": {"uri": "https://www.edb.gov.hk"}}
				]}
			}],
			"modelVersion": "gemini-test-001"
		}`
	})

	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), NoopObserver{})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskAsk,
		SystemPrompt: "You are an admission consultant.",
		UserPrompt:   "When do applications open?",
		Grounded:     true,
	})

	require.NoError(t, err)
	assert.True(t, sawSearchTool)
	assert.Equal(t, "Applications open in September.", resp.Text)
	assert.Equal(t, "gemini-test-001", resp.Model)
	assert.Equal(t, []string{"https://www.spcc.edu.hk", "https://www.edb.gov.hk"}, resp.Sources)
}

func TestGeminiClient_JSONModeSkipsSearchTool(t *testing.T) {
	srv := geminiServer(t, func(body map[string]any) string {
		assert.NotContains(t, body, "tools")
		gc, _ := body["generationConfig"].(map[string]any)
		assert.Equal(t, "application/json", gc["responseMimeType"])
		return `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"name\":\"DBS\"}"}]}}]}`
	})

	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), NoopObserver{})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskLookup,
		UserPrompt: "DBS",
		Grounded:   true,
		JSON:       true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"name":"DBS"}`, resp.Text)
	assert.Equal(t, "gemini-test", resp.Model, "falls back to the configured model")
	assert.Empty(t, resp.Sources)
}

func TestGeminiClient_EmptyCandidate(t *testing.T) {
	srv := geminiServer(t, func(map[string]any) string {
		return `{"candidates":[{"content":{"role":"model","parts":[{"text":""}]}}]}`
	})

	var captured LLMCallEvent
	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL),
		&captureObserver{fn: func(e LLMCallEvent) { captured = e }})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskAsk, UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, ProviderGemini, captured.Provider)
	assert.False(t, captured.Success)
}

func TestGeminiClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), NoopObserver{})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskAsk, UserPrompt: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.True(t, strings.Contains(err.Error(), "bad"))
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	cfg := geminiTestConfig("")
	cfg.APIKey = ""
	_, err := NewGeminiClient(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
