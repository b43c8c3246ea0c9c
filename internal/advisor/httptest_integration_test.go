package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/hknav/internal/catalog"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollamaServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"model": "test-model", "response": response})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func ollamaConfig(endpoint string) llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Provider = llm.ProviderOllama
	cfg.Endpoint = endpoint
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return cfg
}

// TestLookup_WithHTTPTestServer runs a lookup through the real Ollama
// transport and merges the result into a custom school record.
func TestLookup_WithHTTPTestServer(t *testing.T) {
	srv := ollamaServer(t, `{"name":"Kau Yan School","nameZh":"救恩學校","district":"Sai Ying Pun","type":"Boarding","curriculum":["DSE","Montessori"],"applicationEnd":"2024-10-15"}`)

	client, err := llm.New(context.Background(), ollamaConfig(srv.URL), llm.NoopObserver{})
	require.NoError(t, err)
	svc := NewService(client, nil)

	p, ok := svc.Lookup(context.Background(), "Kau Yan")
	require.True(t, ok)

	school, rejected, err := domain.SchoolFromPartial(*p, "custom-1", 101)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"type=Boarding", "curriculum=Montessori"}, rejected)
	assert.Equal(t, domain.TypePrivate, school.Type)
	assert.Equal(t, []domain.Curriculum{domain.CurriculumDSE}, school.Curriculum)
	assert.Equal(t, domain.MustDate("2024-10-15"), school.ApplicationEnd)
	assert.Equal(t, domain.PlaceholderTips, school.InterviewTips)
}

func TestAsk_WithUnreachableBackend(t *testing.T) {
	cfg := ollamaConfig("http://127.0.0.1:1")
	client, err := llm.New(context.Background(), cfg, llm.NoopObserver{})
	require.NoError(t, err)

	answer := NewService(client, nil).Ask(context.Background(), "hello", catalog.Base())
	assert.Equal(t, FallbackUnavailable, answer)
}
