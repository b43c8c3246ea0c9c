package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HKNAV_LLM_PROVIDER", "HKNAV_LLM_ENABLED", "HKNAV_LLM_ENDPOINT", "HKNAV_LLM_MODEL",
		"HKNAV_LLM_TIMEOUT_MS", "HKNAV_LLM_MAX_RETRIES", "HKNAV_LLM_LOG_CALLS",
		"HKNAV_LLM_ASK_TIMEOUT_MS", "HKNAV_LLM_MONITOR_TIMEOUT_MS", "HKNAV_LLM_LOOKUP_TIMEOUT_MS",
		"GEMINI_API_KEY", "API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, 0.2, cfg.Tasks[TaskAsk].Temperature)
}

func TestLoadConfig_GeminiEnabledByAPIKey(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "legacy-key", cfg.APIKey)
	assert.NoError(t, cfg.Validate())

	t.Setenv("GEMINI_API_KEY", "new-key")
	assert.Equal(t, "new-key", LoadConfig().APIKey)

	t.Setenv("HKNAV_LLM_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}

func TestLoadConfig_OllamaDefaults(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("HKNAV_LLM_PROVIDER", "Ollama")

	cfg := LoadConfig()
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.False(t, cfg.Enabled, "ollama needs an explicit opt-in")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("HKNAV_LLM_TIMEOUT_MS", "9000")
	t.Setenv("HKNAV_LLM_ASK_TIMEOUT_MS", "15000")
	t.Setenv("HKNAV_LLM_LOOKUP_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskAsk))
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskMonitor))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskLookup))
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskType("other")))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.Provider = "openai"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownProvider)
}

func TestResolve_RequestOverridesTask(t *testing.T) {
	cfg := DefaultConfig()
	temp, maxTok := cfg.resolve(GenerateRequest{Task: TaskLookup})
	assert.Equal(t, 0.1, temp)
	assert.Equal(t, 1024, maxTok)

	hot, n := 0.9, 64
	temp, maxTok = cfg.resolve(GenerateRequest{Task: TaskLookup, Temperature: &hot, MaxTokens: &n})
	assert.Equal(t, 0.9, temp)
	assert.Equal(t, 64, maxTok)
}

func TestNew_DisabledClientFails(t *testing.T) {
	c, err := New(t.Context(), DefaultConfig(), nil)
	require.NoError(t, err)
	_, err = c.Generate(t.Context(), GenerateRequest{Task: TaskAsk})
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, c.Available(t.Context()))

	cfg := DefaultConfig()
	cfg.Enabled = true
	c, err = New(t.Context(), cfg, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	_, genErr := c.Generate(t.Context(), GenerateRequest{Task: TaskAsk})
	assert.ErrorIs(t, genErr, ErrMissingAPIKey)
}
