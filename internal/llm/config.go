package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/hknav/internal/domain"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAsk     TaskType = "ask"
	TaskMonitor TaskType = "monitor"
	TaskLookup  TaskType = "lookup"
)

// Provider selects the LLM backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

const (
	defaultGeminiModel = "gemini-3-flash-preview"
	defaultOllamaModel = "llama3.2"
	defaultOllamaURL   = "http://localhost:11434"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string // empty means the provider's public endpoint
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Provider:   ProviderGemini,
		Model:      defaultGeminiModel,
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAsk:     {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 30000},
			TaskMonitor: {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 45000},
			TaskLookup:  {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. With the Gemini provider
// the subsystem switches on by itself once an API key is present.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("HKNAV_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(v)))
	}
	if cfg.Provider == ProviderOllama {
		cfg.Endpoint = defaultOllamaURL
		cfg.Model = defaultOllamaModel
	}

	cfg.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	if cfg.Provider == ProviderGemini && cfg.APIKey != "" {
		cfg.Enabled = true
	}

	if v := os.Getenv("HKNAV_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HKNAV_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HKNAV_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HKNAV_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("HKNAV_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("HKNAV_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAsk, "HKNAV_LLM_ASK_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskMonitor, "HKNAV_LLM_MONITOR_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskLookup, "HKNAV_LLM_LOOKUP_TIMEOUT_MS")

	return cfg
}

// Validate reports configuration that would make every call fail.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderOllama:
		if c.Endpoint == "" {
			return fmt.Errorf("%w: ollama endpoint is empty", ErrUnknownProvider)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// resolve merges per-request overrides over the task defaults.
func (c LLMConfig) resolve(req GenerateRequest) (temperature float64, maxTokens int) {
	tc := c.Tasks[req.Task]
	return domain.Float64FromPtrWithDefault(tc.Temperature, req.Temperature),
		domain.IntFromPtrWithDefault(tc.MaxTokens, req.MaxTokens)
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v
		}
	}
	return ""
}
