package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
	Grounded     bool     // allow the backend to search the web, if it can
	JSON         bool     // ask for a JSON-only response
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
	Sources   []string // grounding links, deduplicated, in response order
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the backend can be reached.
	Available(ctx context.Context) bool
}

// New builds the client selected by cfg.Provider. A disabled or
// misconfigured subsystem yields a client whose every call fails, so callers
// always fall back the same way.
func New(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if !cfg.Enabled {
		return disabledClient{err: ErrDisabled}, nil
	}
	if err := cfg.Validate(); err != nil {
		return disabledClient{err: err}, err
	}
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		c, err := NewGeminiClient(ctx, cfg, observer)
		if err != nil {
			return disabledClient{err: err}, err
		}
		return c, nil
	}
}

type disabledClient struct{ err error }

func (d disabledClient) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, d.err
}

func (disabledClient) Available(context.Context) bool { return false }

// attemptFunc performs one backend call under a per-attempt deadline.
type attemptFunc func(ctx context.Context) (*GenerateResponse, error)

// generateWithRetry runs attempt up to 1+MaxRetries times, each with the
// task's timeout, and reports the outcome to observer. It stops early once
// the caller's context is done.
func generateWithRetry(ctx context.Context, cfg LLMConfig, task TaskType, observer Observer, attempt attemptFunc) (*GenerateResponse, error) {
	start := time.Now()
	timeout := time.Duration(cfg.TaskTimeout(task)) * time.Millisecond

	var lastErr error
	attempts := 1 + cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := attempt(attemptCtx)
		cancel()
		if err == nil {
			resp.LatencyMs = time.Since(start).Milliseconds()
			if resp.Model == "" {
				resp.Model = cfg.Model
			}
			observer.OnCallComplete(LLMCallEvent{
				Task:      task,
				Provider:  cfg.Provider,
				Model:     cfg.Model,
				LatencyMs: resp.LatencyMs,
				Success:   true,
			})
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	err := classify(ctx, lastErr)
	observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil, errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	case errors.Is(err, ErrEmptyResponse):
		return err
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
