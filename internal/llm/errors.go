package llm

import "errors"

var (
	// ErrUnavailable indicates the LLM backend is unreachable.
	ErrUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrDisabled indicates the LLM subsystem is switched off.
	ErrDisabled = errors.New("llm disabled")

	// ErrMissingAPIKey indicates the Gemini provider has no credential.
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")

	// ErrUnknownProvider indicates an unsupported HKNAV_LLM_PROVIDER value.
	ErrUnknownProvider = errors.New("unknown llm provider")

	// ErrEmptyResponse indicates the backend answered with no text.
	ErrEmptyResponse = errors.New("llm returned an empty response")
)
