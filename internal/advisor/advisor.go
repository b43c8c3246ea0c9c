// Package advisor wraps the language model behind three operations that
// never fail from the caller's point of view: every error turns into a
// fixed fallback value.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/llm"
)

// Service answers admission questions, digests news for monitored schools,
// and looks up a school's facts for the intake form.
type Service struct {
	client llm.LLMClient
	logger *slog.Logger
}

// NewService creates a Service. A nil logger discards fallback diagnostics.
func NewService(client llm.LLMClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{client: client, logger: logger}
}

// Ask answers a free-text question. Only the first entries of catalog are
// described to the model. Grounding links, when the backend returns any,
// are listed after the answer.
func (s *Service) Ask(ctx context.Context, question string, catalog []domain.School) string {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAsk,
		SystemPrompt: askSystemPrompt,
		UserPrompt:   fmt.Sprintf("Context: %s\n\nUser Question: %s", BuildContext(catalog), question),
		Grounded:     true,
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		return FallbackEmptyAnswer
	}
	if err != nil {
		s.logger.WarnContext(ctx, "advisor_fallback", "op", "ask", "error", err)
		return FallbackUnavailable
	}

	text := StripMarkdown(resp.Text)
	if strings.TrimSpace(text) == "" {
		return FallbackEmptyAnswer
	}
	return text + formatReferences(resp.Sources)
}

// Monitor asks for an admissions news digest covering names. It reports
// false, without contacting the backend, when names is empty, and false
// when the call fails.
func (s *Service) Monitor(ctx context.Context, names []string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskMonitor,
		SystemPrompt: monitorSystemPrompt,
		UserPrompt:   "Schools:\n- " + strings.Join(names, "\n- "),
		Grounded:     true,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "advisor_fallback", "op", "monitor", "schools", len(names), "error", err)
		return "", false
	}
	text := strings.TrimSpace(StripMarkdown(resp.Text))
	if text == "" {
		return "", false
	}
	return text + formatReferences(resp.Sources), true
}

// Lookup asks the model for a structured record describing the named
// school. Output that is not a usable JSON object counts as a failure.
func (s *Service) Lookup(ctx context.Context, name string) (*domain.PartialSchool, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskLookup,
		SystemPrompt: lookupSystemPrompt,
		UserPrompt:   "School: " + name,
		JSON:         true,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "advisor_fallback", "op", "lookup", "error", err)
		return nil, false
	}

	partial, err := llm.ExtractJSON(resp.Text, validatePartial)
	if err != nil {
		s.logger.WarnContext(ctx, "advisor_fallback", "op", "lookup", "error", err)
		return nil, false
	}
	partial.Description = StripMarkdown(partial.Description)
	return &partial, true
}

// BuildContext renders the short catalog digest sent with every question.
func BuildContext(catalog []domain.School) string {
	n := min(len(catalog), contextSampleSize)
	names := make([]string, 0, n)
	for _, sc := range catalog[:n] {
		names = append(names, fmt.Sprintf("%s (%s)", sc.Name, sc.NameZh))
	}
	return fmt.Sprintf("Current school database has %d Hong Kong primary schools including: %s and many others. %s",
		len(catalog), strings.Join(names, ", "), contextTopics)
}

func validatePartial(p domain.PartialSchool) error {
	if p.IsEmpty() {
		return errors.New("lookup returned no fields")
	}
	return nil
}

func formatReferences(sources []string) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n" + referencesHeading)
	for _, src := range sources {
		fmt.Fprintf(&b, "\n- [%s](%s)", referenceLabel, src)
	}
	return b.String()
}
