package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for one navigator
// operation.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to w. A nil writer yields a
// no-op observer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "navigator_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "navigator_use_case", attrs...)
}

// span times one use case and reports it when end is called.
type span struct {
	ctx      context.Context
	observer UseCaseObserver
	name     string
	start    time.Time
	fields   map[string]any
}

func (n *Navigator) begin(ctx context.Context, name string) *span {
	return &span{ctx: ctx, observer: n.observer, name: name, start: time.Now(), fields: map[string]any{}}
}

func (s *span) set(key string, v any) { s.fields[key] = v }

func (s *span) end(err error) {
	s.observer.ObserveUseCase(s.ctx, UseCaseEvent{
		Name:      s.name,
		Duration:  time.Since(s.start),
		Success:   err == nil,
		Err:       err,
		Fields:    s.fields,
		StartedAt: s.start,
	})
}
