package sink

import (
	"context"
	"log/slog"
	"mytwitter/domain/event"
)

type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) Consume(ctx context.Context, e event.DomainEvent) error {
	l.log.DebugContext(ctx, "Domain event",
		"name", e.Name(),
		"id", e.EventID(),
		"at", e.OccurredAt())
	return nil
}
