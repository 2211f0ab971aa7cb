package broker

import (
	"context"
	"log/slog"
)

// LogPublisher only logs events. Used in tests and when no broker is deployed.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, key, eventType string, payload []byte) error {
	slog.InfoContext(ctx, "event relayed",
		slog.String("key", key),
		slog.String("event_type", eventType),
		slog.Int("bytes", len(payload)))
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
