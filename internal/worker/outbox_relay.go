// Package worker holds the background loops started next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"
)

// OutboxRelay forwards committed outbox events to the broker. Delivery is
// at-least-once: an event whose MarkSent fails is published again.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	interval    time.Duration
	batchSize   int32
	maxAttempts int32
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, cfg config.WorkerConfig) *OutboxRelay {
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		interval:    cfg.OutboxInterval,
		batchSize:   cfg.OutboxBatchSize,
		maxAttempts: cfg.OutboxMaxAttempts,
	}
}

func (r *OutboxRelay) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RelayBatch(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", sl.Err(err))
			}
		}
	}
}

// RelayBatch claims up to batchSize pending events (SKIP LOCKED, so relays on
// several nodes split the work) and reports how many were published.
func (r *OutboxRelay) RelayBatch(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		events, err := tx.Outbox().ClaimPending(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}

		for _, ev := range events {
			if perr := r.publisher.Publish(ctx, ev.AggregateID.String(), ev.EventType, ev.Payload); perr != nil {
				slog.Warn("failed to relay outbox event",
					slog.String("event_id", ev.ID.String()),
					slog.String("event_type", ev.EventType),
					slog.Int("attempts", ev.Attempts+1),
					sl.Err(perr))
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), ev.ID, perr.Error(), r.maxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkSent(ctx, tx.DB(), ev.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.Debug("outbox events relayed", slog.Int("count", sent))
	}
	return sent, nil
}
