package worker

import (
	"context"
	"log/slog"
	"time"

	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"
)

// IdempotencySweeper deletes attempt keys past their expiry.
type IdempotencySweeper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	interval time.Duration
}

func NewIdempotencySweeper(uow shared.UnitOfWork, clk clock.Clock, interval time.Duration) *IdempotencySweeper {
	return &IdempotencySweeper{uow: uow, clock: clk, interval: interval}
}

func (s *IdempotencySweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				slog.Error("idempotency sweep failed", sl.Err(err))
			}
		}
	}
}

func (s *IdempotencySweeper) Sweep(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), s.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		slog.Info("expired idempotency keys removed", slog.Int64("count", deleted))
	}
	return deleted, nil
}
