package components

import (
	"context"
	"sync"

	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/shared"
	"closeout-market/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(uow shared.UnitOfWork, pub shared.EventPublisher, cfg config.Config) *worker.OutboxRelay {
			return worker.NewOutboxRelay(uow, pub, cfg.Worker)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *worker.IdempotencySweeper {
			return worker.NewIdempotencySweeper(uow, clk, cfg.Worker.IdempotencyInterval)
		},
	),
	fx.Invoke(startWorkers),
)

func startWorkers(lc fx.Lifecycle, relay *worker.OutboxRelay, sweeper *worker.IdempotencySweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				relay.Start(ctx)
			}()
			go func() {
				defer wg.Done()
				sweeper.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
