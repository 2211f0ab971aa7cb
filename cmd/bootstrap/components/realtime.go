package components

import (
	"context"
	"fmt"
	"log/slog"

	"closeout-market/internal/infra/realtime"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewMessageTransport,
	),
)

func NewMessageTransport(lc fx.Lifecycle, cfg config.Config) (shared.MessageTransport, error) {
	switch cfg.Realtime.Driver {
	case "local":
		slog.Info("using in-process message transport")
		return realtime.NewLocalTransport(cfg.Realtime.BufferSize), nil
	case "redis":
		t := realtime.NewRedisTransport(cfg.Realtime)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return t.Ping(ctx)
			},
			OnStop: func(_ context.Context) error {
				return t.Close()
			},
		})
		return t, nil
	default:
		return nil, fmt.Errorf("unknown REALTIME_DRIVER %q", cfg.Realtime.Driver)
	}
}
