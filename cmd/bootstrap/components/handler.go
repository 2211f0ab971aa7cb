package components

import (
	"closeout-market/internal/handler"
	"closeout-market/internal/handler/api"
	"closeout-market/internal/handler/middleware"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/messaging"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewStoreHandler,
		api.NewReservationHandler,
		api.NewChannelHandler,
		func(bus *messaging.Bus, cfg config.Config) *api.StreamHandler {
			return api.NewStreamHandler(bus, cfg.CORS)
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
