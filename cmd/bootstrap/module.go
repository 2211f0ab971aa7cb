package bootstrap

import (
	"closeout-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.RealtimeModule,
	components.BrokerModule,
	components.CollabModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
