package components

import (
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/messaging"
	"closeout-market/internal/usecase/queries"
	"closeout-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseMessagingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ReservationCommands {
			return commands.NewReservationCommands(uow, clk, cfg.Reservation)
		},
		func(uow shared.UnitOfWork, gen shared.CopyGenerator, clk clock.Clock, cfg config.Config) commands.ListingCommands {
			return commands.NewListingCommands(uow, gen, clk, cfg.Collaborators)
		},
		func(uow shared.UnitOfWork, v shared.BusinessVerifier, clk clock.Clock, cfg config.Config) commands.StoreCommands {
			return commands.NewStoreCommands(uow, v, clk, cfg.Collaborators)
		},
		commands.NewChannelCommands,
		commands.NewMessageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(repo queries.ListingReadStore, clk clock.Clock, cfg config.Config) queries.ListingQueries {
			return queries.NewListingQueries(repo, clk, cfg.Listing)
		},
		queries.NewReservationQueries,
		queries.NewChannelQueries,
		queries.NewMessageQueries,
	),
)

var usecaseMessagingModule = fx.Module("usecase/messaging",
	fx.Provide(
		messaging.NewBus,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
