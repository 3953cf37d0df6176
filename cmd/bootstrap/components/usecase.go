package components

import (
	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/extras"
	"karoca-backend/internal/pkg/clock"
	"karoca-backend/internal/usecase"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	extras.DefaultCatalog,
	fx.Annotate(
		booking.NewCatalogPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewAdminCommands,
		commands.NewContactCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewVehicleQueries,
		queries.NewPromoQueries,
		queries.NewQuoteQueries,
		queries.NewPartnerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
