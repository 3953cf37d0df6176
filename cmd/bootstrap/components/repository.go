package components

import (
	"karoca-backend/internal/infra/repository"
	"karoca-backend/internal/usecase"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repository.NewPromoRepository,
			fx.As(new(commands.PromoRepository)),
		),
		fx.Annotate(
			repository.NewContactRepository,
			fx.As(new(commands.ContactRepository)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			repository.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			repository.NewPromoReadStore,
			fx.As(new(queries.PromoReadStore)),
		),
		fx.Annotate(
			repository.NewPartnerReadStore,
			fx.As(new(queries.PartnerReadStore)),
		),
	),
)
