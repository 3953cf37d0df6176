package components

import (
	"karoca-backend/internal/handler"
	"karoca-backend/internal/handler/api"
	"karoca-backend/internal/handler/middleware"
	"karoca-backend/internal/pkg/config"
	"karoca-backend/internal/pkg/jwt"
	"karoca-backend/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewBookingHandler,
		api.NewVehicleHandler,
		api.NewPromoHandler,
		api.NewContactHandler,
		api.NewAdminHandler,
		api.NewPartnerVehicleHandler,
		middleware.NewAuthMiddleware,
		middleware.NewAPIKeyMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, jwtService, cfg.Cookie)
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	vehicle *api.VehicleHandler,
	promo *api.PromoHandler,
	contact *api.ContactHandler,
	admin *api.AdminHandler,
	partnerVehicle *api.PartnerVehicleHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:           auth,
		Booking:        booking,
		Vehicle:        vehicle,
		Promo:          promo,
		Contact:        contact,
		Admin:          admin,
		PartnerVehicle: partnerVehicle,
	}
}
