package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"karoca-backend/internal/domain/staff"
	"karoca-backend/internal/handler/api"
	"karoca-backend/internal/handler/middleware"
	"karoca-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth           *api.AuthHandler
	Booking        *api.BookingHandler
	Vehicle        *api.VehicleHandler
	Promo          *api.PromoHandler
	Contact        *api.ContactHandler
	Admin          *api.AdminHandler
	PartnerVehicle *api.PartnerVehicleHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, apiKeyMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/vehicles", Handler: handlers.Vehicle.ListVehicles},
			{Method: http.MethodGet, Path: "/vehicles/:id", Handler: handlers.Vehicle.GetVehicle},
			{Method: http.MethodGet, Path: "/extras", Handler: handlers.Booking.GetExtrasCatalog},
			{Method: http.MethodPost, Path: "/bookings", Handler: handlers.Booking.SubmitBooking},
			{Method: http.MethodGet, Path: "/bookings", Handler: handlers.Booking.GetCustomerBookings},
			{Method: http.MethodPost, Path: "/bookings/quote", Handler: handlers.Booking.PreviewQuote},
			{Method: http.MethodPost, Path: "/promos/validate", Handler: handlers.Promo.ValidatePromoCode},
			{Method: http.MethodPost, Path: "/contact", Handler: handlers.Contact.SubmitMessage},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: handlers.Admin.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: handlers.Admin.GetBooking},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: handlers.Admin.UpdateBookingStatus},
			})

			promoAdmin := admin.Group("")
			promoAdmin.Use(authMiddleware.RequireRoleAtLeast(staff.RoleAdmin))
			addRoutes(promoAdmin, []route{
				{Method: http.MethodPost, Path: "/promos", Handler: handlers.Admin.CreatePromo},
				{Method: http.MethodDelete, Path: "/promos/:id", Handler: handlers.Admin.DeactivatePromo},
			})
		}

		partner := apiGroup.Group("/partner")
		partner.Use(apiKeyMiddleware.RequireAPIKey())
		{
			addRoutes(partner, []route{
				{Method: http.MethodGet, Path: "/vehicles", Handler: handlers.PartnerVehicle.ListVehicles},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
