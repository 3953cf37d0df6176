package api

import (
	"net/http"

	resdto "karoca-backend/internal/handler/dto/response"
	"karoca-backend/internal/handler/middleware"
	"karoca-backend/internal/pkg/clock"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleQueries queries.VehicleQueries
}

func NewVehicleHandler(vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{vehicleQueries: vehicleQueries}
}

// @Summary List available vehicles
// @Description List bookable vehicles, optionally filtered by category
// @Tags vehicles
// @Produce json
// @Param category query string false "Vehicle category"
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var category *string
	if value := c.Query("category"); value != "" {
		category = &value
	}

	views, err := h.vehicleQueries.GetAvailableVehicles(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

// @Summary Get vehicle
// @Description Get a single vehicle by id
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID",
		})
		return
	}

	view, err := h.vehicleQueries.GetVehicle(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// PartnerVehicleHandler serves the API-key protected feed.
type PartnerVehicleHandler struct {
	vehicleQueries queries.VehicleQueries
	clock          clock.Clock
}

func NewPartnerVehicleHandler(vehicleQueries queries.VehicleQueries, clk clock.Clock) *PartnerVehicleHandler {
	return &PartnerVehicleHandler{vehicleQueries: vehicleQueries, clock: clk}
}

// @Summary Partner vehicle feed
// @Description List available vehicles for partner integrations
// @Tags partner
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} resdto.PartnerFeedResponse
// @Failure 401 {object} map[string]string
// @Router /partner/vehicles [get]
func (h *PartnerVehicleHandler) ListVehicles(c *gin.Context) {
	partner, ok := middleware.GetPartner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "API key required",
		})
		return
	}

	views, err := h.vehicleQueries.GetAvailableVehicles(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleViewsForPartner(partner.Name, h.clock.Now(), views))
}
