package api

import (
	"errors"
	"net/http"

	reqdto "karoca-backend/internal/handler/dto/request"
	resdto "karoca-backend/internal/handler/dto/response"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	quoteQueries    queries.QuoteQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	quoteQueries queries.QuoteQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		quoteQueries:    quoteQueries,
	}
}

// @Summary Submit booking
// @Description Submit a new booking request
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} resdto.SubmitBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.SubmitBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		var validationErr *commands.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "Validation failed",
				"violations": validationErr.Violations,
			})
		case errs.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable, please try again",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking could not be created from the given data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Preview quote
// @Description Price a prospective booking without persisting anything
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) PreviewQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteQueries.PreviewQuote(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errs.Is(err, queries.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errs.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List own bookings
// @Description List bookings made with the given customer email
// @Tags bookings
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetCustomerBookings(c *gin.Context) {
	email := c.Query("email")

	items, err := h.bookingQueries.GetCustomerBookings(c.Request.Context(), email)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email query parameter is required",
			})
		case errs.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Get extras catalog
// @Description List bookable extra options and their per-day prices
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.ExtraOptionResponse
// @Router /extras [get]
func (h *BookingHandler) GetExtrasCatalog(c *gin.Context) {
	views := h.quoteQueries.GetExtrasCatalog(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromExtraOptionViews(views))
}
