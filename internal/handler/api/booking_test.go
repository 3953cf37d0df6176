//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"karoca-backend/internal/handler/api"
	"karoca-backend/internal/handler/dto/request"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"
	"karoca-backend/tests/common/httptest"
	commandsmock "karoca-backend/tests/mock/commands"
	queriesmock "karoca-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockBookingCommands
	mockQueries    *queriesmock.MockBookingQueries
	mockQuoteQries *queriesmock.MockQuoteQueries
	handler        *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockQuoteQries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockQuoteQries)

	s.router.POST("/bookings", s.handler.SubmitBooking)
	s.router.POST("/bookings/quote", s.handler.PreviewQuote)
	s.router.GET("/bookings", s.handler.GetCustomerBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) submitRequest() request.SubmitBookingRequest {
	pickup := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	return request.SubmitBookingRequest{
		VehicleID:        uuid.New(),
		CustomerName:     "Ivan Horvat",
		CustomerEmail:    "ivan.horvat@example.com",
		CustomerPhone:    "+385911234567",
		PickupLocation:   "Zadar Airport",
		PickupDate:       pickup,
		ReturnDate:       pickup.AddDate(0, 0, 3),
		DepositConfirmed: true,
	}
}

func (s *BookingHandlerTestSuite) TestSubmitBooking_Created() {
	bookingID := uuid.New()
	s.mockCommands.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		Return(&commands.SubmitBookingResult{BookingID: bookingID, TotalCents: 19500}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.submitRequest(), "")

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), bookingID.String())
	s.Contains(w.Body.String(), `"status":"pending"`)
}

func (s *BookingHandlerTestSuite) TestSubmitBooking_MalformedBody() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", gin.H{"vehicle_id": "not-a-uuid"}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestSubmitBooking_ValidationViolations() {
	validation := &commands.ValidationError{}
	validation.Add("deposit_confirmed", "deposit consent is required")
	validation.Add("customer_email", "a valid email address is required")

	s.mockCommands.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		Return(nil, validation)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.submitRequest(), "")

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), "deposit_confirmed")
	s.Contains(w.Body.String(), "customer_email")
}

func (s *BookingHandlerTestSuite) TestSubmitBooking_StoreUnavailable() {
	s.mockCommands.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("insert failed"), errs.ErrStoreUnavailable))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.submitRequest(), "")

	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *BookingHandlerTestSuite) TestPreviewQuote_OK() {
	s.mockQuoteQries.EXPECT().
		PreviewQuote(gomock.Any(), gomock.Any()).
		Return(&queries.QuoteView{Days: 3, DailyRateCents: 6500, SubtotalCents: 19500, TotalCents: 19500}, nil)

	pickup := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	req := request.QuoteRequest{
		VehicleID:  uuid.New(),
		PickupDate: pickup,
		ReturnDate: pickup.AddDate(0, 0, 3),
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/quote", req, "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"totalCents":19500`)
}

func (s *BookingHandlerTestSuite) TestPreviewQuote_VehicleNotFound() {
	s.mockQuoteQries.EXPECT().
		PreviewQuote(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrVehicleNotFound)

	pickup := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	req := request.QuoteRequest{
		VehicleID:  uuid.New(),
		PickupDate: pickup,
		ReturnDate: pickup.AddDate(0, 0, 3),
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/quote", req, "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BookingHandlerTestSuite) TestPreviewQuote_InvalidDates() {
	s.mockQuoteQries.EXPECT().
		PreviewQuote(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("return before pickup"), queries.ErrInvalidDateRange))

	pickup := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	req := request.QuoteRequest{
		VehicleID:  uuid.New(),
		PickupDate: pickup,
		ReturnDate: pickup.AddDate(0, 0, 1),
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/quote", req, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetCustomerBookings_RequiresEmail() {
	s.mockQueries.EXPECT().
		GetCustomerBookings(gomock.Any(), "").
		Return(nil, queries.ErrEmailRequired)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetCustomerBookings_OK() {
	items := []*queries.BookingListItem{
		{
			ID:          uuid.New(),
			VehicleID:   uuid.New(),
			VehicleName: "Opel Corsa",
			Status:      "pending",
			TotalCents:  19500,
		},
	}
	s.mockQueries.EXPECT().
		GetCustomerBookings(gomock.Any(), "ivan.horvat@example.com").
		Return(items, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=ivan.horvat@example.com", nil, "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Opel Corsa")
}
