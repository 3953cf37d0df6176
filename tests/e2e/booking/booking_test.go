//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"karoca-backend/internal/handler/dto/request"
	"karoca-backend/internal/handler/dto/response"
	"karoca-backend/tests/common/dbtest"
	"karoca-backend/tests/common/httptest"
	"karoca-backend/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	quoteURL         = "/api/bookings/quote"
	promoValidateURL = "/api/promos/validate"
	contactURL       = "/api/contact"
	vehiclesURL      = "/api/vehicles"
	extrasURL        = "/api/extras"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) submitRequest(vehicleID uuid.UUID) request.SubmitBookingRequest {
	pickup := time.Now().AddDate(0, 0, 14).UTC().Truncate(time.Hour)
	return request.SubmitBookingRequest{
		VehicleID:        vehicleID,
		CustomerName:     "Ivan Horvat",
		CustomerEmail:    "ivan.horvat@example.com",
		CustomerPhone:    "+385911234567",
		PickupLocation:   "Zadar Airport",
		PickupDate:       pickup,
		ReturnDate:       pickup.AddDate(0, 0, 3),
		DepositConfirmed: true,
	}
}

func (s *bookingSuite) TestSubmitBooking() {
	s.Run("creates pending booking and persists it", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		req := s.submitRequest(vehicleID)
		req.ExtraIDs = []string{"cdw", "gps"}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var resp response.SubmitBookingResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		// 3 days x (65.00 + 15.00 + 4.00)
		require.Equal(s.T(), int64(25200), resp.TotalCents)
		require.Equal(s.T(), "pending", resp.Status)

		var status string
		var totalCents int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT status, total_cents FROM bookings WHERE id = $1", resp.ID).Scan(&status, &totalCents)
		require.NoError(s.T(), err)
		require.Equal(s.T(), "pending", status)
		require.Equal(s.T(), int64(25200), totalCents)
	})

	s.Run("applies usable promo code", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		dbtest.CreateTestPromo(s.T(), s.DB, "SUMMER20", 20, true, nil, nil)

		req := s.submitRequest(vehicleID)
		code := " summer20 "
		req.PromoCode = &code

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var resp response.SubmitBookingResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.Equal(s.T(), int32(20), resp.DiscountPercent)
		require.Equal(s.T(), int64(15600), resp.TotalCents)
	})

	s.Run("books at full price with inactive promo", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		dbtest.CreateTestPromo(s.T(), s.DB, "OLDPROMO", 30, false, nil, nil)

		req := s.submitRequest(vehicleID)
		code := "OLDPROMO"
		req.PromoCode = &code

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var resp response.SubmitBookingResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.Zero(s.T(), resp.DiscountPercent)
		require.Equal(s.T(), int64(19500), resp.TotalCents)
	})

	s.Run("rejects draft without deposit consent and writes nothing", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		req := s.submitRequest(vehicleID)
		req.DepositConfirmed = false
		req.CustomerEmail = "not-an-email"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Contains(s.T(), w.Body.String(), "deposit_confirmed")
		require.Contains(s.T(), w.Body.String(), "customer_email")

		var count int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&count)
		require.NoError(s.T(), err)
		require.Zero(s.T(), count)
	})

	s.Run("treats unknown vehicle as violation", func() {
		req := s.submitRequest(uuid.New())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Contains(s.T(), w.Body.String(), "vehicle_id")
	})
}

func (s *bookingSuite) TestListCustomerBookings() {
	s.Run("lists only the given customer's bookings", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)

		first := s.submitRequest(vehicleID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, first, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		other := s.submitRequest(vehicleID)
		other.CustomerEmail = "ana.kovac@example.com"
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, other, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"?email=IVAN.HORVAT@example.com", nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var items []*response.BookingListResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &items)
		require.Len(s.T(), items, 1)
		require.Equal(s.T(), "Opel Corsa", items[0].VehicleName)
	})

	s.Run("requires the email parameter", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *bookingSuite) TestQuotePreview() {
	s.Run("prices without persisting", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)

		pickup := time.Now().AddDate(0, 0, 7).UTC().Truncate(time.Hour)
		req := request.QuoteRequest{
			VehicleID:  vehicleID,
			PickupDate: pickup,
			ReturnDate: pickup.AddDate(0, 0, 2),
			ExtraIDs:   []string{"cdw"},
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, quoteURL, req, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var resp response.QuoteResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.Equal(s.T(), int64(2), resp.Days)
		require.Equal(s.T(), int64(16000), resp.TotalCents)

		var count int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&count)
		require.NoError(s.T(), err)
		require.Zero(s.T(), count)
	})

	s.Run("reports rejected promo reason but still prices", func() {
		vehicleID := dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		expired := time.Now().Add(-24 * time.Hour)
		dbtest.CreateTestPromo(s.T(), s.DB, "EXPIRED1", 20, true, nil, &expired)

		pickup := time.Now().AddDate(0, 0, 7).UTC().Truncate(time.Hour)
		code := "EXPIRED1"
		req := request.QuoteRequest{
			VehicleID:  vehicleID,
			PickupDate: pickup,
			ReturnDate: pickup.AddDate(0, 0, 2),
			PromoCode:  &code,
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, quoteURL, req, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var resp response.QuoteResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.Equal(s.T(), "expired", resp.PromoReason)
		require.Equal(s.T(), int64(13000), resp.TotalCents)
	})
}

func (s *bookingSuite) TestPromoValidation() {
	s.Run("valid code", func() {
		dbtest.CreateTestPromo(s.T(), s.DB, "SUMMER20", 20, true, nil, nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoValidateURL,
			request.ValidatePromoRequest{Code: "summer20"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var resp response.PromoValidationResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.True(s.T(), resp.Valid)
		require.Equal(s.T(), int32(20), resp.DiscountPercent)
	})

	s.Run("unknown code reports not_found", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoValidateURL,
			request.ValidatePromoRequest{Code: "NOPE123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var resp response.PromoValidationResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.False(s.T(), resp.Valid)
		require.Equal(s.T(), "not_found", resp.Reason)
	})

	s.Run("validation does not consume uses", func() {
		one := int32(1)
		dbtest.CreateTestPromo(s.T(), s.DB, "LASTUSE", 10, true, &one, nil)

		for range 3 {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoValidateURL,
				request.ValidatePromoRequest{Code: "LASTUSE"}, "")
			require.Equal(s.T(), http.StatusOK, w.Code)

			var resp response.PromoValidationResponse
			_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
			require.True(s.T(), resp.Valid)
		}

		var usesRemaining int32
		err := s.DB.QueryRow(context.Background(),
			"SELECT uses_remaining FROM promo_codes WHERE code = 'LASTUSE'").Scan(&usesRemaining)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int32(1), usesRemaining)
	})
}

func (s *bookingSuite) TestVehicleCatalog() {
	s.Run("lists available vehicles cheapest first", func() {
		dbtest.CreateTestVehicle(s.T(), s.DB, "VW Golf", "compact", 8000, true)
		dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		dbtest.CreateTestVehicle(s.T(), s.DB, "In Service", "economy", 5000, false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, vehiclesURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var vehicles []*response.VehicleResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &vehicles)
		require.Len(s.T(), vehicles, 2)
		require.Equal(s.T(), "Opel Corsa", vehicles[0].Name)
	})

	s.Run("filters by category", func() {
		dbtest.CreateTestVehicle(s.T(), s.DB, "VW Golf", "compact", 8000, true)
		dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, vehiclesURL+"?category=compact", nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var vehicles []*response.VehicleResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &vehicles)
		require.Len(s.T(), vehicles, 1)
		require.Equal(s.T(), "VW Golf", vehicles[0].Name)
	})

	s.Run("returns extras catalog", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, extrasURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		require.Contains(s.T(), w.Body.String(), "cdw")
	})
}

func (s *bookingSuite) TestContactMessages() {
	s.Run("stores a contact message", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, contactURL,
			request.ContactRequest{
				Name:    "Ana Kovač",
				Email:   "ana.kovac@example.com",
				Message: "Do you deliver to Split?",
			}, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM contact_messages").Scan(&count)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, count)
	})
}
