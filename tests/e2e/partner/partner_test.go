//go:build e2e

package partner_test

import (
	"net/http"
	"testing"

	"karoca-backend/internal/handler/dto/response"
	"karoca-backend/tests/common/dbtest"
	"karoca-backend/tests/common/httptest"
	"karoca-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const partnerVehiclesURL = "/api/partner/vehicles"

type partnerSuite struct {
	e2e.SharedSuite
}

func TestPartnerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(partnerSuite))
}

func (s *partnerSuite) TestVehicleFeed() {
	s.Run("serves the reduced feed with a valid key", func() {
		dbtest.CreateTestPartnerKey(s.T(), s.DB, "Zadar Tours", "pk_live_zadartours", true)
		dbtest.CreateTestVehicle(s.T(), s.DB, "Opel Corsa", "economy", 6500, true)
		dbtest.CreateTestVehicle(s.T(), s.DB, "Hidden", "economy", 5000, false)

		w := httptest.PerformRequestWithAPIKey(s.T(), s.Router, http.MethodGet, partnerVehiclesURL, nil, "pk_live_zadartours")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var feed response.PartnerFeedResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &feed)
		require.Equal(s.T(), "Zadar Tours", feed.Partner)
		require.Equal(s.T(), 1, feed.Count)
		require.Len(s.T(), feed.Vehicles, 1)
		require.Equal(s.T(), "Opel Corsa", feed.Vehicles[0].Name)
		require.Equal(s.T(), int64(6500), feed.Vehicles[0].DailyRateCents)
		require.NotContains(s.T(), w.Body.String(), "createdAt")
	})

	s.Run("rejects a missing key", func() {
		w := httptest.PerformRequestWithAPIKey(s.T(), s.Router, http.MethodGet, partnerVehiclesURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects an unknown key", func() {
		w := httptest.PerformRequestWithAPIKey(s.T(), s.Router, http.MethodGet, partnerVehiclesURL, nil, "pk_live_bogus")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects a revoked key", func() {
		dbtest.CreateTestPartnerKey(s.T(), s.DB, "Zadar Tours", "pk_live_revoked", false)

		w := httptest.PerformRequestWithAPIKey(s.T(), s.Router, http.MethodGet, partnerVehiclesURL, nil, "pk_live_revoked")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
