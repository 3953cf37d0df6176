//go:build unit

package booking_test

import (
	"testing"
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/extras"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, pickup time.Time, d time.Duration) booking.DateRange {
	t.Helper()
	dates, err := booking.NewDateRange(pickup, pickup.Add(d))
	require.NoError(t, err)
	return dates
}

func TestCatalogPriceCalculator(t *testing.T) {
	calc := booking.NewCatalogPriceCalculator(extras.DefaultCatalog())
	pickup := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	t.Run("three days with full insurance", func(t *testing.T) {
		// 65.00/day vehicle plus 15.00/day CDW over 3 days
		quote := calc.Calculate(6500, mustRange(t, pickup, 72*time.Hour), []string{"cdw"}, 0)

		assert.Equal(t, int64(3), quote.Days)
		assert.Equal(t, int64(6500), quote.DailyRateCents)
		assert.Equal(t, int64(1500), quote.ExtrasPerDayCents)
		assert.Equal(t, int64(24000), quote.SubtotalCents)
		assert.Equal(t, int64(24000), quote.TotalCents)
	})

	t.Run("twenty percent discount off the combined subtotal", func(t *testing.T) {
		quote := calc.Calculate(6500, mustRange(t, pickup, 72*time.Hour), []string{"cdw"}, 20)

		assert.Equal(t, int64(24000), quote.SubtotalCents)
		assert.Equal(t, int32(20), quote.DiscountPercent)
		assert.Equal(t, int64(19200), quote.TotalCents)
	})

	t.Run("same day rental charges one full day", func(t *testing.T) {
		quote := calc.Calculate(6500, mustRange(t, pickup, 0), nil, 0)

		assert.Equal(t, int64(1), quote.Days)
		assert.Equal(t, int64(6500), quote.TotalCents)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		quote := calc.Calculate(6500, mustRange(t, pickup, 49*time.Hour), nil, 0)

		assert.Equal(t, int64(3), quote.Days)
		assert.Equal(t, int64(19500), quote.TotalCents)
	})

	t.Run("unknown extra ids are skipped", func(t *testing.T) {
		quote := calc.Calculate(6500, mustRange(t, pickup, 24*time.Hour), []string{"jetpack", "gps"}, 0)

		assert.Equal(t, int64(400), quote.ExtrasPerDayCents)
		assert.Equal(t, int64(6900), quote.TotalCents)
	})

	t.Run("discount truncates toward zero", func(t *testing.T) {
		// 33% off 9999 is 6699.33, kept as whole cents
		quote := calc.Calculate(9999, mustRange(t, pickup, 24*time.Hour), nil, 33)

		assert.Equal(t, int64(6699), quote.TotalCents)
	})

	t.Run("full discount prices to zero", func(t *testing.T) {
		quote := calc.Calculate(6500, mustRange(t, pickup, 24*time.Hour), []string{"cdw"}, 100)

		assert.Equal(t, int64(0), quote.TotalCents)
	})

	t.Run("multiple extras accumulate per day", func(t *testing.T) {
		quote := calc.Calculate(6500, mustRange(t, pickup, 48*time.Hour), []string{"cdw", "gps", "child_seat"}, 0)

		assert.Equal(t, int64(2400), quote.ExtrasPerDayCents)
		assert.Equal(t, int64(17800), quote.TotalCents)
	})
}
