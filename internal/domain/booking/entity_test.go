//go:build unit

package booking_test

import (
	"testing"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/extras"
	"karoca-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draftCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func newFactory(b *builder.BookingBuilder) *booking.Factory {
	return booking.NewFactory(b.Clock(), booking.NewCatalogPriceCalculator(extras.DefaultCatalog()))
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain(newFactory(b), nil)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Equal(t, "Ivan Horvat", actual.Customer().Name())
		assert.Equal(t, "Zadar Airport", actual.PickupLocation())
		assert.Nil(t, actual.PromoCode())
		assert.Zero(t, actual.DiscountPercent())
	})

	t.Run("draft validation", func(t *testing.T) {
		runDraftCases(t, []draftCase{
			{
				name:   "deposit consent not given",
				mutate: func(b *builder.BookingBuilder) { b.WithoutDeposit() },
				errIs:  booking.ErrDepositNotConfirmed,
			},
			{
				name:   "empty pickup location",
				mutate: func(b *builder.BookingBuilder) { b.WithPickupLocation("   ") },
				errIs:  booking.ErrEmptyPickupLocation,
			},
			{
				name:   "note is optional",
				mutate: func(b *builder.BookingBuilder) { b.WithNote("") },
			},
		})
	})

	t.Run("duplicate extras collapse", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithExtras("gps", "cdw", "gps", "cdw", "gps")
		actual, err := b.BuildDomain(newFactory(b), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"gps", "cdw"}, actual.SelectedExtraIDs())
	})

	t.Run("booking IDs are unique", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		first, err1 := b.BuildDomain(newFactory(b), nil)
		second, err2 := b.BuildDomain(newFactory(b), nil)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{"pending to confirmed", booking.StatusPending, booking.StatusConfirmed, true},
		{"pending to cancelled", booking.StatusPending, booking.StatusCancelled, true},
		{"pending to completed skips confirmation", booking.StatusPending, booking.StatusCompleted, false},
		{"confirmed to completed", booking.StatusConfirmed, booking.StatusCompleted, true},
		{"confirmed to cancelled", booking.StatusConfirmed, booking.StatusCancelled, true},
		{"confirmed back to pending", booking.StatusConfirmed, booking.StatusPending, false},
		{"completed is terminal", booking.StatusCompleted, booking.StatusCancelled, false},
		{"cancelled is terminal", booking.StatusCancelled, booking.StatusPending, false},
		{"cancelled stays cancelled", booking.StatusCancelled, booking.StatusCancelled, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to))
		})
	}

	t.Run("TransitionTo rejects illegal moves", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		entity, err := b.BuildDomain(newFactory(b), nil)
		require.NoError(t, err)

		require.NoError(t, entity.TransitionTo(booking.StatusConfirmed))
		assert.ErrorIs(t, entity.TransitionTo(booking.StatusPending), booking.ErrIllegalTransition)
		require.NoError(t, entity.TransitionTo(booking.StatusCompleted))
		assert.ErrorIs(t, entity.TransitionTo(booking.StatusCancelled), booking.ErrIllegalTransition)
	})
}

func TestNewStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, ok := booking.NewStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, raw, status.String())
	}

	_, ok := booking.NewStatus("archived")
	assert.False(t, ok)
}

func runDraftCases(t *testing.T, cases []draftCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			c.mutate(b)
			actual, err := b.BuildDomain(newFactory(b), nil)
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
