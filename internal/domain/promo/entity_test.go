//go:build unit

package promo_test

import (
	"testing"
	"time"

	"karoca-backend/internal/domain/promo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func newPromo(t *testing.T, active bool, usesRemaining *int32, validUntil *time.Time) *promo.PromoCode {
	t.Helper()
	entity, err := promo.NewPromoCode(uuid.New(), "SUMMER20", 20, active, usesRemaining, validUntil)
	require.NoError(t, err)
	return entity
}

func TestNewPromoCode(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		entity := newPromo(t, true, nil, nil)
		assert.Equal(t, "SUMMER20", entity.Code().String())
		assert.Equal(t, int32(20), entity.DiscountPercent().Value())
	})

	t.Run("code is normalized before validation", func(t *testing.T) {
		entity, err := promo.NewPromoCode(uuid.New(), "  abc10  ", 10, true, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "ABC10", entity.Code().String())
	})

	t.Run("malformed codes rejected", func(t *testing.T) {
		for _, code := range []string{"", "AB", "with spaces", "lower-dash", "WAYTOOLONGFORAPROMOCODE"} {
			_, err := promo.NewPromoCode(uuid.New(), code, 10, true, nil, nil)
			assert.ErrorIs(t, err, promo.ErrInvalidPromoCode, "code %q", code)
		}
	})

	t.Run("discount bounds", func(t *testing.T) {
		_, err := promo.NewPromoCode(uuid.New(), "SUMMER20", -1, true, nil, nil)
		assert.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)

		_, err = promo.NewPromoCode(uuid.New(), "SUMMER20", 101, true, nil, nil)
		assert.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)

		_, err = promo.NewPromoCode(uuid.New(), "SUMMER20", 0, true, nil, nil)
		assert.NoError(t, err)

		_, err = promo.NewPromoCode(uuid.New(), "SUMMER20", 100, true, nil, nil)
		assert.NoError(t, err)
	})
}

func TestValidateUsage(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("usable promo", func(t *testing.T) {
		entity := newPromo(t, true, int32Ptr(5), &future)
		assert.NoError(t, entity.ValidateUsage(now))
		assert.True(t, entity.IsUsableAt(now))
	})

	t.Run("nil limits mean unlimited", func(t *testing.T) {
		entity := newPromo(t, true, nil, nil)
		assert.NoError(t, entity.ValidateUsage(now))
	})

	t.Run("inactive", func(t *testing.T) {
		entity := newPromo(t, false, nil, nil)
		assert.ErrorIs(t, entity.ValidateUsage(now), promo.ErrPromoInactive)
	})

	t.Run("expired", func(t *testing.T) {
		entity := newPromo(t, true, nil, &past)
		assert.ErrorIs(t, entity.ValidateUsage(now), promo.ErrPromoExpired)
	})

	t.Run("valid exactly at expiry instant", func(t *testing.T) {
		entity := newPromo(t, true, nil, &now)
		assert.NoError(t, entity.ValidateUsage(now))
	})

	t.Run("exhausted", func(t *testing.T) {
		entity := newPromo(t, true, int32Ptr(0), nil)
		assert.ErrorIs(t, entity.ValidateUsage(now), promo.ErrPromoExhausted)
	})

	t.Run("inactive wins over expired and exhausted", func(t *testing.T) {
		entity := newPromo(t, false, int32Ptr(0), &past)
		assert.ErrorIs(t, entity.ValidateUsage(now), promo.ErrPromoInactive)
	})

	t.Run("expired wins over exhausted", func(t *testing.T) {
		entity := newPromo(t, true, int32Ptr(0), &past)
		assert.ErrorIs(t, entity.ValidateUsage(now), promo.ErrPromoExpired)
	})
}

func TestDiscountApply(t *testing.T) {
	cases := []struct {
		name     string
		percent  int32
		amount   int64
		expected int64
	}{
		{"zero percent keeps amount", 0, 10000, 10000},
		{"twenty percent", 20, 24000, 19200},
		{"truncates toward zero", 33, 9999, 6699},
		{"hundred percent", 100, 10000, 0},
		{"zero amount", 50, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, promo.DiscountPercent(c.percent).Apply(c.amount))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ABC10", promo.Normalize(" abc10 "))
	assert.Equal(t, "SUMMER20", promo.Normalize("summer20"))
}
