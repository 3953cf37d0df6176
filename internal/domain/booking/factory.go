package booking

import (
	"karoca-backend/internal/domain/promo"
	"karoca-backend/internal/domain/vehicle"
	"karoca-backend/internal/pkg/clock"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// Draft carries the customer-entered fields of a submission after the
// usecase layer has resolved the vehicle and (optionally) the promo code.
type Draft struct {
	Customer         Customer
	PickupLocation   string
	Dates            DateRange
	SelectedExtraIDs []string
	Note             Note
	DepositConfirmed bool
}

// CreateBooking prices the draft against the vehicle's daily rate and
// builds the pending record. A nil promoEntity means no discount; an
// unusable promo is the caller's concern and never reaches here.
func (f *Factory) CreateBooking(
	vehicleEntity *vehicle.Vehicle,
	draft Draft,
	promoEntity *promo.PromoCode,
) (*Booking, error) {
	var discountPercent int32
	var promoCode *string
	if promoEntity != nil {
		if err := promoEntity.ValidateUsage(f.Clock.Now()); err != nil {
			return nil, err
		}
		discountPercent = promoEntity.DiscountPercent().Value()
		code := promoEntity.Code().String()
		promoCode = &code
	}

	quote := f.PriceCalculator.Calculate(
		vehicleEntity.DailyRateCents(),
		draft.Dates,
		draft.SelectedExtraIDs,
		discountPercent,
	)

	totalPrice, err := NewMoneyFromCents(quote.TotalCents)
	if err != nil {
		return nil, err
	}

	return NewBooking(
		vehicleEntity.ID(),
		draft.Customer,
		draft.PickupLocation,
		draft.Dates,
		draft.SelectedExtraIDs,
		draft.Note,
		promoCode,
		discountPercent,
		totalPrice,
		draft.DepositConfirmed,
	)
}
