package queries

import (
	"context"
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/extras"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errs.New("invalid date range")

type QuoteParams struct {
	VehicleID  uuid.UUID
	PickupDate time.Time
	ReturnDate time.Time
	ExtraIDs   []string
	PromoCode  *string
}

type QuoteQueries interface {
	PreviewQuote(ctx context.Context, params QuoteParams) (*QuoteView, error)
	GetExtrasCatalog(ctx context.Context) []*ExtraOptionView
}

type quoteQueriesImpl struct {
	vehicleQueries  VehicleQueries
	promoQueries    PromoQueries
	priceCalculator booking.PriceCalculator
	catalog         *extras.Catalog
}

func NewQuoteQueries(
	vehicleQueries VehicleQueries,
	promoQueries PromoQueries,
	priceCalculator booking.PriceCalculator,
	catalog *extras.Catalog,
) QuoteQueries {
	return &quoteQueriesImpl{
		vehicleQueries:  vehicleQueries,
		promoQueries:    promoQueries,
		priceCalculator: priceCalculator,
		catalog:         catalog,
	}
}

// PreviewQuote prices a prospective rental with the same calculator the
// submission path uses. A rejected promo code does not fail the quote,
// it prices at zero discount and reports the rejection reason.
func (q *quoteQueriesImpl) PreviewQuote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	vehicleView, err := q.vehicleQueries.GetVehicle(ctx, params.VehicleID)
	if err != nil {
		return nil, err
	}

	dates, err := booking.NewDateRange(params.PickupDate, params.ReturnDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var discountPercent int32
	var promoReason string
	if params.PromoCode != nil && *params.PromoCode != "" {
		validation, err := q.promoQueries.ValidatePromoCode(ctx, *params.PromoCode)
		if err != nil {
			return nil, err
		}
		if validation.Valid {
			discountPercent = validation.DiscountPercent
		} else {
			promoReason = validation.Reason
		}
	}

	quote := q.priceCalculator.Calculate(vehicleView.DailyRateCents, dates, params.ExtraIDs, discountPercent)

	return &QuoteView{
		Days:              quote.Days,
		DailyRateCents:    quote.DailyRateCents,
		ExtrasPerDayCents: quote.ExtrasPerDayCents,
		SubtotalCents:     quote.SubtotalCents,
		DiscountPercent:   quote.DiscountPercent,
		TotalCents:        quote.TotalCents,
		PromoReason:       promoReason,
	}, nil
}

func (q *quoteQueriesImpl) GetExtrasCatalog(_ context.Context) []*ExtraOptionView {
	options := q.catalog.All()
	views := make([]*ExtraOptionView, len(options))
	for i, opt := range options {
		views[i] = &ExtraOptionView{
			ID:               opt.ID,
			Name:             opt.Name,
			PricePerDayCents: opt.PricePerDayCents,
			Description:      opt.Description,
		}
	}
	return views
}
