package booking

import (
	"karoca-backend/internal/domain/extras"
	"karoca-backend/internal/domain/promo"
)

// Quote is the full pricing breakdown for a rental, kept so the API can
// show the running estimate the same way the calculator produced it.
type Quote struct {
	Days              int64
	DailyRateCents    int64
	ExtrasPerDayCents int64
	SubtotalCents     int64
	DiscountPercent   int32
	TotalCents        int64
}

type PriceCalculator interface {
	Calculate(dailyRateCents int64, dates DateRange, selectedExtraIDs []string, discountPercent int32) Quote
}

// CatalogPriceCalculator prices a rental against the static extras
// catalog. Pure computation: inputs are assumed pre-validated by the
// caller (non-negative rate, discount within [0,100]).
type CatalogPriceCalculator struct {
	catalog *extras.Catalog
}

func NewCatalogPriceCalculator(catalog *extras.Catalog) *CatalogPriceCalculator {
	return &CatalogPriceCalculator{catalog: catalog}
}

// Calculate computes (rate + extras per day) x days, then takes the
// discount off the grand subtotal. The discount is applied last, on the
// combined amount: the two orderings agree today only because nothing
// additive sits between them, and fixed fees would break that.
func (pc *CatalogPriceCalculator) Calculate(
	dailyRateCents int64,
	dates DateRange,
	selectedExtraIDs []string,
	discountPercent int32,
) Quote {
	days := dates.Days()
	extrasPerDay := pc.catalog.PricePerDayCents(selectedExtraIDs)
	subtotal := (dailyRateCents + extrasPerDay) * days

	total := subtotal
	if discountPercent > 0 {
		total = promo.DiscountPercent(discountPercent).Apply(subtotal)
	}

	return Quote{
		Days:              days,
		DailyRateCents:    dailyRateCents,
		ExtrasPerDayCents: extrasPerDay,
		SubtotalCents:     subtotal,
		DiscountPercent:   discountPercent,
		TotalCents:        total,
	}
}
