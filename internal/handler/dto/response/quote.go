package response

import (
	"karoca-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	Days              int64  `json:"days"`
	DailyRateCents    int64  `json:"dailyRateCents"`
	ExtrasPerDayCents int64  `json:"extrasPerDayCents"`
	SubtotalCents     int64  `json:"subtotalCents"`
	DiscountPercent   int32  `json:"discountPercent"`
	TotalCents        int64  `json:"totalCents"`
	PromoReason       string `json:"promoReason,omitempty"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type PromoValidationResponse struct {
	Valid           bool   `json:"valid"`
	DiscountPercent int32  `json:"discountPercent"`
	Reason          string `json:"reason,omitempty"`
}

func FromPromoValidationView(view *queries.PromoValidationView) *PromoValidationResponse {
	var resp PromoValidationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type ExtraOptionResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PricePerDayCents int64  `json:"pricePerDayCents"`
	Description      string `json:"description"`
}

func FromExtraOptionViews(views []*queries.ExtraOptionView) []*ExtraOptionResponse {
	responses := make([]*ExtraOptionResponse, 0, len(views))
	for _, view := range views {
		var resp ExtraOptionResponse
		_ = copier.Copy(&resp, view)
		responses = append(responses, &resp)
	}
	return responses
}
