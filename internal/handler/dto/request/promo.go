package request

import "time"

type ValidatePromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreatePromoRequest struct {
	Code            string     `json:"code" binding:"required"`
	DiscountPercent int32      `json:"discount_percent" binding:"required"`
	UsesRemaining   *int32     `json:"uses_remaining,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
}
