package request

import (
	"strings"
	"time"

	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	VehicleID        uuid.UUID `json:"vehicle_id" binding:"required"`
	CustomerName     string    `json:"customer_name" binding:"required"`
	CustomerEmail    string    `json:"customer_email" binding:"required"`
	CustomerPhone    string    `json:"customer_phone" binding:"required"`
	PickupLocation   string    `json:"pickup_location" binding:"required"`
	PickupDate       time.Time `json:"pickup_date" binding:"required"`
	ReturnDate       time.Time `json:"return_date" binding:"required"`
	ExtraIDs         []string  `json:"extra_ids"`
	Note             *string   `json:"note,omitempty"`
	PromoCode        *string   `json:"promo_code,omitempty"`
	DepositConfirmed bool      `json:"deposit_confirmed"`
}

func (r SubmitBookingRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r SubmitBookingRequest) ToParams() commands.SubmitBookingParams {
	return commands.SubmitBookingParams{
		VehicleID:        r.VehicleID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		PickupLocation:   r.PickupLocation,
		PickupDate:       r.PickupDate,
		ReturnDate:       r.ReturnDate,
		ExtraIDs:         r.ExtraIDs,
		Note:             r.Note,
		PromoCode:        r.GetPromoCode(),
		DepositConfirmed: r.DepositConfirmed,
	}
}

type QuoteRequest struct {
	VehicleID  uuid.UUID `json:"vehicle_id" binding:"required"`
	PickupDate time.Time `json:"pickup_date" binding:"required"`
	ReturnDate time.Time `json:"return_date" binding:"required"`
	ExtraIDs   []string  `json:"extra_ids"`
	PromoCode  *string   `json:"promo_code,omitempty"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	var code *string
	if r.PromoCode != nil {
		trimmed := strings.TrimSpace(*r.PromoCode)
		if trimmed != "" {
			code = &trimmed
		}
	}
	return queries.QuoteParams{
		VehicleID:  r.VehicleID,
		PickupDate: r.PickupDate,
		ReturnDate: r.ReturnDate,
		ExtraIDs:   r.ExtraIDs,
		PromoCode:  code,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
