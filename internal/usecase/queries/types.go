package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	PickupLocation  string    `json:"pickup_location"`
	PickupDate      time.Time `json:"pickup_date"`
	ReturnDate      time.Time `json:"return_date"`
	SelectedExtras  []string  `json:"selected_extras"`
	Note            *string   `json:"note,omitempty"`
	PromoCode       *string   `json:"promo_code,omitempty"`
	DiscountPercent int32     `json:"discount_percent"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	PickupDate  time.Time `json:"pickup_date"`
	ReturnDate  time.Time `json:"return_date"`
	TotalCents  int64     `json:"total_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type VehicleView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PromoValidationView struct {
	Valid           bool   `json:"valid"`
	DiscountPercent int32  `json:"discount_percent"`
	Reason          string `json:"reason,omitempty"`
}

// Rejection reasons surfaced by promo validation
const (
	PromoReasonNotFound  = "not_found"
	PromoReasonInactive  = "inactive"
	PromoReasonExpired   = "expired"
	PromoReasonExhausted = "exhausted"
)

type QuoteView struct {
	Days              int64  `json:"days"`
	DailyRateCents    int64  `json:"daily_rate_cents"`
	ExtrasPerDayCents int64  `json:"extras_per_day_cents"`
	SubtotalCents     int64  `json:"subtotal_cents"`
	DiscountPercent   int32  `json:"discount_percent"`
	TotalCents        int64  `json:"total_cents"`
	PromoReason       string `json:"promo_reason,omitempty"`
}

type ExtraOptionView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	Description      string `json:"description"`
}

type AuthorizedStaffView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type PartnerView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
