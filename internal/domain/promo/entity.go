package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPromoInactive  = errors.New("promo code is inactive")
	ErrPromoExpired   = errors.New("promo code has expired")
	ErrPromoExhausted = errors.New("promo code has no uses remaining")
)

// PromoCode is read-only to the booking core. Administrators create and
// deactivate codes; validation never mutates usesRemaining, so a
// limited-use code behaves as unlimited until deactivated by hand.
type PromoCode struct {
	id              uuid.UUID
	code            Code
	discountPercent DiscountPercent
	active          bool
	usesRemaining   *int32
	validUntil      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPromoCode(
	id uuid.UUID,
	code string,
	discountPercent int32,
	active bool,
	usesRemaining *int32,
	validUntil *time.Time,
) (*PromoCode, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscountPercent(discountPercent)
	if err != nil {
		return nil, err
	}

	return &PromoCode{
		id:              id,
		code:            promoCode,
		discountPercent: discount,
		active:          active,
		usesRemaining:   usesRemaining,
		validUntil:      validUntil,
	}, nil
}

// ValidateUsage checks the usability gates in a fixed order: the active
// flag wins over expiry, expiry over exhaustion.
func (p *PromoCode) ValidateUsage(now time.Time) error {
	if !p.active {
		return ErrPromoInactive
	}
	if p.validUntil != nil && now.After(*p.validUntil) {
		return ErrPromoExpired
	}
	if p.usesRemaining != nil && *p.usesRemaining <= 0 {
		return ErrPromoExhausted
	}
	return nil
}

func (p *PromoCode) IsUsableAt(now time.Time) bool {
	return p.ValidateUsage(now) == nil
}

func (p *PromoCode) ID() uuid.UUID                    { return p.id }
func (p *PromoCode) Code() Code                       { return p.code }
func (p *PromoCode) DiscountPercent() DiscountPercent { return p.discountPercent }
func (p *PromoCode) IsActive() bool                   { return p.active }
func (p *PromoCode) UsesRemaining() *int32            { return p.usesRemaining }
func (p *PromoCode) ValidUntil() *time.Time           { return p.validUntil }
func (p *PromoCode) CreatedAt() time.Time             { return p.createdAt }
func (p *PromoCode) UpdatedAt() time.Time             { return p.updatedAt }
