package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Vehicle errors
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrIllegalTransition    = errors.New("illegal booking status transition")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// Promo code errors (usage rejections live in domain/promo)
	ErrPromoNotFound  = errors.New("promo code not found")
	ErrPromoCodeTaken = errors.New("promo code already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreUnavailable = errors.New("record store unavailable")
)
