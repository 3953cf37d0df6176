package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDepositNotConfirmed = errors.New("deposit consent not given")
	ErrEmptyPickupLocation = errors.New("pickup location cannot be empty")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrIllegalTransition   = errors.New("illegal status transition")
)

// Booking is the persisted reservation. The total price is fixed at
// creation: changing the dates or extras means a new booking, never an
// update to this one.
type Booking struct {
	id               uuid.UUID
	vehicleID        uuid.UUID
	customer         Customer
	pickupLocation   string
	dates            DateRange
	selectedExtraIDs []string
	note             Note
	promoCode        *string
	discountPercent  int32
	totalPrice       Money
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

func NewBooking(
	vehicleID uuid.UUID,
	customer Customer,
	pickupLocation string,
	dates DateRange,
	selectedExtraIDs []string,
	note Note,
	promoCode *string,
	discountPercent int32,
	totalPrice Money,
	depositConfirmed bool,
) (*Booking, error) {
	if !depositConfirmed {
		return nil, ErrDepositNotConfirmed
	}

	pickupLocation = strings.TrimSpace(pickupLocation)
	if pickupLocation == "" {
		return nil, ErrEmptyPickupLocation
	}

	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:               uuid.New(),
		vehicleID:        vehicleID,
		customer:         customer,
		pickupLocation:   pickupLocation,
		dates:            dates,
		selectedExtraIDs: dedupeExtraIDs(selectedExtraIDs),
		note:             note,
		promoCode:        promoCode,
		discountPercent:  discountPercent,
		totalPrice:       totalPrice,
		status:           StatusPending,
	}, nil
}

func ReconstructBooking(
	id, vehicleID uuid.UUID,
	customer Customer,
	pickupLocation string,
	dates DateRange,
	selectedExtraIDs []string,
	note Note,
	promoCode *string,
	discountPercent int32,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		vehicleID:        vehicleID,
		customer:         customer,
		pickupLocation:   pickupLocation,
		dates:            dates,
		selectedExtraIDs: selectedExtraIDs,
		note:             note,
		promoCode:        promoCode,
		discountPercent:  discountPercent,
		totalPrice:       totalPrice,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// TransitionTo enforces the state machine. Any request away from a
// terminal state is rejected, not silently dropped.
func (b *Booking) TransitionTo(target Status) error {
	if !b.status.CanTransitionTo(target) {
		return ErrIllegalTransition
	}
	b.status = target
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) VehicleID() uuid.UUID       { return b.vehicleID }
func (b *Booking) Customer() Customer         { return b.customer }
func (b *Booking) PickupLocation() string     { return b.pickupLocation }
func (b *Booking) Dates() DateRange           { return b.dates }
func (b *Booking) SelectedExtraIDs() []string { return b.selectedExtraIDs }
func (b *Booking) Note() Note                 { return b.note }
func (b *Booking) PromoCode() *string         { return b.promoCode }
func (b *Booking) DiscountPercent() int32     { return b.discountPercent }
func (b *Booking) TotalPrice() Money          { return b.totalPrice }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

// order-irrelevant, duplicates collapse
func dedupeExtraIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
