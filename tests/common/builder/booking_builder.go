//go:build unit || e2e

package builder

import (
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/promo"
	"karoca-backend/internal/domain/vehicle"
	"karoca-backend/internal/pkg/clock"

	"github.com/google/uuid"
)

// BookingBuilder assembles a valid booking draft and lets tests break
// one field at a time.
type BookingBuilder struct {
	vehicleID        uuid.UUID
	vehicleName      string
	vehicleCategory  string
	dailyRateCents   int64
	customerName     string
	customerEmail    string
	customerPhone    string
	pickupLocation   string
	pickupDate       time.Time
	returnDate       time.Time
	extraIDs         []string
	note             string
	depositConfirmed bool
	now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	pickup := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		vehicleID:        uuid.New(),
		vehicleName:      "Opel Corsa",
		vehicleCategory:  "economy",
		dailyRateCents:   6500,
		customerName:     "Ivan Horvat",
		customerEmail:    "ivan.horvat@example.com",
		customerPhone:    "+385911234567",
		pickupLocation:   "Zadar Airport",
		pickupDate:       pickup,
		returnDate:       pickup.AddDate(0, 0, 3),
		extraIDs:         nil,
		depositConfirmed: true,
		now:              pickup.AddDate(0, 0, -14),
	}
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.customerName = name
	return b
}

func (b *BookingBuilder) WithCustomerEmail(email string) *BookingBuilder {
	b.customerEmail = email
	return b
}

func (b *BookingBuilder) WithCustomerPhone(phone string) *BookingBuilder {
	b.customerPhone = phone
	return b
}

func (b *BookingBuilder) WithPickupLocation(location string) *BookingBuilder {
	b.pickupLocation = location
	return b
}

func (b *BookingBuilder) WithDates(pickup, ret time.Time) *BookingBuilder {
	b.pickupDate = pickup
	b.returnDate = ret
	return b
}

func (b *BookingBuilder) WithExtras(ids ...string) *BookingBuilder {
	b.extraIDs = ids
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.note = note
	return b
}

func (b *BookingBuilder) WithDailyRateCents(cents int64) *BookingBuilder {
	b.dailyRateCents = cents
	return b
}

func (b *BookingBuilder) WithoutDeposit() *BookingBuilder {
	b.depositConfirmed = false
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.now = now
	return b
}

func (b *BookingBuilder) BuildVehicle() (*vehicle.Vehicle, error) {
	return vehicle.NewVehicle(b.vehicleID, b.vehicleName, b.vehicleCategory, b.dailyRateCents, true)
}

func (b *BookingBuilder) BuildDraft() (booking.Draft, error) {
	customer, err := booking.NewCustomer(b.customerName, b.customerEmail, b.customerPhone)
	if err != nil {
		return booking.Draft{}, err
	}
	dates, err := booking.NewDateRange(b.pickupDate, b.returnDate)
	if err != nil {
		return booking.Draft{}, err
	}
	return booking.Draft{
		Customer:         customer,
		PickupLocation:   b.pickupLocation,
		Dates:            dates,
		SelectedExtraIDs: b.extraIDs,
		Note:             booking.NewNote(b.note),
		DepositConfirmed: b.depositConfirmed,
	}, nil
}

// BuildDomain runs the full factory path with a fixed clock.
func (b *BookingBuilder) BuildDomain(factory *booking.Factory, promoEntity *promo.PromoCode) (*booking.Booking, error) {
	vehicleEntity, err := b.BuildVehicle()
	if err != nil {
		return nil, err
	}
	draft, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	return factory.CreateBooking(vehicleEntity, draft, promoEntity)
}

func (b *BookingBuilder) Clock() clock.Clock {
	return clock.NewMockClock(b.now)
}
