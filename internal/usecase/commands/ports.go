package commands

import (
	"context"
	"time"

	"karoca-backend/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type VehicleSnapshot struct {
	ID             uuid.UUID
	Name           string
	Category       string
	DailyRateCents int64
	Available      bool
}

type PromoSnapshot struct {
	ID              uuid.UUID
	Code            string
	DiscountPercent int32
	Active          bool
	UsesRemaining   *int32
	ValidUntil      *time.Time
}

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
}

type PromoRepository interface {
	FindByCode(ctx context.Context, normalizedCode string) (*PromoSnapshot, error)
	Create(ctx context.Context, p PromoSnapshot) (uuid.UUID, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	Insert(ctx context.Context, name, email, message string) (uuid.UUID, error)
}

// ConfirmationEmail is everything the customer-facing confirmation
// needs; the dispatcher formats it, this layer only gathers it.
type ConfirmationEmail struct {
	CustomerName   string
	CustomerEmail  string
	VehicleName    string
	PickupDate     time.Time
	ReturnDate     time.Time
	PickupLocation string
	TotalCents     int64
	SelectedExtras []string
}

// Mailer is best-effort by contract: implementations report errors, the
// booking path logs and swallows them.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, email ConfirmationEmail) error
}
