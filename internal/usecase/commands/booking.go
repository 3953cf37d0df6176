package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/extras"
	"karoca-backend/internal/domain/promo"
	"karoca-backend/internal/domain/vehicle"
	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubmitBookingParams struct {
	VehicleID        uuid.UUID
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	PickupLocation   string
	PickupDate       time.Time
	ReturnDate       time.Time
	ExtraIDs         []string
	Note             *string
	PromoCode        *string
	DepositConfirmed bool
}

type SubmitBookingResult struct {
	BookingID       uuid.UUID
	TotalCents      int64
	DiscountPercent int32
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, params SubmitBookingParams) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	vehicleRepo    VehicleRepository
	promoRepo      PromoRepository
	bookingFactory *booking.Factory
	catalog        *extras.Catalog
	mailer         Mailer
	logger         *slog.Logger
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	promoRepo PromoRepository,
	bookingFactory *booking.Factory,
	catalog *extras.Catalog,
	mailer Mailer,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		vehicleRepo:    vehicleRepo,
		promoRepo:      promoRepo,
		bookingFactory: bookingFactory,
		catalog:        catalog,
		mailer:         mailer,
		logger:         logger,
	}
}

// SubmitBooking validates the whole draft, prices it, persists the
// pending record, then dispatches the confirmation email exactly once,
// strictly after the insert returned. No write happens while any
// violation is outstanding, and no email is sent for a failed write.
func (c *bookingCommandsImpl) SubmitBooking(ctx context.Context, params SubmitBookingParams) (*SubmitBookingResult, error) {
	vehicleSnap, verr := c.resolveVehicle(ctx, params.VehicleID)
	if verr != nil && errs.Is(verr, errs.ErrStoreUnavailable) {
		return nil, verr
	}

	validation := &ValidationError{}
	if verr != nil {
		validation.Add("vehicle_id", verr.Error())
	}

	customer, draft := c.validateDraft(params, validation)
	if validation.HasViolations() {
		return nil, validation
	}

	vehicleEntity, err := vehicle.NewVehicle(
		vehicleSnap.ID,
		vehicleSnap.Name,
		vehicleSnap.Category,
		vehicleSnap.DailyRateCents,
		vehicleSnap.Available,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// An unusable promo never blocks the booking, it books at zero discount.
	promoEntity := c.resolvePromo(ctx, params.PromoCode)

	draft.Customer = customer
	bookingEntity, err := c.bookingFactory.CreateBooking(vehicleEntity, draft, promoEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	bookingID, err := c.bookingRepo.Insert(ctx, bookingEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	c.dispatchConfirmation(ctx, bookingEntity, vehicleEntity.Name())

	return &SubmitBookingResult{
		BookingID:       bookingID,
		TotalCents:      bookingEntity.TotalPrice().Cents(),
		DiscountPercent: bookingEntity.DiscountPercent(),
	}, nil
}

func (c *bookingCommandsImpl) resolveVehicle(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error) {
	if id == uuid.Nil {
		return nil, errs.New("vehicle is required")
	}

	snap, err := c.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return snap, nil
}

// validateDraft collects every field violation in one pass so the
// caller gets the full list, not just the first failure.
func (c *bookingCommandsImpl) validateDraft(params SubmitBookingParams, validation *ValidationError) (booking.Customer, booking.Draft) {
	if strings.TrimSpace(params.CustomerName) == "" {
		validation.Add("customer_name", "name is required")
	}
	if !booking.IsValidEmail(params.CustomerEmail) {
		validation.Add("customer_email", "a valid email address is required")
	}
	if strings.TrimSpace(params.CustomerPhone) == "" {
		validation.Add("customer_phone", "phone number is required")
	}

	var customer booking.Customer
	if c, err := booking.NewCustomer(params.CustomerName, params.CustomerEmail, params.CustomerPhone); err == nil {
		customer = c
	}

	dates, err := booking.NewDateRange(params.PickupDate, params.ReturnDate)
	if err != nil {
		switch err {
		case booking.ErrMissingDates:
			validation.Add("dates", "pickup and return dates are required")
		case booking.ErrReturnBeforePickup:
			validation.Add("return_date", "return date cannot be before pickup date")
		}
	}

	if params.PickupLocation == "" {
		validation.Add("pickup_location", "pickup location is required")
	}

	// Hard gate: everything else being valid never overrides missing consent.
	if !params.DepositConfirmed {
		validation.Add("deposit_confirmed", "deposit consent is required")
	}

	note := booking.NewNote("")
	if params.Note != nil {
		note = booking.NewNote(*params.Note)
	}

	return customer, booking.Draft{
		PickupLocation:   params.PickupLocation,
		Dates:            dates,
		SelectedExtraIDs: params.ExtraIDs,
		Note:             note,
		DepositConfirmed: params.DepositConfirmed,
	}
}

func (c *bookingCommandsImpl) resolvePromo(ctx context.Context, code *string) *promo.PromoCode {
	if code == nil || *code == "" {
		return nil
	}

	snap, err := c.promoRepo.FindByCode(ctx, promo.Normalize(*code))
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			c.logger.Warn("promo lookup failed during submission", "error", err.Error())
		}
		return nil
	}

	entity, err := promo.NewPromoCode(
		snap.ID,
		snap.Code,
		snap.DiscountPercent,
		snap.Active,
		snap.UsesRemaining,
		snap.ValidUntil,
	)
	if err != nil {
		c.logger.Warn("stored promo code is malformed", "code", snap.Code, "error", err.Error())
		return nil
	}

	if !entity.IsUsableAt(c.bookingFactory.Clock.Now()) {
		return nil
	}
	return entity
}

// dispatchConfirmation is fire-and-forget: the booking is already
// durable and its result is already decided, so a mail failure is
// logged and contained. The goroutine starts only after Insert
// returned, which is the ordering the confirmation content relies on.
func (c *bookingCommandsImpl) dispatchConfirmation(ctx context.Context, b *booking.Booking, vehicleName string) {
	email := ConfirmationEmail{
		CustomerName:   b.Customer().Name(),
		CustomerEmail:  b.Customer().Email(),
		VehicleName:    vehicleName,
		PickupDate:     b.Dates().Pickup(),
		ReturnDate:     b.Dates().Return(),
		PickupLocation: b.PickupLocation(),
		TotalCents:     b.TotalPrice().Cents(),
		SelectedExtras: c.catalog.Names(b.SelectedExtraIDs()),
	}

	sendCtx := context.WithoutCancel(ctx)
	go func() {
		if err := c.mailer.SendBookingConfirmation(sendCtx, email); err != nil {
			c.logger.Error("booking confirmation email failed",
				"booking_id", b.ID().String(),
				"customer_email", email.CustomerEmail,
				"error", err.Error(),
			)
		}
	}()
}
