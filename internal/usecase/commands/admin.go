package commands

import (
	"context"
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/promo"
	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreatePromoParams struct {
	Code            string
	DiscountPercent int32
	UsesRemaining   *int32
	ValidUntil      *time.Time
}

type AdminCommands interface {
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, target string) error
	CreatePromo(ctx context.Context, params CreatePromoParams) (uuid.UUID, error)
	DeactivatePromo(ctx context.Context, promoID uuid.UUID) error
}

type adminCommandsImpl struct {
	bookingRepo BookingRepository
	promoRepo   PromoRepository
}

func NewAdminCommands(bookingRepo BookingRepository, promoRepo PromoRepository) AdminCommands {
	return &adminCommandsImpl{
		bookingRepo: bookingRepo,
		promoRepo:   promoRepo,
	}
}

// UpdateBookingStatus loads the booking and runs the requested move
// through the state machine before touching the store, so an illegal
// transition never reaches SQL.
func (c *adminCommandsImpl) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, target string) error {
	status, ok := booking.NewStatus(target)
	if !ok {
		return errs.Mark(errs.Newf("unknown status %q", target), errs.ErrInvalidBookingStatus)
	}

	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := entity.TransitionTo(status); err != nil {
		return errs.Mark(err, errs.ErrIllegalTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, bookingID, entity.Status()); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

func (c *adminCommandsImpl) CreatePromo(ctx context.Context, params CreatePromoParams) (uuid.UUID, error) {
	entity, err := promo.NewPromoCode(
		uuid.New(),
		params.Code,
		params.DiscountPercent,
		true,
		params.UsesRemaining,
		params.ValidUntil,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.promoRepo.Create(ctx, PromoSnapshot{
		ID:              entity.ID(),
		Code:            entity.Code().String(),
		DiscountPercent: entity.DiscountPercent().Value(),
		Active:          entity.IsActive(),
		UsesRemaining:   entity.UsesRemaining(),
		ValidUntil:      entity.ValidUntil(),
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrPromoCodeTaken)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return id, nil
}

func (c *adminCommandsImpl) DeactivatePromo(ctx context.Context, promoID uuid.UUID) error {
	if err := c.promoRepo.Deactivate(ctx, promoID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPromoNotFound
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}
