package queries

import (
	"context"
	"errors"
	"time"

	"karoca-backend/internal/domain/promo"
	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/clock"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// PromoRecord is the raw stored shape of a promo code on the read side.
type PromoRecord struct {
	ID              uuid.UUID
	Code            string
	DiscountPercent int32
	Active          bool
	UsesRemaining   *int32
	ValidUntil      *time.Time
}

type PromoReadStore interface {
	FindByCode(ctx context.Context, normalizedCode string) (*PromoRecord, error)
}

type PromoQueries interface {
	ValidatePromoCode(ctx context.Context, code string) (*PromoValidationView, error)
}

type promoQueriesImpl struct {
	readStore PromoReadStore
	clock     clock.Clock
}

func NewPromoQueries(readStore PromoReadStore, clock clock.Clock) PromoQueries {
	return &promoQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// ValidatePromoCode is read-only and idempotent: it never decrements
// uses-remaining, so repeated validation of the same code always gives
// the same answer until an administrator changes the record.
func (q *promoQueriesImpl) ValidatePromoCode(ctx context.Context, code string) (*PromoValidationView, error) {
	record, err := q.readStore.FindByCode(ctx, promo.Normalize(code))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PromoValidationView{Valid: false, Reason: PromoReasonNotFound}, nil
		}
		return nil, errs.Wrap(err, "failed to look up promo code")
	}

	entity, err := promo.NewPromoCode(
		record.ID,
		record.Code,
		record.DiscountPercent,
		record.Active,
		record.UsesRemaining,
		record.ValidUntil,
	)
	if err != nil {
		return nil, errs.Wrap(err, "stored promo code is malformed")
	}

	if err := entity.ValidateUsage(q.clock.Now()); err != nil {
		return &PromoValidationView{Valid: false, Reason: rejectionReason(err)}, nil
	}

	return &PromoValidationView{
		Valid:           true,
		DiscountPercent: entity.DiscountPercent().Value(),
	}, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, promo.ErrPromoInactive):
		return PromoReasonInactive
	case errors.Is(err, promo.ErrPromoExpired):
		return PromoReasonExpired
	case errors.Is(err, promo.ErrPromoExhausted):
		return PromoReasonExhausted
	default:
		return PromoReasonNotFound
	}
}
