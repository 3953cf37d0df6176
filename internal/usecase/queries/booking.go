package queries

import (
	"context"
	"strings"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmailRequired = errs.New("customer email is required")

type BookingReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]*BookingListItem, error)
	ListAll(ctx context.Context) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetCustomerBookings(ctx context.Context, email string) ([]*BookingListItem, error)
	GetAllBookings(ctx context.Context) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	return view, nil
}

// GetCustomerBookings lists a customer's bookings newest first.
func (q *bookingQueriesImpl) GetCustomerBookings(ctx context.Context, email string) ([]*BookingListItem, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	items, err := q.readStore.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list customer bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) GetAllBookings(ctx context.Context) ([]*BookingListItem, error) {
	items, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}
