package repository

import (
	"context"
	"log/slog"
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/pkg/pgconv"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingRepository(pool *pgxpool.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{pool: pool, logger: logger}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, vehicle_id, customer_name, customer_email, customer_phone,
    pickup_location, pickup_date, return_date, selected_extras,
    note, promo_code, discount_percent, total_cents, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var note pgtype.Text
	if !b.Note().IsEmpty() {
		value := b.Note().String()
		note = pgconv.TextFromPtr(&value)
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertBookingSQL,
		b.ID(),
		b.VehicleID(),
		b.Customer().Name(),
		b.Customer().Email(),
		b.Customer().Phone(),
		b.PickupLocation(),
		b.Dates().Pickup(),
		b.Dates().Return(),
		b.SelectedExtraIDs(),
		note,
		pgconv.TextFromPtr(b.PromoCode()),
		b.DiscountPercent(),
		b.TotalPrice().Cents(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, classifyWriteError(err), "failed to insert booking", err)
	}
	return id, nil
}

const findBookingByIDSQL = `
SELECT
    b.id, b.vehicle_id, b.customer_name, b.customer_email, b.customer_phone,
    b.pickup_location, b.pickup_date, b.return_date, b.selected_extras,
    b.note, b.promo_code, b.discount_percent, b.total_cents, b.status,
    b.created_at, b.updated_at
FROM bookings b
WHERE b.id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID       uuid.UUID
		vehicleID       uuid.UUID
		customerName    string
		customerEmail   string
		customerPhone   string
		pickupLocation  string
		pickupDate      time.Time
		returnDate      time.Time
		selectedExtras  []string
		note            pgtype.Text
		promoCode       pgtype.Text
		discountPercent int32
		totalCents      int64
		status          string
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&bookingID, &vehicleID, &customerName, &customerEmail, &customerPhone,
		&pickupLocation, &pickupDate, &returnDate, &selectedExtras,
		&note, &promoCode, &discountPercent, &totalCents, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find booking", err)
	}

	customer, err := booking.NewCustomer(customerName, customerEmail, customerPhone)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking has invalid customer", err)
	}
	dates, err := booking.NewDateRange(pickupDate, returnDate)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking has invalid dates", err)
	}
	bookingStatus, ok := booking.NewStatus(status)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking has invalid status", errs.Newf("unknown status %q", status))
	}

	noteValue := ""
	if ptr := pgconv.StringPtrFromPgtype(note); ptr != nil {
		noteValue = *ptr
	}

	return booking.ReconstructBooking(
		bookingID,
		vehicleID,
		customer,
		pickupLocation,
		dates,
		selectedExtras,
		booking.NewNote(noteValue),
		pgconv.StringPtrFromPgtype(promoCode),
		discountPercent,
		booking.NewMoney(totalCents),
		bookingStatus,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", pgx.ErrNoRows)
	}
	return nil
}

// BookingReadStore serves the query side with joined vehicle names.
type BookingReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingReadStore(pool *pgxpool.Pool, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{pool: pool, logger: logger}
}

const getBookingViewSQL = `
SELECT
    b.id, b.vehicle_id, v.name, b.customer_name, b.customer_email, b.customer_phone,
    b.pickup_location, b.pickup_date, b.return_date, b.selected_extras,
    b.note, b.promo_code, b.discount_percent, b.total_cents, b.status,
    b.created_at, b.updated_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.id = $1`

func (r *BookingReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		note      pgtype.Text
		promoCode pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getBookingViewSQL, id).Scan(
		&view.ID, &view.VehicleID, &view.VehicleName,
		&view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.PickupLocation, &view.PickupDate, &view.ReturnDate, &view.SelectedExtras,
		&note, &promoCode, &view.DiscountPercent, &view.TotalCents, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get booking", err)
	}

	view.Note = pgconv.StringPtrFromPgtype(note)
	view.PromoCode = pgconv.StringPtrFromPgtype(promoCode)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listBookingsByEmailSQL = `
SELECT b.id, b.vehicle_id, v.name, b.pickup_date, b.return_date, b.total_cents, b.status, b.created_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE lower(b.customer_email) = lower($1)
ORDER BY b.created_at DESC`

func (r *BookingReadStore) ListByCustomerEmail(ctx context.Context, email string) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, listBookingsByEmailSQL, email)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings by email", err)
	}
	defer rows.Close()

	return r.collectListItems(rows)
}

const listAllBookingsSQL = `
SELECT b.id, b.vehicle_id, v.name, b.pickup_date, b.return_date, b.total_cents, b.status, b.created_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
ORDER BY b.created_at DESC`

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, listAllBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	return r.collectListItems(rows)
}

func (r *BookingReadStore) collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item      queries.BookingListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleName,
			&item.PickupDate, &item.ReturnDate, &item.TotalCents, &item.Status,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read booking rows", err)
	}
	return items, nil
}
