package repository

import (
	"context"
	"log/slog"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/pgconv"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromoRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPromoRepository(pool *pgxpool.Pool, logger *slog.Logger) *PromoRepository {
	return &PromoRepository{pool: pool, logger: logger}
}

const findPromoByCodeSQL = `
SELECT id, code, discount_percent, active, uses_remaining, valid_until
FROM promo_codes
WHERE code = $1`

func (r *PromoRepository) FindByCode(ctx context.Context, normalizedCode string) (*commands.PromoSnapshot, error) {
	var (
		snap          commands.PromoSnapshot
		usesRemaining pgtype.Int4
		validUntil    pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, findPromoByCodeSQL, normalizedCode).Scan(
		&snap.ID, &snap.Code, &snap.DiscountPercent, &snap.Active,
		&usesRemaining, &validUntil,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "promo code not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find promo code", err)
	}

	snap.UsesRemaining = pgconv.Int32PtrFromPgtype(usesRemaining)
	snap.ValidUntil = pgconv.TimePtrFromPgtype(validUntil)
	return &snap, nil
}

const insertPromoSQL = `
INSERT INTO promo_codes (id, code, discount_percent, active, uses_remaining, valid_until)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *PromoRepository) Create(ctx context.Context, p commands.PromoSnapshot) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertPromoSQL,
		p.ID,
		p.Code,
		p.DiscountPercent,
		p.Active,
		pgconv.Int4FromPtr(p.UsesRemaining),
		pgconv.TimestamptzFromPtr(p.ValidUntil),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, classifyWriteError(err), "failed to create promo code", err)
	}
	return id, nil
}

const deactivatePromoSQL = `
UPDATE promo_codes SET active = false, updated_at = now() WHERE id = $1`

func (r *PromoRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deactivatePromoSQL, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to deactivate promo code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "promo code not found", pgx.ErrNoRows)
	}
	return nil
}

// PromoReadStore serves validation lookups on the query side.
type PromoReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPromoReadStore(pool *pgxpool.Pool, logger *slog.Logger) *PromoReadStore {
	return &PromoReadStore{pool: pool, logger: logger}
}

func (r *PromoReadStore) FindByCode(ctx context.Context, normalizedCode string) (*queries.PromoRecord, error) {
	var (
		record        queries.PromoRecord
		usesRemaining pgtype.Int4
		validUntil    pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, findPromoByCodeSQL, normalizedCode).Scan(
		&record.ID, &record.Code, &record.DiscountPercent, &record.Active,
		&usesRemaining, &validUntil,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "promo code not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find promo code", err)
	}

	record.UsesRemaining = pgconv.Int32PtrFromPgtype(usesRemaining)
	record.ValidUntil = pgconv.TimePtrFromPgtype(validUntil)
	return &record, nil
}
