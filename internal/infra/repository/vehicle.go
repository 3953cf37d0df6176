package repository

import (
	"context"
	"log/slog"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/pgconv"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVehicleRepository(pool *pgxpool.Pool, logger *slog.Logger) *VehicleRepository {
	return &VehicleRepository{pool: pool, logger: logger}
}

const findVehicleSnapshotSQL = `
SELECT id, name, category, daily_rate_cents, available
FROM vehicles
WHERE id = $1`

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.VehicleSnapshot, error) {
	var snap commands.VehicleSnapshot
	err := r.pool.QueryRow(ctx, findVehicleSnapshotSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Category, &snap.DailyRateCents, &snap.Available,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "vehicle not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find vehicle", err)
	}
	return &snap, nil
}

type VehicleReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVehicleReadStore(pool *pgxpool.Pool, logger *slog.Logger) *VehicleReadStore {
	return &VehicleReadStore{pool: pool, logger: logger}
}

const getVehicleViewSQL = `
SELECT id, name, category, daily_rate_cents, available, created_at, updated_at
FROM vehicles
WHERE id = $1`

func (r *VehicleReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	var (
		view      queries.VehicleView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, getVehicleViewSQL, id).Scan(
		&view.ID, &view.Name, &view.Category, &view.DailyRateCents, &view.Available,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "vehicle not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get vehicle", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listAvailableVehiclesSQL = `
SELECT id, name, category, daily_rate_cents, available, created_at, updated_at
FROM vehicles
WHERE available = true AND ($1::text IS NULL OR category = $1)
ORDER BY daily_rate_cents ASC, name ASC`

func (r *VehicleReadStore) ListAvailable(ctx context.Context, category *string) ([]*queries.VehicleView, error) {
	rows, err := r.pool.Query(ctx, listAvailableVehiclesSQL, pgconv.TextFromPtr(category))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list vehicles", err)
	}
	defer rows.Close()

	views := make([]*queries.VehicleView, 0)
	for rows.Next() {
		var (
			view      queries.VehicleView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Category, &view.DailyRateCents, &view.Available,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan vehicle row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read vehicle rows", err)
	}
	return views, nil
}
