package repository

import (
	"context"
	"log/slog"

	"karoca-backend/internal/domain/staff"
	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/pgconv"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStaffRepository(pool *pgxpool.Pool, logger *slog.Logger) *StaffRepository {
	return &StaffRepository{pool: pool, logger: logger}
}

const findStaffByEmailSQL = `
SELECT id, email, role, is_active, last_login_at, password_hash
FROM staff
WHERE lower(email) = lower($1)`

func (r *StaffRepository) FindByEmail(ctx context.Context, email staff.Email) (*queries.AuthorizedStaffView, string, error) {
	var (
		view         queries.AuthorizedStaffView
		lastLoginAt  pgtype.Timestamptz
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, findStaffByEmailSQL, email.Value()).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &lastLoginAt, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff member not found", err)
		}
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find staff member", err)
	}

	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLoginAt)
	return &view, passwordHash, nil
}

const findStaffByIDSQL = `
SELECT id, email, role, is_active, last_login_at
FROM staff
WHERE id = $1`

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	var (
		view        queries.AuthorizedStaffView
		lastLoginAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, findStaffByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &lastLoginAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff member not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find staff member", err)
	}

	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLoginAt)
	return &view, nil
}

const updateStaffLastLoginSQL = `
UPDATE staff SET last_login_at = now(), updated_at = now() WHERE id = $1`

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, updateStaffLastLoginSQL, staffID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff member not found", pgx.ErrNoRows)
	}
	return nil
}
