package repository

import (
	"context"
	"log/slog"

	"karoca-backend/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewContactRepository(pool *pgxpool.Pool, logger *slog.Logger) *ContactRepository {
	return &ContactRepository{pool: pool, logger: logger}
}

const insertContactMessageSQL = `
INSERT INTO contact_messages (id, name, email, message)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *ContactRepository) Insert(ctx context.Context, name, email, message string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertContactMessageSQL, uuid.New(), name, email, message).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, classifyWriteError(err), "failed to insert contact message", err)
	}
	return id, nil
}
