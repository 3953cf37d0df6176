package repository

import (
	"context"
	"log/slog"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/pgconv"
	"karoca-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PartnerReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPartnerReadStore(pool *pgxpool.Pool, logger *slog.Logger) *PartnerReadStore {
	return &PartnerReadStore{pool: pool, logger: logger}
}

const findPartnerByAPIKeySQL = `
SELECT id, partner_name
FROM partner_api_keys
WHERE api_key = $1 AND active = true`

func (r *PartnerReadStore) FindByAPIKey(ctx context.Context, key string) (*queries.PartnerView, error) {
	var view queries.PartnerView
	err := r.pool.QueryRow(ctx, findPartnerByAPIKeySQL, key).Scan(&view.ID, &view.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "partner api key not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to look up partner api key", err)
	}
	return &view, nil
}
