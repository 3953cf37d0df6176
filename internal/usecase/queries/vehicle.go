package queries

import (
	"context"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListAvailable(ctx context.Context, category *string) ([]*VehicleView, error)
}

type VehicleQueries interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	GetAvailableVehicles(ctx context.Context, category *string) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	readStore VehicleReadStore
}

func NewVehicleQueries(readStore VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{readStore: readStore}
}

func (q *vehicleQueriesImpl) GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.readStore.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Wrap(err, "failed to get vehicle")
	}
	return view, nil
}

// GetAvailableVehicles lists bookable vehicles cheapest first, optionally
// narrowed to a category.
func (q *vehicleQueriesImpl) GetAvailableVehicles(ctx context.Context, category *string) ([]*VehicleView, error) {
	views, err := q.readStore.ListAvailable(ctx, category)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available vehicles")
	}
	return views, nil
}
