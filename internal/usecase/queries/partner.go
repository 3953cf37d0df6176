package queries

import (
	"context"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"
)

var ErrPartnerKeyUnknown = errs.New("unknown partner api key")

type PartnerReadStore interface {
	FindByAPIKey(ctx context.Context, key string) (*PartnerView, error)
}

// PartnerQueries resolves partner credentials for the feed endpoints.
type PartnerQueries interface {
	AuthenticateKey(ctx context.Context, key string) (*PartnerView, error)
}

type partnerQueriesImpl struct {
	readStore PartnerReadStore
}

func NewPartnerQueries(readStore PartnerReadStore) PartnerQueries {
	return &partnerQueriesImpl{readStore: readStore}
}

func (q *partnerQueriesImpl) AuthenticateKey(ctx context.Context, key string) (*PartnerView, error) {
	if key == "" {
		return nil, ErrPartnerKeyUnknown
	}

	view, err := q.readStore.FindByAPIKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPartnerKeyUnknown
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return view, nil
}
