//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/clock"
	"karoca-backend/internal/usecase/queries"
	queriesmock "karoca-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockPromoReadStore
	now           time.Time
	queries       queries.PromoQueries
}

func (s *PromoQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockPromoReadStore(s.mockCtrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.queries = queries.NewPromoQueries(s.mockReadStore, clock.NewMockClock(s.now))
}

func (s *PromoQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(PromoQueriesTestSuite))
}

func (s *PromoQueriesTestSuite) record(mutate func(*queries.PromoRecord)) *queries.PromoRecord {
	record := &queries.PromoRecord{
		ID:              uuid.New(),
		Code:            "SUMMER20",
		DiscountPercent: 20,
		Active:          true,
	}
	if mutate != nil {
		mutate(record)
	}
	return record
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_Valid() {
	s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SUMMER20").Return(s.record(nil), nil)

	view, err := s.queries.ValidatePromoCode(context.Background(), " summer20 ")

	s.Require().NoError(err)
	s.True(view.Valid)
	s.Equal(int32(20), view.DiscountPercent)
	s.Empty(view.Reason)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_NotFound() {
	s.mockReadStore.EXPECT().
		FindByCode(gomock.Any(), "NOPE123").
		Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	view, err := s.queries.ValidatePromoCode(context.Background(), "NOPE123")

	s.Require().NoError(err)
	s.False(view.Valid)
	s.Equal(queries.PromoReasonNotFound, view.Reason)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_Inactive() {
	record := s.record(func(r *queries.PromoRecord) { r.Active = false })
	s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SUMMER20").Return(record, nil)

	view, err := s.queries.ValidatePromoCode(context.Background(), "SUMMER20")

	s.Require().NoError(err)
	s.False(view.Valid)
	s.Equal(queries.PromoReasonInactive, view.Reason)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_Expired() {
	past := s.now.Add(-time.Minute)
	record := s.record(func(r *queries.PromoRecord) { r.ValidUntil = &past })
	s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SUMMER20").Return(record, nil)

	view, err := s.queries.ValidatePromoCode(context.Background(), "SUMMER20")

	s.Require().NoError(err)
	s.Equal(queries.PromoReasonExpired, view.Reason)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_Exhausted() {
	zero := int32(0)
	record := s.record(func(r *queries.PromoRecord) { r.UsesRemaining = &zero })
	s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SUMMER20").Return(record, nil)

	view, err := s.queries.ValidatePromoCode(context.Background(), "SUMMER20")

	s.Require().NoError(err)
	s.Equal(queries.PromoReasonExhausted, view.Reason)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_InactiveBeatsOtherReasons() {
	past := s.now.Add(-time.Minute)
	zero := int32(0)
	record := s.record(func(r *queries.PromoRecord) {
		r.Active = false
		r.ValidUntil = &past
		r.UsesRemaining = &zero
	})
	s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SUMMER20").Return(record, nil)

	view, err := s.queries.ValidatePromoCode(context.Background(), "SUMMER20")

	s.Require().NoError(err)
	s.Equal(queries.PromoReasonInactive, view.Reason)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_StoreFailure() {
	s.mockReadStore.EXPECT().
		FindByCode(gomock.Any(), "SUMMER20").
		Return(nil, infra.RepositoryError{Kind: infra.KindDBFailure})

	view, err := s.queries.ValidatePromoCode(context.Background(), "SUMMER20")

	s.Error(err)
	s.Nil(view)
}

func (s *PromoQueriesTestSuite) TestValidatePromoCode_RepeatedCallsAreStable() {
	zero := int32(0)
	record := s.record(func(r *queries.PromoRecord) { r.UsesRemaining = &zero })
	s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SUMMER20").Return(record, nil).Times(3)

	for range 3 {
		view, err := s.queries.ValidatePromoCode(context.Background(), "SUMMER20")
		s.Require().NoError(err)
		s.Equal(queries.PromoReasonExhausted, view.Reason)
	}
}
