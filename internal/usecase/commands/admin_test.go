//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/domain/extras"
	"karoca-backend/internal/infra"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/commands"
	"karoca-backend/tests/common/builder"
	commandsmock "karoca-backend/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBookingRepo *commandsmock.MockBookingRepository
	mockPromoRepo   *commandsmock.MockPromoRepository
	commands        commands.AdminCommands
}

func (s *AdminCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockPromoRepo = commandsmock.NewMockPromoRepository(s.mockCtrl)
	s.commands = commands.NewAdminCommands(s.mockBookingRepo, s.mockPromoRepo)
}

func (s *AdminCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandsTestSuite))
}

func (s *AdminCommandsTestSuite) pendingBooking() *booking.Booking {
	b := builder.NewBookingBuilder()
	factory := booking.NewFactory(b.Clock(), booking.NewCatalogPriceCalculator(extras.DefaultCatalog()))
	entity, err := b.BuildDomain(factory, nil)
	s.Require().NoError(err)
	return entity
}

func (s *AdminCommandsTestSuite) TestUpdateBookingStatus_Confirm() {
	bookingID := uuid.New()
	entity := s.pendingBooking()

	s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(entity, nil)
	s.mockBookingRepo.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusConfirmed).Return(nil)

	err := s.commands.UpdateBookingStatus(context.Background(), bookingID, "confirmed")
	s.NoError(err)
}

func (s *AdminCommandsTestSuite) TestUpdateBookingStatus_UnknownStatus() {
	err := s.commands.UpdateBookingStatus(context.Background(), uuid.New(), "archived")
	s.True(errs.Is(err, errs.ErrInvalidBookingStatus))
}

func (s *AdminCommandsTestSuite) TestUpdateBookingStatus_NotFound() {
	bookingID := uuid.New()
	s.mockBookingRepo.EXPECT().
		FindByID(gomock.Any(), bookingID).
		Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

	err := s.commands.UpdateBookingStatus(context.Background(), bookingID, "confirmed")
	s.True(errs.Is(err, errs.ErrBookingNotFound))
}

func (s *AdminCommandsTestSuite) TestUpdateBookingStatus_IllegalTransition() {
	bookingID := uuid.New()
	entity := s.pendingBooking()
	s.Require().NoError(entity.TransitionTo(booking.StatusCancelled))

	s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(entity, nil)

	err := s.commands.UpdateBookingStatus(context.Background(), bookingID, "confirmed")
	s.True(errs.Is(err, errs.ErrIllegalTransition))
}

func (s *AdminCommandsTestSuite) TestUpdateBookingStatus_StoreFailure() {
	bookingID := uuid.New()
	entity := s.pendingBooking()

	s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(entity, nil)
	s.mockBookingRepo.EXPECT().
		UpdateStatus(gomock.Any(), bookingID, booking.StatusConfirmed).
		Return(infra.RepositoryError{Kind: infra.KindDBFailure})

	err := s.commands.UpdateBookingStatus(context.Background(), bookingID, "confirmed")
	s.True(errs.Is(err, errs.ErrStoreUnavailable))
}

func (s *AdminCommandsTestSuite) TestCreatePromo_NormalizesCode() {
	promoID := uuid.New()
	validUntil := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	s.mockPromoRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p commands.PromoSnapshot) (uuid.UUID, error) {
			s.Equal("WINTER25", p.Code)
			s.Equal(int32(25), p.DiscountPercent)
			s.True(p.Active)
			s.Equal(validUntil, *p.ValidUntil)
			return promoID, nil
		})

	id, err := s.commands.CreatePromo(context.Background(), commands.CreatePromoParams{
		Code:            " winter25 ",
		DiscountPercent: 25,
		ValidUntil:      &validUntil,
	})
	s.Require().NoError(err)
	s.Equal(promoID, id)
}

func (s *AdminCommandsTestSuite) TestCreatePromo_InvalidCode() {
	_, err := s.commands.CreatePromo(context.Background(), commands.CreatePromoParams{
		Code:            "no spaces allowed",
		DiscountPercent: 10,
	})
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *AdminCommandsTestSuite) TestCreatePromo_DuplicateCode() {
	s.mockPromoRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.RepositoryError{Kind: infra.KindDuplicateKey})

	_, err := s.commands.CreatePromo(context.Background(), commands.CreatePromoParams{
		Code:            "SUMMER20",
		DiscountPercent: 20,
	})
	s.True(errs.Is(err, errs.ErrPromoCodeTaken))
}

func (s *AdminCommandsTestSuite) TestDeactivatePromo_NotFound() {
	promoID := uuid.New()
	s.mockPromoRepo.EXPECT().
		Deactivate(gomock.Any(), promoID).
		Return(infra.RepositoryError{Kind: infra.KindNotFound})

	err := s.commands.DeactivatePromo(context.Background(), promoID)
	s.True(errs.Is(err, errs.ErrPromoNotFound))
}

func (s *AdminCommandsTestSuite) TestDeactivatePromo_Success() {
	promoID := uuid.New()
	s.mockPromoRepo.EXPECT().Deactivate(gomock.Any(), promoID).Return(nil)

	s.NoError(s.commands.DeactivatePromo(context.Background(), promoID))
}
