//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/bearer"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	sharedmock "storefront-checkout/internal/testutil/mock/shared"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/session"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items    = []shared.CartItem{{ID: "sku-1", Quantity: 2}}
	visa     = shared.CardInput{Number: "4111111111111111", Name: "JOHN DOE", Expiry: "1230", CVV: "123"}
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockCart      *sharedmock.MockCartService
	mockAddresses *sharedmock.MockAddressService
	mockObserver  *sharedmock.MockCheckoutObserver
	clk           *clock.MockClock
	registry      *session.Registry
	commands      commands.CheckoutCommands
	userID        uuid.UUID
	ctx           context.Context
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCart = sharedmock.NewMockCartService(s.mockCtrl)
	s.mockAddresses = sharedmock.NewMockAddressService(s.mockCtrl)
	s.mockObserver = sharedmock.NewMockCheckoutObserver(s.mockCtrl)
	recorder := sharedmock.NewMockLifecycleRecorder(s.mockCtrl)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.clk = clock.NewMockClock(baseTime)
	s.registry = session.NewRegistry(session.NewFactory(s.mockCart, recorder, s.clk, config.NewTestConfig().Checkout))
	s.commands = commands.NewCheckoutCommands(s.registry, s.mockAddresses, s.mockObserver)
	s.userID = uuid.New()
	s.ctx = bearer.WithToken(context.Background(), "token")
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.registry.Close()
	s.mockCtrl.Finish()
}

func (s *CheckoutCommandsTestSuite) start() {
	expiry := baseTime.Add(120 * time.Second)
	s.mockCart.EXPECT().Create(gomock.Any(), items).
		Return(&shared.CartReservation{ID: "cart-1", ExpiresAt: &expiry, Status: "pending"}, nil)

	view, err := s.commands.Start(s.ctx, s.userID, items)
	s.Require().NoError(err)
	s.Require().Equal(checkout.StepAddress, view.Step)
	s.Require().Equal(120, view.Reservation.TimeLeft)
}

func (s *CheckoutCommandsTestSuite) toPayment() {
	s.mockAddresses.EXPECT().List(gomock.Any()).Return([]shared.AddressRecord{{ID: "addr-1"}}, nil)
	_, err := s.commands.SelectAddress(s.ctx, s.userID, "addr-1")
	s.Require().NoError(err)
	_, err = s.commands.Next(s.ctx, s.userID)
	s.Require().NoError(err)
	_, err = s.commands.SelectShipping(s.ctx, s.userID, "express")
	s.Require().NoError(err)
	res, err := s.commands.Next(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Equal(checkout.StepPayment, res.View.Step)
}

func (s *CheckoutCommandsTestSuite) TestStart() {
	s.Run("upstream failure leaves no session", func() {
		s.mockCart.EXPECT().Create(gomock.Any(), items).
			Return(nil, infra.NewUpstreamError(infra.KindUpstreamFailure, "cart unavailable", nil))

		_, err := s.commands.Start(s.ctx, s.userID, items)
		s.Error(err)
		s.Equal(0, s.registry.Len())
	})

	s.Run("success", func() {
		s.start()
		s.Equal(1, s.registry.Len())
	})
}

func (s *CheckoutCommandsTestSuite) TestWithoutSession() {
	_, err := s.commands.Back(s.ctx, s.userID)
	s.ErrorIs(err, errs.ErrCheckoutNotFound)

	err = s.commands.Cancel(s.ctx, s.userID)
	s.ErrorIs(err, errs.ErrCheckoutNotFound)
}

func (s *CheckoutCommandsTestSuite) TestSelectAddress() {
	s.start()

	s.Run("unknown address", func() {
		s.mockAddresses.EXPECT().List(gomock.Any()).Return([]shared.AddressRecord{{ID: "addr-2"}}, nil)

		_, err := s.commands.SelectAddress(s.ctx, s.userID, "addr-1")
		s.True(errs.Is(err, commands.ErrAddressNotFound))
	})

	s.Run("known address", func() {
		s.mockAddresses.EXPECT().List(gomock.Any()).Return([]shared.AddressRecord{{ID: "addr-1"}}, nil)

		view, err := s.commands.SelectAddress(s.ctx, s.userID, "addr-1")
		s.Require().NoError(err)
		s.Equal("addr-1", view.AddressID)
	})
}

func (s *CheckoutCommandsTestSuite) TestNext_RejectionIsObserved() {
	s.start()
	s.mockObserver.EXPECT().StepRejected("address", "incomplete")

	_, err := s.commands.Next(s.ctx, s.userID)
	s.True(errs.Is(err, checkout.ErrStepInvalid))
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *CheckoutCommandsTestSuite) TestNext_ConfirmRemovesSession() {
	s.start()
	s.toPayment()

	view, err := s.commands.UpdateCard(s.ctx, s.userID, visa)
	s.Require().NoError(err)
	s.True(view.Card.Valid)
	s.Equal("1111", view.Card.Last4)
	s.True(view.Card.HasCVV)
	s.Require().NotNil(view.Shipping)
	s.Equal("express", view.Shipping.ID)

	confirmedAt := baseTime.Add(30 * time.Second)
	s.mockCart.EXPECT().Confirm(gomock.Any(), "cart-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, addressID *string) (*shared.Confirmation, error) {
			s.Require().NotNil(addressID)
			s.Equal("addr-1", *addressID)
			return &shared.Confirmation{ReservationID: "cart-1", OrderID: "order-9", Status: "confirmed", ConfirmedAt: &confirmedAt}, nil
		})

	res, err := s.commands.Next(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(checkout.OutcomeConfirmed, res.Outcome)
	s.Equal("order-9", res.Confirmation.OrderID)
	s.Equal(0, s.registry.Len())
}

func (s *CheckoutCommandsTestSuite) TestNext_ExpiredDisablesPayment() {
	s.start()
	s.toPayment()
	_, err := s.commands.UpdateCard(s.ctx, s.userID, visa)
	s.Require().NoError(err)

	cancelled := make(chan struct{})
	s.mockCart.EXPECT().Cancel(gomock.Any(), "cart-1").DoAndReturn(func(context.Context, string) error {
		close(cancelled)
		return nil
	})
	s.clk.Add(120 * time.Second)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		s.FailNow("expired reservation was not cancelled")
	}

	s.mockObserver.EXPECT().StepRejected("payment", "payment_unavailable")
	_, err = s.commands.Next(s.ctx, s.userID)
	s.True(errs.Is(err, checkout.ErrPaymentUnavailable))
	s.True(errs.Is(err, errs.ErrReservationExpired))
	s.False(errs.Is(err, errs.ErrDomainValidation))
}

func (s *CheckoutCommandsTestSuite) TestCancel() {
	s.start()
	s.mockCart.EXPECT().Cancel(gomock.Any(), "cart-1").Return(nil)

	s.Require().NoError(s.commands.Cancel(s.ctx, s.userID))
	s.Equal(0, s.registry.Len())

	_, ok := s.registry.Get(s.userID)
	s.False(ok)
}

func (s *CheckoutCommandsTestSuite) TestBackFloorsAtAddress() {
	s.start()

	view, err := s.commands.Back(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(checkout.StepAddress, view.Step)
	s.Equal(reservation.StatusPending, view.Reservation.Status)
}
