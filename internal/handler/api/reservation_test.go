//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/handler/api"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/testutil/httptest"
	queriesmock "storefront-checkout/internal/testutil/mock/queries"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	userID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewReservationHandler(s.mockQueries)
	g := s.router.Group("/reservations", fakeAuth(s.userID))
	g.GET("", h.History)
	g.GET("/:id/events", h.Events)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) events() []shared.LifecycleEvent {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	addr := "addr-1"
	return []shared.LifecycleEvent{
		{ID: uuid.New(), UserID: s.userID, ReservationID: "cart-1", Event: reservation.EventCreated, Status: reservation.StatusPending, TimeLeft: 1800, OccurredAt: at},
		{ID: uuid.New(), UserID: s.userID, ReservationID: "cart-1", Event: reservation.EventConfirmed, Status: reservation.StatusConfirmed, TimeLeft: 1200, AddressID: &addr, OccurredAt: at.Add(10 * time.Minute)},
	}
}

func (s *ReservationHandlerTestSuite) TestHistory() {
	s.Run("success: passes the limit", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID, int32(10)).Return(s.events(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=10", nil, "bearer-token")

		var response []resdto.LifecycleEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("created", response[0].Event)
		s.Equal("confirmed", response[1].Status)
		s.Require().NotNil(response[1].AddressID)
		s.Equal("addr-1", *response[1].AddressID)
	})

	s.Run("success: no limit leaves the default to the journal", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID, int32(0)).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response []resdto.LifecycleEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 on limit out of range", func() {
		for _, q := range []string{"limit=0", "limit=500", "limit=-1"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?"+q, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReservationHandlerTestSuite) TestEvents() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Events(gomock.Any(), s.userID, "cart-1").Return(s.events(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/cart-1/events", nil, "bearer-token")

		var response []resdto.LifecycleEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: maps lookup errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown reservation", err: queries.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
			{name: "someone else's reservation", err: queries.ErrReservationAccess, expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Events(gomock.Any(), s.userID, "cart-9").Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/cart-9/events", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
