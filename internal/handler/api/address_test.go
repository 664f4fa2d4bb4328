//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-checkout/internal/handler/api"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/ptr"
	"storefront-checkout/internal/testutil"
	"storefront-checkout/internal/testutil/builder"
	"storefront-checkout/internal/testutil/httptest"
	commandsmock "storefront-checkout/internal/testutil/mock/commands"
	queriesmock "storefront-checkout/internal/testutil/mock/queries"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AddressHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAddressCommands
	mockQueries  *queriesmock.MockAddressQueries
}

func (s *AddressHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAddressCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAddressQueries(s.mockCtrl)

	h := api.NewAddressHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/addresses", fakeAuth(uuid.New()))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *AddressHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAddressHandlerSuite(t *testing.T) {
	suite.Run(t, new(AddressHandlerTestSuite))
}

func (s *AddressHandlerTestSuite) TestList() {
	s.Run("success: default address first", func() {
		list := []shared.AddressRecord{
			builder.NewAddressBuilder().BuildRecord(),
			builder.NewAddressBuilder().With(func(a *builder.AddressBuilder) {
				a.ID = "addr-2"
				a.IsDefault = false
			}).BuildRecord(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/addresses", nil, "bearer-token")

		var response []resdto.AddressResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("addr-1", response[0].ID)
		s.True(response[0].IsDefault)
	})

	s.Run("success: empty book renders an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/addresses", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 502 when the address service is down", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(infra.NewUpstreamStatusError(infra.KindUpstreamFailure, 503, "maintenance"), errs.ErrUpstreamOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/addresses", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Storefront unavailable")
		s.NotContains(rec.Body.String(), "maintenance")
	})
}

func (s *AddressHandlerTestSuite) TestCreate() {
	b := builder.NewAddressBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: 201 with Location", func() {
		record := b.BuildRecord()
		s.mockCommands.EXPECT().Add(gomock.Any(), reqBody.ToCommand()).Return(&record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/addresses", reqBody, "bearer-token")

		var response resdto.AddressResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/addresses/addr-1"})
		s.Equal("Tokyo", response.City)
	})

	s.Run("validation", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing recipient", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("recipient", nil))},
			{name: "missing line1", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("line1", nil))},
			{name: "missing city", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("city", nil))},
			{name: "missing postal code", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("postalCode", nil))},
			{name: "empty country", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("country", ""))},
			{name: "country not ISO alpha-2", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("country", "JPN"))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/addresses", tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 422 with the storefront message", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(infra.NewUpstreamStatusError(infra.KindValidation, 422, "postal code does not match city"), errs.ErrUpstreamOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/addresses", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Rejected by storefront")
		s.Contains(rec.Body.String(), "postal code does not match city")
	})
}

func (s *AddressHandlerTestSuite) TestUpdate() {
	s.Run("success: only sent fields reach the patch", func() {
		record := builder.NewAddressBuilder().With(func(a *builder.AddressBuilder) { a.City = "Osaka" }).BuildRecord()
		s.mockCommands.EXPECT().Update(gomock.Any(), "addr-1", commands.AddressPatch{City: ptr.Of("Osaka")}).
			Return(&record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/addresses/addr-1", gin.H{"city": "Osaka"}, "bearer-token")

		var response resdto.AddressResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Osaka", response.City)
	})

	s.Run("error: 400 on invalid country", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/addresses/addr-1", gin.H{"country": "Japan"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "addr-9", gomock.Any()).
			Return(nil, commands.ErrAddressNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/addresses/addr-9", gin.H{"city": "Osaka"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Address not found")
	})
}

func (s *AddressHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "addr-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/addresses/addr-1", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "addr-9").Return(commands.ErrAddressNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/addresses/addr-9", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Address not found")
	})
}
