//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-checkout/internal/domain/user"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/bearer"
	"storefront-checkout/internal/pkg/cookie"
	"storefront-checkout/internal/testutil/httptest"
	usecasemock "storefront-checkout/internal/testutil/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	userID        uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.userID = uuid.New()

	m := middleware.NewAuthMiddleware(s.mockValidator)
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		token, _ := bearer.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": role, "token": token})
	}
	s.router.GET("/private", m.RequireAuth(), whoami)
	s.router.GET("/public", m.OptionalAuth(), whoami)
	s.router.GET("/must", func(c *gin.Context) {
		if _, ok := middleware.MustUserID(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

type whoamiResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Token  string    `json:"token"`
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer header authenticates and reaches the request context", func() {
		s.mockValidator.EXPECT().ValidateToken("header-token").Return(s.userID, user.RoleCustomer, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "header-token")

		var response whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.UserID)
		s.Equal("customer", response.Role)
		s.Equal("header-token", response.Token)
	})

	s.Run("cookie wins over the header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(s.userID, user.RoleAdmin, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/private", nil, cookies, "header-token")

		var response whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin", response.Role)
		s.Equal("cookie-token", response.Token)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("rejected token", func() {
		s.mockValidator.EXPECT().ValidateToken("stale").Return(uuid.Nil, user.Role(""), errors.New("token expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "stale")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous request passes through", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "")

		var response whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(uuid.Nil, response.UserID)
		s.Empty(response.Token)
	})

	s.Run("invalid token is ignored", func() {
		s.mockValidator.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("invalid token")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "bad")

		var response whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(uuid.Nil, response.UserID)
		s.Empty(response.Token)
	})

	s.Run("valid token authenticates", func() {
		s.mockValidator.EXPECT().ValidateToken("good").Return(s.userID, user.RoleCustomer, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "good")

		var response whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.UserID)
		s.Equal("good", response.Token)
	})
}

func (s *AuthMiddlewareTestSuite) TestMustUserID() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/must", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
}
