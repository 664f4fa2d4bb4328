//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/testutil/httptest"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	upstream := func(kind infra.ErrorKind, code int) error {
		return errs.Mark(infra.NewUpstreamStatusError(kind, code, "upstream says no"), errs.ErrUpstreamOperationFailed)
	}

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"checkout missing", errs.ErrCheckoutNotFound, http.StatusNotFound, "Checkout not found"},
		{"wrapped checkout missing", errs.Wrap(errs.ErrCheckoutNotFound, "select shipping"), http.StatusNotFound, "Checkout not found"},
		{"reservation expired", errs.ErrReservationExpired, http.StatusConflict, "Reservation expired"},
		{"no reservation", errs.ErrNoActiveReservation, http.StatusConflict, "No active reservation"},
		{"address missing", commands.ErrAddressNotFound, http.StatusNotFound, "Address not found"},
		{"bad credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"bad code", commands.ErrInvalidVerification, http.StatusBadRequest, "Invalid verification code"},
		{"auth failed", commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Authentication failed"},
		{"journal miss", queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
		{"journal foreign", queries.ErrReservationAccess, http.StatusForbidden, "Access denied"},
		{"empty cart", session.ErrEmptyCart, http.StatusBadRequest, "Invalid cart"},
		{"bad cart line", session.ErrInvalidCartItem, http.StatusBadRequest, "Invalid cart"},
		{"payment after expiry", errs.Mark(checkout.ErrPaymentUnavailable, errs.ErrReservationExpired), http.StatusConflict, "Reservation expired"},
		{"flow rejection", errs.Mark(checkout.ErrStepInvalid, errs.ErrDomainValidation), http.StatusUnprocessableEntity, "Validation failed"},
		{"upstream 401", upstream(infra.KindUnauthorized, 401), http.StatusUnauthorized, "Unauthorized"},
		{"upstream 404", upstream(infra.KindNotFound, 404), http.StatusNotFound, "Not found"},
		{"upstream 422", upstream(infra.KindValidation, 422), http.StatusUnprocessableEntity, "Rejected by storefront"},
		{"upstream 409", upstream(infra.KindConflict, 409), http.StatusConflict, "Conflict"},
		{"upstream 503", upstream(infra.KindUpstreamFailure, 503), http.StatusBadGateway, "Storefront unavailable"},
		{"transport failure", errs.Mark(errors.New("dial tcp: refused"), errs.ErrUpstreamOperationFailed), http.StatusBadGateway, "Storefront unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedMsg, msg)
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/client", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(infra.NewUpstreamStatusError(infra.KindValidation, 422, "sku-2 is out of stock"), errs.ErrUpstreamOperationFailed))
	})
	r.GET("/server", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(infra.NewUpstreamStatusError(infra.KindUpstreamFailure, 500, "stack trace here"), errs.ErrUpstreamOperationFailed))
	})

	t.Run("client errors carry the storefront message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/client", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Rejected by storefront")
		assert.Contains(t, rec.Body.String(), `"upstream":"sku-2 is out of stock"`)
	})

	t.Run("server errors do not", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/server", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Storefront unavailable")
		assert.NotContains(t, rec.Body.String(), "stack trace here")
	})

	t.Run("records a public error carrying the response", func(t *testing.T) {
		rec := stdhttptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = stdhttptest.NewRequest(http.MethodGet, "/", nil)
		cause := errors.New("upstream down")

		httperr.AbortWithError(c, http.StatusBadGateway, cause, "Storefront unavailable", nil)

		require.Len(t, c.Errors, 1)
		recorded := c.Errors[0]
		assert.True(t, recorded.IsType(gin.ErrorTypePublic))
		assert.ErrorIs(t, recorded.Err, cause)
		resp, ok := recorded.Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, resp.Status)
		assert.Equal(t, "Storefront unavailable", resp.Error.Message)
		assert.True(t, c.IsAborted())
	})

	t.Run("nil error panics", func(t *testing.T) {
		assert.Panics(t, func() {
			httperr.AbortWithError(nil, http.StatusInternalServerError, nil, "x", nil)
		})
	})
}
