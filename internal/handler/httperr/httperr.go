package httperr

import (
	"net/http"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err and aborts with the matching status. Messages from
// the storefront API are passed through as detail on 4xx answers.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)

	var detail any
	if status < http.StatusInternalServerError {
		if upstream, ok := infra.UpstreamMessage(err); ok {
			detail = gin.H{"upstream": upstream}
		}
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrCheckoutNotFound):
		return http.StatusNotFound, "Checkout not found"
	case errs.Is(err, errs.ErrReservationExpired):
		return http.StatusConflict, "Reservation expired"
	case errs.Is(err, errs.ErrNoActiveReservation):
		return http.StatusConflict, "No active reservation"
	case errs.Is(err, commands.ErrAddressNotFound):
		return http.StatusNotFound, "Address not found"
	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errs.Is(err, commands.ErrInvalidVerification):
		return http.StatusBadRequest, "Invalid verification code"
	case errs.Is(err, commands.ErrAuthenticationFailed):
		return http.StatusUnauthorized, "Authentication failed"
	case errs.Is(err, queries.ErrReservationNotFound):
		return http.StatusNotFound, "Reservation not found"
	case errs.Is(err, queries.ErrReservationAccess):
		return http.StatusForbidden, "Access denied"
	case errs.Is(err, session.ErrEmptyCart), errs.Is(err, session.ErrInvalidCartItem):
		return http.StatusBadRequest, "Invalid cart"
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, "Validation failed"
	}

	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case infra.IsKind(err, infra.KindNotFound):
		return http.StatusNotFound, "Not found"
	case infra.IsKind(err, infra.KindValidation):
		return http.StatusUnprocessableEntity, "Rejected by storefront"
	case infra.IsKind(err, infra.KindConflict):
		return http.StatusConflict, "Conflict"
	case infra.IsKind(err, infra.KindUpstreamFailure), errs.Is(err, errs.ErrUpstreamOperationFailed):
		return http.StatusBadGateway, "Storefront unavailable"
	}

	return http.StatusInternalServerError, "Internal server error"
}
