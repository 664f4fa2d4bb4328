package api

import (
	"net/http"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Start checkout
// @Description Reserve the cart and begin the address, shipping and payment flow. Restarting replaces the previous reservation.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.StartCheckoutRequest true "Cart lines"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Start(c.Request.Context(), userID, req.CartItems())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutView(view))
}

// @Summary Get checkout
// @Description Current step, selections and reservation countdown
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkout [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Shipping methods
// @Tags checkout
// @Produce json
// @Success 200 {array} resdto.ShippingMethodResponse
// @Router /api/checkout/shipping-methods [get]
func (h *CheckoutHandler) ShippingMethods(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromShippingMethods(h.q.ShippingMethods(c.Request.Context())))
}

// @Summary Select address
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectAddressRequest true "Address selection"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/checkout/address [put]
func (h *CheckoutHandler) SelectAddress(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var req reqdto.SelectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.SelectAddress(c.Request.Context(), userID, req.AddressID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Select shipping
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectShippingRequest true "Shipping selection"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/shipping [put]
func (h *CheckoutHandler) SelectShipping(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var req reqdto.SelectShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.SelectShipping(c.Request.Context(), userID, req.ShippingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Update card
// @Description Store the payment form on the session. The card is normalized; the response never echoes the CVV or full number.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CardRequest true "Card form"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/checkout/card [put]
func (h *CheckoutHandler) UpdateCard(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var req reqdto.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateCard(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Next step
// @Description Advance when the current step is complete. On the payment step the reservation is confirmed.
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.NextResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout/next [post]
func (h *CheckoutHandler) Next(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Next(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNextResult(result))
}

// @Summary Previous step
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkout/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	view, err := h.cmds.Back(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Cancel checkout
// @Description Release the reservation and discard the checkout.
// @Tags checkout
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
