package api

import (
	"net/http"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/ptr"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	q queries.ReservationQueries
}

func NewReservationHandler(q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{q: q}
}

// @Summary Reservation history
// @Description Journaled lifecycle events of the current shopper, newest first
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum events (1-200, default 50)"
// @Success 200 {array} resdto.LifecycleEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) History(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var query reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	events, err := h.q.History(c.Request.Context(), userID, ptr.Deref(query.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLifecycleEvents(events))
}

// @Summary Reservation events
// @Description Lifecycle of one reservation in the order it happened
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.LifecycleEventResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/events [get]
func (h *ReservationHandler) Events(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	events, err := h.q.Events(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLifecycleEvents(events))
}
