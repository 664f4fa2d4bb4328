package api

import (
	"net/http"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	cmds commands.AddressCommands
	q    queries.AddressQueries
}

func NewAddressHandler(cmds commands.AddressCommands, q queries.AddressQueries) *AddressHandler {
	return &AddressHandler{cmds: cmds, q: q}
}

// @Summary List addresses
// @Description Shipping addresses of the current shopper, default first
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.AddressResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	list, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddresses(list))
}

// @Summary Add address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAddressRequest true "Address"
// @Success 201 {object} resdto.AddressResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req reqdto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Add(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/addresses/"+created.ID)
	c.JSON(http.StatusCreated, resdto.FromAddress(*created))
}

// @Summary Update address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body reqdto.UpdateAddressRequest true "Fields to change"
// @Success 200 {object} resdto.AddressResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	var req reqdto.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddress(*updated))
}

// @Summary Delete address
// @Tags addresses
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
