package api

import (
	"net/http"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/pkg/ptr"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q    queries.CatalogQueries
	card queries.CardQueries
}

func NewCatalogHandler(q queries.CatalogQueries, card queries.CardQueries) *CatalogHandler {
	return &CatalogHandler{q: q, card: card}
}

// @Summary Search products
// @Description Fuzzy search over the storefront catalog. An empty query lists products in catalog order.
// @Tags catalog
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Maximum results (1-100, default 20)"
// @Success 200 {object} resdto.ProductSearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/products/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	var query reqdto.SearchProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.Search(c.Request.Context(), query.Q, ptr.Deref(query.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(query.Q, views))
}

// @Summary Normalize card input
// @Description Format a partially typed card and report per-field completion. Nothing is stored.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.NormalizeCardRequest true "Card form"
// @Success 200 {object} resdto.CardFeedbackResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cards/normalize [post]
func (h *CatalogHandler) NormalizeCard(c *gin.Context) {
	var req reqdto.NormalizeCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	fb := h.card.Normalize(req.ToInput(), req.FocusField())
	c.JSON(http.StatusOK, resdto.FromCardFeedback(fb))
}
