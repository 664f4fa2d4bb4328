package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Address     *api.AddressHandler
	Catalog     *api.CatalogHandler
	Checkout    *api.CheckoutHandler
	Reservation *api.ReservationHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	address *api.AddressHandler,
	catalog *api.CatalogHandler,
	checkout *api.CheckoutHandler,
	reservation *api.ReservationHandler,
) Handlers {
	return Handlers{
		Auth:        auth,
		Address:     address,
		Catalog:     catalog,
		Checkout:    checkout,
		Reservation: reservation,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.Verify},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products/search", Handler: h.Catalog.Search, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodPost, Path: "/cards/normalize", Handler: h.Catalog.NormalizeCard},
		})

		addresses := apiGroup.Group("/addresses")
		addresses.Use(requireAuth)
		addRoutes(addresses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Address.List},
			{Method: http.MethodPost, Path: "", Handler: h.Address.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Address.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Address.Delete},
		})

		apiGroup.GET("/checkout/shipping-methods", h.Checkout.ShippingMethods)

		checkout := apiGroup.Group("/checkout")
		checkout.Use(requireAuth)
		addRoutes(checkout, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Checkout.Start},
			{Method: http.MethodGet, Path: "", Handler: h.Checkout.Get},
			{Method: http.MethodPut, Path: "/address", Handler: h.Checkout.SelectAddress},
			{Method: http.MethodPut, Path: "/shipping", Handler: h.Checkout.SelectShipping},
			{Method: http.MethodPut, Path: "/card", Handler: h.Checkout.UpdateCard},
			{Method: http.MethodPost, Path: "/next", Handler: h.Checkout.Next},
			{Method: http.MethodPost, Path: "/back", Handler: h.Checkout.Back},
			{Method: http.MethodPost, Path: "/cancel", Handler: h.Checkout.Cancel},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.History},
			{Method: http.MethodGet, Path: "/:id/events", Handler: h.Reservation.Events},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
