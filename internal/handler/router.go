package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"biryani-club/internal/domain/user"
	"biryani-club/internal/handler/api"
	"biryani-club/internal/handler/middleware"
	"biryani-club/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Menu      *api.MenuHandler
	Promotion *api.PromotionHandler
	Order     *api.OrderHandler
	Cart      *api.CartHandler
	Admin     *api.AdminHandler
	Delivery  *api.DeliveryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/menu", Handler: h.Menu.ListMenu},
			{Method: http.MethodGet, Path: "/menu/popular", Handler: h.Menu.PopularItems},
			{Method: http.MethodGet, Path: "/offers", Handler: h.Promotion.ActiveOffers},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Coupon preview and checkout accept guests; a valid token only
		// attaches the user for per-user coupon dedup and order history.
		guestOK := apiGroup.Group("")
		guestOK.Use(authMiddleware.OptionalAuth())
		addRoutes(guestOK, []route{
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Promotion.ValidateCoupon},
			{Method: http.MethodPost, Path: "/orders", Handler: h.Order.PlaceOrder},
			{Method: http.MethodPost, Path: "/orders/:number/cancel", Handler: h.Order.CancelOrder},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/orders/:number", Handler: h.Order.GetOrder},
		})

		customer := apiGroup.Group("")
		customer.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customer, []route{
				{Method: http.MethodGet, Path: "/my/orders", Handler: h.Order.MyOrders},
				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.GetCart},
				{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/cart/items/:itemId", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.ClearCart},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/promotions", Handler: h.Admin.CreatePromotion},
				{Method: http.MethodGet, Path: "/promotions", Handler: h.Admin.ListPromotions},
				{Method: http.MethodPut, Path: "/promotions/:id", Handler: h.Admin.UpdatePromotion},
				{Method: http.MethodPatch, Path: "/promotions/:id/active", Handler: h.Admin.SetPromotionActive},
				{Method: http.MethodGet, Path: "/coupons/usage", Handler: h.Admin.UsageReport},
				{Method: http.MethodPost, Path: "/menu", Handler: h.Admin.CreateMenuItem},
				{Method: http.MethodPut, Path: "/menu/:id", Handler: h.Admin.UpdateMenuItem},
				{Method: http.MethodPatch, Path: "/menu/:id/stock", Handler: h.Admin.SetMenuItemStock},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodPatch, Path: "/users/:id/active", Handler: h.Admin.SetUserActive},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
				{Method: http.MethodPatch, Path: "/orders/:number/status", Handler: h.Admin.AdvanceOrder},
				{Method: http.MethodPatch, Path: "/store/open", Handler: h.Admin.SetStoreOpen},
			})
		}

		delivery := apiGroup.Group("/delivery")
		delivery.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleDelivery))
		{
			addRoutes(delivery, []route{
				{Method: http.MethodGet, Path: "/orders/available", Handler: h.Delivery.AvailableOrders},
				{Method: http.MethodGet, Path: "/orders/assigned", Handler: h.Delivery.AssignedOrders},
				{Method: http.MethodPost, Path: "/orders/:number/claim", Handler: h.Delivery.ClaimOrder},
				{Method: http.MethodPost, Path: "/orders/:number/pickup", Handler: h.Delivery.PickupOrder},
				{Method: http.MethodPost, Path: "/orders/:number/complete", Handler: h.Delivery.CompleteOrder},
			})
		}
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
