package components

import (
	"biryani-club/internal/handler"
	"biryani-club/internal/handler/api"
	"biryani-club/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMenuHandler,
		api.NewPromotionHandler,
		api.NewOrderHandler,
		api.NewCartHandler,
		api.NewAdminHandler,
		api.NewDeliveryHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			menu *api.MenuHandler,
			promotion *api.PromotionHandler,
			order *api.OrderHandler,
			cart *api.CartHandler,
			admin *api.AdminHandler,
			delivery *api.DeliveryHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:      auth,
				Menu:      menu,
				Promotion: promotion,
				Order:     order,
				Cart:      cart,
				Admin:     admin,
				Delivery:  delivery,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
