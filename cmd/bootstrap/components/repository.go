package components

import (
	repo_impl "biryani-club/internal/infra/repository"
	"biryani-club/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository), new(usecase.UserAdminRepository)),
		),
		fx.Annotate(
			repo_impl.NewMenuRepository,
			fx.As(new(usecase.MenuRepository), new(usecase.MenuItemReader), new(usecase.MenuAdminRepository)),
		),
		fx.Annotate(
			repo_impl.NewPromotionRepository,
			fx.As(new(usecase.PromotionRepository), new(usecase.PromotionAdminRepository), new(usecase.PromotionCounter)),
		),
		fx.Annotate(
			repo_impl.NewCouponUsageRepository,
			fx.As(new(usecase.CouponUsageRepository), new(usecase.CouponUsageWriter), new(usecase.CouponUsageReader)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository), new(usecase.OrderAdminRepository), new(usecase.DeliveryOrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(usecase.CartRepository)),
		),
		fx.Annotate(
			repo_impl.NewStoreSettingsRepository,
			fx.As(new(usecase.StoreSettingsRepository)),
		),
	),
)
