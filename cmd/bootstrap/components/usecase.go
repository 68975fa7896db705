package components

import (
	"biryani-club/internal/pkg/clock"
	"biryani-club/internal/pkg/config"
	"biryani-club/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewMenuUseCase,
		usecase.NewCartUseCase,
		usecase.NewCheckoutUseCase,
		usecase.NewAdminUseCase,
		usecase.NewDeliveryUseCase,
		func(
			promotionRepo usecase.PromotionRepository,
			usageRepo usecase.CouponUsageRepository,
			clk clock.Clock,
			storeCfg config.StoreConfig,
		) usecase.PromotionUseCase {
			return usecase.NewPromotionUseCase(promotionRepo, usageRepo, clk, storeCfg.OffersDisplayLimit)
		},
	),
)
