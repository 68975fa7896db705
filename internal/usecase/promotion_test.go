//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"biryani-club/internal/domain/promotion"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/clock"
	"biryani-club/internal/usecase"
	"biryani-club/internal/usecase/readmodel"
	"biryani-club/tests/common/builder"
	usecasemock "biryani-club/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newPromotionUC(t *testing.T) (usecase.PromotionUseCase, *usecasemock.MockPromotionRepository, *usecasemock.MockCouponUsageRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	promoRepo := usecasemock.NewMockPromotionRepository(ctrl)
	usageRepo := usecasemock.NewMockCouponUsageRepository(ctrl)
	uc := usecase.NewPromotionUseCase(promoRepo, usageRepo, clock.NewMockClock(testNow), 8)
	return uc, promoRepo, usageRepo
}

func TestValidateCoupon(t *testing.T) {
	ctx := context.Background()
	subtotal := decimal.RequireFromString("500")

	t.Run("valid percentage coupon applies discount", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.WithCode("SAVE20").Percentage("20") }).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, promotion.Code("SAVE20")).Return(promo, nil)

		res, err := uc.ValidateCoupon(ctx, "save20", subtotal, nil, nil)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "SAVE20", res.Code)
		assert.True(t, res.Discount.Equal(decimal.RequireFromString("100")))
		assert.True(t, res.NewTotal.Equal(decimal.RequireFromString("400")))
	})

	t.Run("unknown code is a negative result, not an error", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promoRepo.EXPECT().FindByCode(ctx, promotion.Code("NOPE99")).
			Return(nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound))

		res, err := uc.ValidateCoupon(ctx, "NOPE99", subtotal, nil, nil)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Coupon not found", res.Message)
		assert.True(t, res.Discount.IsZero())
		assert.True(t, res.NewTotal.Equal(subtotal))
	})

	t.Run("malformed code never hits the repository", func(t *testing.T) {
		uc, _, _ := newPromotionUC(t)

		res, err := uc.ValidateCoupon(ctx, "!!", subtotal, nil, nil)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Coupon not found", res.Message)
	})

	t.Run("inactive wins over expired in the message", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		past := testNow.Add(-time.Hour)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.Inactive()
				b.WithExpiresAt(&past)
			}).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, nil)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "This coupon is no longer active", res.Message)
	})

	t.Run("expired wins over exhausted in the message", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		past := testNow.Add(-time.Hour)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.WithExpiresAt(&past)
				b.WithUsage(1, 1)
			}).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "This coupon has expired", res.Message)
	})

	t.Run("exhausted coupon rejected", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.WithUsage(100, 100) }).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "This coupon has reached its usage limit", res.Message)
	})

	t.Run("registered user blocked on second use", func(t *testing.T) {
		uc, promoRepo, usageRepo := newPromotionUC(t)
		userID := uuid.New()
		promo := builder.NewPromotionBuilder().Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)
		usageRepo.EXPECT().ExistsForUser(ctx, userID, promo.ID()).Return(true, nil)

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, &userID)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "You have already used this coupon", res.Message)
	})

	t.Run("guest skips the per-user check entirely", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promo := builder.NewPromotionBuilder().Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)
		// no ExistsForUser expectation: a call would fail the test

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, nil)
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("below minimum reports the shortfall", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.WithMinOrderAmount("600") }).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, nil)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Add items worth ₹100 more to use this coupon", res.Message)
	})

	t.Run("free item coupon with no matching items stays valid with a hint", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.FreeItem("Desserts", 1) }).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)

		lines := []promotion.CartLine{{
			MenuItemID: uuid.New(),
			Name:       "Chicken Biryani",
			Category:   "Biryani",
			UnitPrice:  decimal.RequireFromString("299"),
			Quantity:   1,
		}}
		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, lines, nil)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.True(t, res.Discount.IsZero())
		assert.Equal(t, "Add Desserts items to your cart to enjoy this offer", res.Message)
	})

	t.Run("infrastructure failure surfaces as an error", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("db down", errors.New("connection refused"), infra.KindDBFailure))

		res, err := uc.ValidateCoupon(ctx, "WELCOME50", subtotal, nil, nil)
		require.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestResolveCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("below minimum returns the promotion with the error", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		promo := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.WithMinOrderAmount("300") }).
			Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)

		got, err := uc.ResolveCoupon(ctx, promo.Code(), decimal.RequireFromString("100"), nil)
		require.ErrorIs(t, err, usecase.ErrBelowMinimumOrder)
		require.NotNil(t, got)
	})

	t.Run("usage check failure wraps, not swallows", func(t *testing.T) {
		uc, promoRepo, usageRepo := newPromotionUC(t)
		userID := uuid.New()
		promo := builder.NewPromotionBuilder().Reconstruct()
		promoRepo.EXPECT().FindByCode(ctx, gomock.Any()).Return(promo, nil)
		usageRepo.EXPECT().ExistsForUser(ctx, userID, promo.ID()).
			Return(false, errors.New("connection reset"))

		_, err := uc.ResolveCoupon(ctx, promo.Code(), decimal.RequireFromString("500"), &userID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrCouponAlreadyUsed)
	})
}

func TestActiveOffers(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the configured display limit", func(t *testing.T) {
		uc, promoRepo, _ := newPromotionUC(t)
		offers := []*readmodel.OfferRM{{Code: "WELCOME50"}}
		promoRepo.EXPECT().FindActiveOffers(ctx, 8).Return(offers, nil)

		got, err := uc.ActiveOffers(ctx)
		require.NoError(t, err)
		assert.Equal(t, offers, got)
	})
}
