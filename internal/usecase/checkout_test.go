//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/clock"
	"biryani-club/internal/pkg/config"
	"biryani-club/internal/pkg/errs"
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

type checkoutMocks struct {
	orderRepo    *usecasemock.MockOrderRepository
	menuReader   *usecasemock.MockMenuItemReader
	promotionUC  *usecasemock.MockPromotionUseCase
	promoCounter *usecasemock.MockPromotionCounter
	usageWriter  *usecasemock.MockCouponUsageWriter
	settingsRepo *usecasemock.MockStoreSettingsRepository
	cartRepo     *usecasemock.MockCartRepository
	clock        *clock.MockClock
}

// newCheckoutUC wires the use case against mocks with a nil pool, which
// only supports paths that fail before the checkout transaction opens.
func newCheckoutUC(t *testing.T) (usecase.CheckoutUseCase, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		orderRepo:    usecasemock.NewMockOrderRepository(ctrl),
		menuReader:   usecasemock.NewMockMenuItemReader(ctrl),
		promotionUC:  usecasemock.NewMockPromotionUseCase(ctrl),
		promoCounter: usecasemock.NewMockPromotionCounter(ctrl),
		usageWriter:  usecasemock.NewMockCouponUsageWriter(ctrl),
		settingsRepo: usecasemock.NewMockStoreSettingsRepository(ctrl),
		cartRepo:     usecasemock.NewMockCartRepository(ctrl),
		clock:        clock.NewMockClock(testNow),
	}
	uc := usecase.NewCheckoutUseCase(
		m.orderRepo, m.menuReader, m.promotionUC, m.promoCounter,
		m.usageWriter, m.settingsRepo, m.cartRepo, nil, m.clock,
		config.StoreConfig{
			OrderNumberPrefix:  "BC",
			CancellationWindow: 3 * time.Minute,
		},
	)
	return uc, m
}

func openSettings() *readmodel.StoreSettingsRM {
	return &readmodel.StoreSettingsRM{
		StoreOpen:          true,
		MinOrderAmount:     decimal.RequireFromString("200"),
		BaseDeliveryCharge: decimal.RequireFromString("30"),
		FreeDeliveryAbove:  decimal.RequireFromString("500"),
	}
}

func menuItem(price string) *readmodel.MenuItemRM {
	return &readmodel.MenuItemRM{
		ID:       uuid.New(),
		Name:     "Chicken Biryani",
		Price:    decimal.RequireFromString(price),
		Category: "Biryani",
		InStock:  true,
	}
}

func placeParams(items ...usecase.OrderLineInput) usecase.PlaceOrderParams {
	return usecase.PlaceOrderParams{
		CustomerName:    "Test Customer",
		CustomerPhone:   "9876543210",
		DeliveryAddress: "12 MG Road, Bengaluru",
		PaymentMethod:   "cash",
		Items:           items,
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("closed store rejects checkout before anything else", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		m.settingsRepo.EXPECT().Effective(ctx).
			Return(&readmodel.StoreSettingsRM{StoreOpen: false}, nil)

		_, err := uc.PlaceOrder(ctx, placeParams(usecase.OrderLineInput{MenuItemID: uuid.New(), Quantity: 1}))
		require.ErrorIs(t, err, usecase.ErrStoreClosed)
	})

	t.Run("unknown menu item fails the order", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		m.settingsRepo.EXPECT().Effective(ctx).Return(openSettings(), nil)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return(nil, nil)

		_, err := uc.PlaceOrder(ctx, placeParams(usecase.OrderLineInput{MenuItemID: uuid.New(), Quantity: 1}))
		require.ErrorIs(t, err, usecase.ErrItemUnavailable)
	})

	t.Run("out of stock item fails the order", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		mi := menuItem("299")
		mi.InStock = false
		m.settingsRepo.EXPECT().Effective(ctx).Return(openSettings(), nil)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*readmodel.MenuItemRM{mi}, nil)

		_, err := uc.PlaceOrder(ctx, placeParams(usecase.OrderLineInput{MenuItemID: mi.ID, Quantity: 1}))
		require.ErrorIs(t, err, usecase.ErrItemUnavailable)
	})

	t.Run("subtotal below store minimum reports the shortfall", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		mi := menuItem("49")
		m.settingsRepo.EXPECT().Effective(ctx).Return(openSettings(), nil)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*readmodel.MenuItemRM{mi}, nil)

		_, err := uc.PlaceOrder(ctx, placeParams(usecase.OrderLineInput{MenuItemID: mi.ID, Quantity: 1}))
		require.ErrorIs(t, err, usecase.ErrBelowMinimumOrder)

		var minErr *usecase.MinimumOrderError
		require.ErrorAs(t, err, &minErr)
		assert.True(t, minErr.Shortfall.Equal(decimal.RequireFromString("151")))
	})

	t.Run("malformed coupon code maps to not found", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		mi := menuItem("299")
		m.settingsRepo.EXPECT().Effective(ctx).Return(openSettings(), nil)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*readmodel.MenuItemRM{mi}, nil)

		params := placeParams(usecase.OrderLineInput{MenuItemID: mi.ID, Quantity: 1})
		bad := "!!"
		params.CouponCode = &bad

		_, err := uc.PlaceOrder(ctx, params)
		require.ErrorIs(t, err, usecase.ErrCouponNotFound)
	})

	t.Run("coupon resolution errors abort the checkout", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		mi := menuItem("299")
		m.settingsRepo.EXPECT().Effective(ctx).Return(openSettings(), nil)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*readmodel.MenuItemRM{mi}, nil)
		m.promotionUC.EXPECT().ResolveCoupon(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrCouponAlreadyUsed)

		params := placeParams(usecase.OrderLineInput{MenuItemID: mi.ID, Quantity: 1})
		code := "WELCOME50"
		params.CouponCode = &code

		_, err := uc.PlaceOrder(ctx, params)
		require.ErrorIs(t, err, usecase.ErrCouponAlreadyUsed)
	})

	t.Run("zero quantity line rejected", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		mi := menuItem("299")
		m.settingsRepo.EXPECT().Effective(ctx).Return(openSettings(), nil)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*readmodel.MenuItemRM{mi}, nil)

		_, err := uc.PlaceOrder(ctx, placeParams(usecase.OrderLineInput{MenuItemID: mi.ID, Quantity: 0}))
		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})
}

// The checkout re-rolls the order number only while the commit error
// still reads as a duplicate key after being marked, so the
// classification has to survive the wrapping done in the commit path.
func TestOrderNumberCollisionError(t *testing.T) {
	collision := errs.Mark(
		infra.WrapRepoErr("order number collision",
			errors.New(`duplicate key value violates unique constraint "orders_order_number_key"`),
			infra.KindDuplicateKey),
		usecase.ErrDatabaseOperationFailed,
	)
	require.True(t, infra.IsKind(collision, infra.KindDuplicateKey))
	require.ErrorIs(t, collision, usecase.ErrDatabaseOperationFailed)

	plain := errs.Mark(
		infra.WrapRepoErr("failed to create order", errors.New("connection reset")),
		usecase.ErrDatabaseOperationFailed,
	)
	require.False(t, infra.IsKind(plain, infra.KindDuplicateKey))
}

func TestPreviewCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the cart and delegates validation", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		mi := menuItem("299")
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*readmodel.MenuItemRM{mi}, nil)

		expected := &readmodel.CouponValidationRM{Valid: true, Code: "WELCOME50"}
		m.promotionUC.EXPECT().
			ValidateCoupon(ctx, "WELCOME50", decimal.NewFromInt(598), gomock.Len(1), nil).
			Return(expected, nil)

		got, err := uc.PreviewCoupon(ctx, "WELCOME50",
			[]usecase.OrderLineInput{{MenuItemID: mi.ID, Quantity: 2}}, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("unavailable item fails the preview like checkout", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		m.menuReader.EXPECT().FindByIDs(ctx, gomock.Any()).Return(nil, nil)

		_, err := uc.PreviewCoupon(ctx, "WELCOME50",
			[]usecase.OrderLineInput{{MenuItemID: uuid.New(), Quantity: 1}}, nil)
		require.ErrorIs(t, err, usecase.ErrItemUnavailable)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to the domain error", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		m.orderRepo.EXPECT().FindByNumber(ctx, "BC-20250601-0001").
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := uc.GetOrder(ctx, "BC-20250601-0001")
		require.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	registeredOrder := func(t *testing.T, owner uuid.UUID, createdAt time.Time) *order.Order {
		t.Helper()
		o, err := builder.NewOrderBuilder().
			WithItem("Chicken Biryani", "299", 1).
			WithUserID(owner).
			WithCreatedAt(createdAt).
			BuildDomain()
		require.NoError(t, err)
		return o
	}

	t.Run("unknown order", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		m.orderRepo.EXPECT().FindEntityByNumber(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		err := uc.CancelOrder(ctx, "BC-20250601-0001", nil)
		require.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})

	t.Run("registered order cannot be cancelled anonymously", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		o := registeredOrder(t, uuid.New(), testNow)
		m.orderRepo.EXPECT().FindEntityByNumber(ctx, o.Number()).Return(o, nil)

		err := uc.CancelOrder(ctx, o.Number(), nil)
		require.ErrorIs(t, err, usecase.ErrNotOrderOwner)
	})

	t.Run("registered order cannot be cancelled by another user", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		o := registeredOrder(t, uuid.New(), testNow)
		m.orderRepo.EXPECT().FindEntityByNumber(ctx, o.Number()).Return(o, nil)

		other := uuid.New()
		err := uc.CancelOrder(ctx, o.Number(), &other)
		require.ErrorIs(t, err, usecase.ErrNotOrderOwner)
	})

	t.Run("window closed", func(t *testing.T) {
		uc, m := newCheckoutUC(t)
		owner := uuid.New()
		o := registeredOrder(t, owner, testNow.Add(-10*time.Minute))
		m.orderRepo.EXPECT().FindEntityByNumber(ctx, o.Number()).Return(o, nil)

		err := uc.CancelOrder(ctx, o.Number(), &owner)
		require.ErrorIs(t, err, order.ErrCancellationClosed)
	})
}
