package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/domain/promotion"
	"biryani-club/internal/infra"
	"biryani-club/internal/infra/db"
	"biryani-club/internal/pkg/clock"
	"biryani-club/internal/pkg/config"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrStoreClosed     = errors.New("store is currently closed")
	ErrOrderNotFound   = errors.New("order not found")
	ErrItemUnavailable = errors.New("menu item unavailable")
	ErrNotOrderOwner   = errors.New("order belongs to another user")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// orderNumberAttempts bounds how many fresh order numbers a checkout
// tries when the random suffix collides with an existing order.
const orderNumberAttempts = 3

// MinimumOrderError reports how far the subtotal falls short of the
// storewide minimum. It matches ErrBelowMinimumOrder under errors.Is.
type MinimumOrderError struct {
	Minimum   decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("order below minimum: add ₹%s more (minimum ₹%s)", e.Shortfall, e.Minimum)
}

func (e *MinimumOrderError) Is(target error) bool {
	return target == ErrBelowMinimumOrder
}

type OrderLineInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

type PlaceOrderParams struct {
	UserID          *uuid.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	PaymentMethod   string
	CouponCode      *string
	Items           []OrderLineInput
}

type CouponUsageRecord struct {
	PromotionID    uuid.UUID
	CouponCode     string
	OrderID        uuid.UUID
	OrderNumber    string
	UserID         *uuid.UUID
	GuestName      *string
	GuestPhone     *string
	OrderSubtotal  decimal.Decimal
	DiscountAmount decimal.Decimal
	DiscountType   string
	UsedAt         time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, qx db.Queryer, o *order.Order) error
	FindByNumber(ctx context.Context, number string) (*readmodel.OrderRM, error)
	FindEntityByNumber(ctx context.Context, number string) (*order.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.OrderListRM, error)
	UpdateStatus(ctx context.Context, qx db.Queryer, id uuid.UUID, status order.Status, at time.Time) error
}

type MenuItemReader interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*readmodel.MenuItemRM, error)
}

type PromotionCounter interface {
	// IncrementUsage bumps times_used only while under usage_limit and
	// reports whether a row was updated.
	IncrementUsage(ctx context.Context, qx db.Queryer, id uuid.UUID) (bool, error)
}

type CouponUsageWriter interface {
	Insert(ctx context.Context, rec CouponUsageRecord) error
	DeleteForOrder(ctx context.Context, qx db.Queryer, orderID uuid.UUID) error
}

type StoreSettingsRepository interface {
	Effective(ctx context.Context) (*readmodel.StoreSettingsRM, error)
	SetStoreOpen(ctx context.Context, open bool) error
}

type CheckoutUseCase interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*readmodel.OrderRM, error)
	PreviewCoupon(ctx context.Context, code string, items []OrderLineInput, userID *uuid.UUID) (*readmodel.CouponValidationRM, error)
	GetOrder(ctx context.Context, number string) (*readmodel.OrderRM, error)
	CancelOrder(ctx context.Context, number string, userID *uuid.UUID) error
	UserOrders(ctx context.Context, userID uuid.UUID) ([]*readmodel.OrderListRM, error)
}

type checkoutUseCaseImpl struct {
	orderRepo     OrderRepository
	menuReader    MenuItemReader
	promotionUC   PromotionUseCase
	promoCounter  PromotionCounter
	usageWriter   CouponUsageWriter
	settingsRepo  StoreSettingsRepository
	cartRepo      CartRepository
	db            *pgxpool.Pool
	clock         clock.Clock
	storeCfg      config.StoreConfig
}

func NewCheckoutUseCase(
	orderRepo OrderRepository,
	menuReader MenuItemReader,
	promotionUC PromotionUseCase,
	promoCounter PromotionCounter,
	usageWriter CouponUsageWriter,
	settingsRepo StoreSettingsRepository,
	cartRepo CartRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	storeCfg config.StoreConfig,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		orderRepo:    orderRepo,
		menuReader:   menuReader,
		promotionUC:  promotionUC,
		promoCounter: promoCounter,
		usageWriter:  usageWriter,
		settingsRepo: settingsRepo,
		cartRepo:     cartRepo,
		db:           db,
		clock:        clock,
		storeCfg:     storeCfg,
	}
}

// PlaceOrder runs the checkout commit. The order, its items, and the
// usage-counter increment share one transaction; the coupon usage
// record is written after commit, and a failure there is logged but
// never rolls the order back. Placed orders outrank bookkeeping.
func (u *checkoutUseCaseImpl) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*readmodel.OrderRM, error) {
	now := u.clock.Now()

	settings, err := u.settingsRepo.Effective(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load store settings")
	}
	if !settings.StoreOpen {
		return nil, ErrStoreClosed
	}

	cartLines, orderItems, subtotal, err := u.resolveItems(ctx, params.Items)
	if err != nil {
		return nil, err
	}

	if subtotal.LessThan(settings.MinOrderAmount) {
		return nil, &MinimumOrderError{
			Minimum:   settings.MinOrderAmount,
			Shortfall: settings.MinOrderAmount.Sub(subtotal),
		}
	}

	var promo *promotion.Promotion
	discount := decimal.Zero
	var discountType promotion.DiscountType
	var couponCode *string
	if params.CouponCode != nil && *params.CouponCode != "" {
		code, codeErr := promotion.NewCode(*params.CouponCode)
		if codeErr != nil {
			return nil, ErrCouponNotFound
		}
		promo, err = u.promotionUC.ResolveCoupon(ctx, code, subtotal, params.UserID)
		if err != nil {
			return nil, err
		}
		result := promo.CalculateDiscount(subtotal, cartLines)
		discount = result.Amount
		discountType = result.Type
		codeStr := code.String()
		couponCode = &codeStr
	}

	deliveryCharges := settings.BaseDeliveryCharge
	if subtotal.GreaterThanOrEqual(settings.FreeDeliveryAbove) {
		deliveryCharges = decimal.Zero
	}

	paymentMethod, err := order.NewPaymentMethod(params.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var newOrder *order.Order
	for attempt := 0; ; attempt++ {
		newOrder, err = order.NewOrder(
			order.GenerateNumber(u.storeCfg.OrderNumberPrefix, now),
			params.UserID,
			params.CustomerName,
			params.CustomerPhone,
			params.DeliveryAddress,
			orderItems,
			deliveryCharges,
			discount,
			couponCode,
			paymentMethod,
			now,
		)
		if err != nil {
			return nil, err
		}

		err = u.commitOrder(ctx, newOrder, promo)
		if err == nil {
			break
		}
		// An order number collision re-rolls the random suffix.
		if attempt < orderNumberAttempts-1 && infra.IsKind(err, infra.KindDuplicateKey) {
			continue
		}
		return nil, err
	}

	u.afterCommit(ctx, newOrder, promo, discount, discountType, params)

	return u.orderRepo.FindByNumber(ctx, newOrder.Number())
}

func (u *checkoutUseCaseImpl) commitOrder(ctx context.Context, o *order.Order, promo *promotion.Promotion) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.orderRepo.Create(ctx, tx, o); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if promo != nil {
		bumped, err := u.promoCounter.IncrementUsage(ctx, tx, promo.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !bumped {
			// A concurrent checkout took the last slot between our
			// validity check and this update.
			return ErrCouponExhausted
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *checkoutUseCaseImpl) afterCommit(
	ctx context.Context,
	o *order.Order,
	promo *promotion.Promotion,
	discount decimal.Decimal,
	discountType promotion.DiscountType,
	params PlaceOrderParams,
) {
	// A coupon that took no money off (a free-item code with no
	// qualifying lines) leaves no usage row, so the customer's
	// one-time slot is only consumed by an order that was discounted.
	if promo != nil && discount.IsPositive() {
		rec := CouponUsageRecord{
			PromotionID:    promo.ID(),
			CouponCode:     promo.Code().String(),
			OrderID:        o.ID(),
			OrderNumber:    o.Number(),
			UserID:         params.UserID,
			OrderSubtotal:  o.Subtotal(),
			DiscountAmount: discount,
			DiscountType:   discountType.String(),
			UsedAt:         u.clock.Now(),
		}
		if params.UserID == nil {
			name, phone := params.CustomerName, params.CustomerPhone
			rec.GuestName = &name
			rec.GuestPhone = &phone
		}
		if err := u.usageWriter.Insert(ctx, rec); err != nil {
			slog.Error("failed to record coupon usage for committed order",
				"order_number", o.Number(),
				"coupon_code", promo.Code().String(),
				"error", err)
		}
	}

	if params.UserID != nil {
		if err := u.cartRepo.Clear(ctx, u.db, *params.UserID); err != nil {
			slog.Warn("failed to clear cart after checkout",
				"user_id", params.UserID.String(),
				"error", err)
		}
	}
}

func (u *checkoutUseCaseImpl) resolveItems(ctx context.Context, inputs []OrderLineInput) ([]promotion.CartLine, []order.Item, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, nil, decimal.Zero, order.ErrEmptyOrder
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.MenuItemID)
	}

	menuItems, err := u.menuReader.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, decimal.Zero, errs.Wrap(err, "failed to load menu items")
	}
	byID := make(map[uuid.UUID]*readmodel.MenuItemRM, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID] = mi
	}

	var cartLines []promotion.CartLine
	var orderItems []order.Item
	subtotal := decimal.Zero
	for _, in := range inputs {
		mi, ok := byID[in.MenuItemID]
		if !ok || !mi.InStock {
			return nil, nil, decimal.Zero, ErrItemUnavailable
		}
		if in.Quantity <= 0 {
			return nil, nil, decimal.Zero, order.ErrEmptyOrder
		}
		cartLines = append(cartLines, promotion.CartLine{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			Category:   mi.Category,
			UnitPrice:  mi.Price,
			Quantity:   in.Quantity,
		})
		item := order.NewItem(mi.ID, mi.Name, mi.Price, in.Quantity)
		orderItems = append(orderItems, item)
		subtotal = subtotal.Add(item.TotalPrice)
	}

	return cartLines, orderItems, subtotal, nil
}

// PreviewCoupon prices a coupon against the current cart without any
// side effects. Unavailable items fail the preview the same way they
// would fail checkout.
func (u *checkoutUseCaseImpl) PreviewCoupon(ctx context.Context, code string, items []OrderLineInput, userID *uuid.UUID) (*readmodel.CouponValidationRM, error) {
	cartLines, _, subtotal, err := u.resolveItems(ctx, items)
	if err != nil {
		return nil, err
	}
	return u.promotionUC.ValidateCoupon(ctx, code, subtotal, cartLines, userID)
}

func (u *checkoutUseCaseImpl) GetOrder(ctx context.Context, number string) (*readmodel.OrderRM, error) {
	o, err := u.orderRepo.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return o, nil
}

// CancelOrder cancels within the window and releases the customer's
// coupon slot by deleting the usage row. times_used stays put:
// cancellation frees the personal one-time slot, not the global quota.
func (u *checkoutUseCaseImpl) CancelOrder(ctx context.Context, number string, userID *uuid.UUID) error {
	o, err := u.orderRepo.FindEntityByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Wrap(err, "failed to find order")
	}

	if o.UserID() != nil {
		if userID == nil || *userID != *o.UserID() {
			return ErrNotOrderOwner
		}
	}

	if err := o.CanCancel(u.clock.Now(), u.storeCfg.CancellationWindow); err != nil {
		return err
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.orderRepo.UpdateStatus(ctx, tx, o.ID(), order.StatusCancelled, u.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if o.CouponCode() != nil {
		if err := u.usageWriter.DeleteForOrder(ctx, tx, o.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *checkoutUseCaseImpl) UserOrders(ctx context.Context, userID uuid.UUID) ([]*readmodel.OrderListRM, error) {
	orders, err := u.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user orders")
	}
	return orders, nil
}
