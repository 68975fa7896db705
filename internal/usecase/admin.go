package usecase

import (
	"context"
	"errors"
	"time"

	"biryani-club/internal/domain/menu"
	"biryani-club/internal/domain/order"
	"biryani-club/internal/domain/promotion"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/clock"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionExists   = errors.New("promo code already exists")
)

type PromotionAdminRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
	Update(ctx context.Context, id uuid.UUID, p *promotion.Promotion) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	List(ctx context.Context) ([]*readmodel.PromotionRM, error)
}

type UsageFilter struct {
	CouponCode *string
	From       *time.Time
	To         *time.Time
	Limit      int
}

type CouponUsageReader interface {
	ListUsages(ctx context.Context, filter UsageFilter) ([]readmodel.CouponUsageRM, error)
	Totals(ctx context.Context) (int, decimal.Decimal, error)
	TopCoupons(ctx context.Context, n int) ([]readmodel.CouponStatRM, error)
}

type MenuAdminRepository interface {
	Create(ctx context.Context, item *menu.Item) error
	Update(ctx context.Context, id uuid.UUID, item *menu.Item) error
	SetStock(ctx context.Context, id uuid.UUID, inStock bool) error
}

type UserAdminRepository interface {
	List(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type OrderAdminRepository interface {
	List(ctx context.Context, status *order.Status) ([]*readmodel.OrderListRM, error)
}

type PromotionParams struct {
	Code             string
	Description      string
	DiscountType     string
	DiscountValue    decimal.Decimal
	MinOrderAmount   decimal.Decimal
	MaxDiscount      *decimal.Decimal
	UsageLimit       *int
	FreeItemCategory *string
	FreeItemQty      *int
	ExpiresAt        *time.Time
}

type MenuItemParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Emoji       string
	IsVeg       bool
}

type AdminUseCase interface {
	CreatePromotion(ctx context.Context, params PromotionParams) (*promotion.Promotion, error)
	UpdatePromotion(ctx context.Context, id uuid.UUID, params PromotionParams) error
	SetPromotionActive(ctx context.Context, id uuid.UUID, active bool) error
	ListPromotions(ctx context.Context) ([]*readmodel.PromotionRM, error)
	UsageReport(ctx context.Context, filter UsageFilter) (*readmodel.UsageReportRM, error)

	CreateMenuItem(ctx context.Context, params MenuItemParams) (*menu.Item, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, params MenuItemParams) error
	SetMenuItemStock(ctx context.Context, id uuid.UUID, inStock bool) error

	ListUsers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) error

	ListOrders(ctx context.Context, status *string) ([]*readmodel.OrderListRM, error)
	AdvanceOrder(ctx context.Context, number string, next string) error

	SetStoreOpen(ctx context.Context, open bool) error
}

type adminUseCaseImpl struct {
	promoRepo    PromotionAdminRepository
	usageReader  CouponUsageReader
	menuRepo     MenuAdminRepository
	userRepo     UserAdminRepository
	orderAdmin   OrderAdminRepository
	orderRepo    OrderRepository
	settingsRepo StoreSettingsRepository
	clock        clock.Clock
	topCoupons   int
}

func NewAdminUseCase(
	promoRepo PromotionAdminRepository,
	usageReader CouponUsageReader,
	menuRepo MenuAdminRepository,
	userRepo UserAdminRepository,
	orderAdmin OrderAdminRepository,
	orderRepo OrderRepository,
	settingsRepo StoreSettingsRepository,
	clock clock.Clock,
) AdminUseCase {
	return &adminUseCaseImpl{
		promoRepo:    promoRepo,
		usageReader:  usageReader,
		menuRepo:     menuRepo,
		userRepo:     userRepo,
		orderAdmin:   orderAdmin,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		clock:        clock,
		topCoupons:   5,
	}
}

func (a *adminUseCaseImpl) CreatePromotion(ctx context.Context, params PromotionParams) (*promotion.Promotion, error) {
	p, err := a.buildPromotion(params)
	if err != nil {
		return nil, err
	}

	if err := a.promoRepo.Create(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrPromotionExists
		}
		return nil, errs.Wrap(err, "failed to create promotion")
	}
	return p, nil
}

func (a *adminUseCaseImpl) UpdatePromotion(ctx context.Context, id uuid.UUID, params PromotionParams) error {
	p, err := a.buildPromotion(params)
	if err != nil {
		return err
	}

	if err := a.promoRepo.Update(ctx, id, p); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Wrap(err, "failed to update promotion")
	}
	return nil
}

func (a *adminUseCaseImpl) buildPromotion(params PromotionParams) (*promotion.Promotion, error) {
	code, err := promotion.NewCode(params.Code)
	if err != nil {
		return nil, err
	}
	discountType, err := promotion.NewDiscountType(params.DiscountType)
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(
		code,
		params.Description,
		discountType,
		params.DiscountValue,
		params.MinOrderAmount,
		params.MaxDiscount,
		params.UsageLimit,
		params.FreeItemCategory,
		params.FreeItemQty,
		params.ExpiresAt,
	)
}

func (a *adminUseCaseImpl) SetPromotionActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := a.promoRepo.SetActive(ctx, id, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Wrap(err, "failed to toggle promotion")
	}
	return nil
}

func (a *adminUseCaseImpl) ListPromotions(ctx context.Context) ([]*readmodel.PromotionRM, error) {
	promos, err := a.promoRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list promotions")
	}
	return promos, nil
}

func (a *adminUseCaseImpl) UsageReport(ctx context.Context, filter UsageFilter) (*readmodel.UsageReportRM, error) {
	recent, err := a.usageReader.ListUsages(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list coupon usages")
	}

	redemptions, totalDiscount, err := a.usageReader.Totals(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to compute usage totals")
	}

	top, err := a.usageReader.TopCoupons(ctx, a.topCoupons)
	if err != nil {
		return nil, errs.Wrap(err, "failed to rank coupons")
	}

	return &readmodel.UsageReportRM{
		TotalRedemptions: redemptions,
		TotalDiscount:    totalDiscount,
		TopCoupons:       top,
		Recent:           recent,
	}, nil
}

func (a *adminUseCaseImpl) CreateMenuItem(ctx context.Context, params MenuItemParams) (*menu.Item, error) {
	item, err := menu.NewItem(params.Name, params.Description, params.Price, params.Category, params.Emoji, params.IsVeg)
	if err != nil {
		return nil, err
	}
	if err := a.menuRepo.Create(ctx, item); err != nil {
		return nil, errs.Wrap(err, "failed to create menu item")
	}
	return item, nil
}

func (a *adminUseCaseImpl) UpdateMenuItem(ctx context.Context, id uuid.UUID, params MenuItemParams) error {
	item, err := menu.NewItem(params.Name, params.Description, params.Price, params.Category, params.Emoji, params.IsVeg)
	if err != nil {
		return err
	}
	if err := a.menuRepo.Update(ctx, id, item); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMenuItemNotFound
		}
		return errs.Wrap(err, "failed to update menu item")
	}
	return nil
}

func (a *adminUseCaseImpl) SetMenuItemStock(ctx context.Context, id uuid.UUID, inStock bool) error {
	if err := a.menuRepo.SetStock(ctx, id, inStock); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMenuItemNotFound
		}
		return errs.Wrap(err, "failed to update stock flag")
	}
	return nil
}

func (a *adminUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	users, err := a.userRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (a *adminUseCaseImpl) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := a.userRepo.SetActive(ctx, id, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "failed to toggle user")
	}
	return nil
}

func (a *adminUseCaseImpl) ListOrders(ctx context.Context, status *string) ([]*readmodel.OrderListRM, error) {
	var st *order.Status
	if status != nil {
		parsed, err := order.NewStatus(*status)
		if err != nil {
			return nil, err
		}
		st = &parsed
	}

	orders, err := a.orderAdmin.List(ctx, st)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return orders, nil
}

// AdvanceOrder moves an order along the kitchen lifecycle. Customer
// cancellation goes through CheckoutUseCase.CancelOrder instead, which
// also releases the coupon slot.
func (a *adminUseCaseImpl) AdvanceOrder(ctx context.Context, number string, next string) error {
	nextStatus, err := order.NewStatus(next)
	if err != nil {
		return err
	}

	o, err := a.orderRepo.FindEntityByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Wrap(err, "failed to find order")
	}

	if !o.Status().CanTransitionTo(nextStatus) {
		return order.ErrInvalidTransition
	}

	if err := a.orderRepo.UpdateStatus(ctx, nil, o.ID(), nextStatus, a.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to update order status")
	}
	return nil
}

func (a *adminUseCaseImpl) SetStoreOpen(ctx context.Context, open bool) error {
	if err := a.settingsRepo.SetStoreOpen(ctx, open); err != nil {
		return errs.Wrap(err, "failed to toggle store")
	}
	return nil
}
