package usecase

import (
	"context"
	"errors"

	"biryani-club/internal/infra"
	"biryani-club/internal/infra/db"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

type CartRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]readmodel.CartLineRM, error)
	Upsert(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) error
	SetQuantity(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, menuItemID uuid.UUID) error
	Clear(ctx context.Context, qx db.Queryer, userID uuid.UUID) error
}

type CartUseCase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*readmodel.CartRM, error)
	AddItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*readmodel.CartRM, error)
	UpdateItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*readmodel.CartRM, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartUseCaseImpl struct {
	cartRepo     CartRepository
	menuRepo     MenuRepository
	settingsRepo StoreSettingsRepository
	db           *pgxpool.Pool
}

func NewCartUseCase(
	cartRepo CartRepository,
	menuRepo MenuRepository,
	settingsRepo StoreSettingsRepository,
	db *pgxpool.Pool,
) CartUseCase {
	return &cartUseCaseImpl{
		cartRepo:     cartRepo,
		menuRepo:     menuRepo,
		settingsRepo: settingsRepo,
		db:           db,
	}
}

func (c *cartUseCaseImpl) GetCart(ctx context.Context, userID uuid.UUID) (*readmodel.CartRM, error) {
	lines, err := c.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	return c.buildCart(ctx, lines)
}

func (c *cartUseCaseImpl) AddItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*readmodel.CartRM, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := c.menuRepo.FindByID(ctx, menuItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find menu item")
	}
	if !item.InStock {
		return nil, ErrItemUnavailable
	}

	if err := c.cartRepo.Upsert(ctx, userID, menuItemID, quantity); err != nil {
		return nil, errs.Wrap(err, "failed to add cart item")
	}
	return c.GetCart(ctx, userID)
}

// UpdateItem sets the absolute quantity; zero removes the line.
func (c *cartUseCaseImpl) UpdateItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*readmodel.CartRM, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if quantity == 0 {
		if err := c.cartRepo.Remove(ctx, userID, menuItemID); err != nil {
			return nil, errs.Wrap(err, "failed to remove cart item")
		}
		return c.GetCart(ctx, userID)
	}

	if err := c.cartRepo.SetQuantity(ctx, userID, menuItemID, quantity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, errs.Wrap(err, "failed to update cart item")
	}
	return c.GetCart(ctx, userID)
}

func (c *cartUseCaseImpl) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := c.cartRepo.Clear(ctx, c.db, userID); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}

func (c *cartUseCaseImpl) buildCart(ctx context.Context, lines []readmodel.CartLineRM) (*readmodel.CartRM, error) {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
	}

	settings, err := c.settingsRepo.Effective(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load store settings")
	}

	delivery := decimal.Zero
	if len(lines) > 0 && subtotal.LessThan(settings.FreeDeliveryAbove) {
		delivery = settings.BaseDeliveryCharge
	}

	return &readmodel.CartRM{
		Items:           lines,
		Subtotal:        subtotal,
		DeliveryCharges: delivery,
		Total:           subtotal.Add(delivery),
	}, nil
}
