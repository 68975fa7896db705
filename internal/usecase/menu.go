package usecase

import (
	"context"
	"errors"

	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuFilter struct {
	Category *string
	VegOnly  *bool
}

type MenuRepository interface {
	MenuItemReader
	List(ctx context.Context, filter MenuFilter) ([]*readmodel.MenuItemRM, error)
	Popular(ctx context.Context) ([]*readmodel.MenuItemRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MenuItemRM, error)
}

type MenuUseCase interface {
	ListMenu(ctx context.Context, filter MenuFilter) ([]*readmodel.MenuItemRM, error)
	PopularItems(ctx context.Context) ([]*readmodel.MenuItemRM, error)
}

type menuUseCaseImpl struct {
	menuRepo MenuRepository
}

func NewMenuUseCase(menuRepo MenuRepository) MenuUseCase {
	return &menuUseCaseImpl{menuRepo: menuRepo}
}

func (m *menuUseCaseImpl) ListMenu(ctx context.Context, filter MenuFilter) ([]*readmodel.MenuItemRM, error) {
	items, err := m.menuRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list menu items")
	}
	return items, nil
}

func (m *menuUseCaseImpl) PopularItems(ctx context.Context) ([]*readmodel.MenuItemRM, error) {
	items, err := m.menuRepo.Popular(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []*readmodel.MenuItemRM{}, nil
		}
		return nil, errs.Wrap(err, "failed to list popular items")
	}
	return items, nil
}
