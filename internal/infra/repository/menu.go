package repository

import (
	"context"
	"strconv"

	"biryani-club/internal/domain/menu"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/pgconv"
	"biryani-club/internal/usecase"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

const menuItemColumns = `
	id, name, description, price, category, emoji,
	is_veg, is_popular, in_stock, created_at, updated_at`

func (r *MenuRepository) List(ctx context.Context, filter usecase.MenuFilter) ([]*readmodel.MenuItemRM, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE in_stock`
	var args []any
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filter.VegOnly != nil && *filter.VegOnly {
		query += ` AND is_veg`
	}
	query += ` ORDER BY category, name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	return scanMenuItems(rows)
}

func (r *MenuRepository) Popular(ctx context.Context) ([]*readmodel.MenuItemRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE is_popular AND in_stock
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list popular menu items", err)
	}
	return scanMenuItems(rows)
}

func (r *MenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MenuItemRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = $1`, id)

	rm, err := scanMenuItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return rm, nil
}

func (r *MenuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*readmodel.MenuItemRM, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find menu items by ids", err)
	}
	return scanMenuItems(rows)
}

func (r *MenuRepository) Create(ctx context.Context, item *menu.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, category, emoji, is_veg, is_popular, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID(), item.Name(), item.Description(), item.Price(), item.Category(),
		item.Emoji(), item.IsVeg(), item.IsPopular(), item.InStock())
	if err != nil {
		return infra.WrapRepoErr("failed to create menu item", err)
	}
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, id uuid.UUID, item *menu.Item) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category = $5,
			emoji = $6, is_veg = $7, updated_at = now()
		WHERE id = $1`,
		id, item.Name(), item.Description(), item.Price(), item.Category(),
		item.Emoji(), item.IsVeg())
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) SetStock(ctx context.Context, id uuid.UUID, inStock bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET in_stock = $2, updated_at = now() WHERE id = $1`,
		id, inStock)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*readmodel.MenuItemRM, error) {
	var rm readmodel.MenuItemRM
	if err := row.Scan(
		&rm.ID, &rm.Name, &rm.Description, &rm.Price, &rm.Category, &rm.Emoji,
		&rm.IsVeg, &rm.IsPopular, &rm.InStock, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}

func scanMenuItems(rows pgx.Rows) ([]*readmodel.MenuItemRM, error) {
	defer rows.Close()

	var items []*readmodel.MenuItemRM
	for rows.Next() {
		rm, err := scanMenuItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		items = append(items, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}
	return items, nil
}
