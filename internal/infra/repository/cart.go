package repository

import (
	"context"

	"biryani-club/internal/infra"
	"biryani-club/internal/infra/db"
	"biryani-club/internal/pkg/pgconv"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]readmodel.CartLineRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.menu_item_id, m.name, m.category, m.price, c.quantity
		FROM cart_items c
		JOIN menu_items m ON m.id = c.menu_item_id
		WHERE c.user_id = $1
		ORDER BY c.added_at`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err)
	}
	defer rows.Close()

	var lines []readmodel.CartLineRM
	for rows.Next() {
		var l readmodel.CartLineRM
		if err := rows.Scan(&l.MenuItemID, &l.Name, &l.Category, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		l.LineTotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	return lines, nil
}

func (r *CartRepository) Upsert(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cart_items (id, user_id, menu_item_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, menu_item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		uuid.New(), userID, menuItemID, quantity)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("cart references missing menu item", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return nil
}

func (r *CartRepository) SetQuantity(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cart_items SET quantity = $3
		WHERE user_id = $1 AND menu_item_id = $2`,
		userID, menuItemID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, menuItemID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items WHERE user_id = $1 AND menu_item_id = $2`,
		userID, menuItemID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart item", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, qx db.Queryer, userID uuid.UUID) error {
	if qx == nil {
		qx = r.pool
	}

	_, err := qx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
