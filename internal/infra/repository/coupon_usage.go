package repository

import (
	"context"
	"strconv"

	"biryani-club/internal/infra"
	"biryani-club/internal/infra/db"
	"biryani-club/internal/usecase"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CouponUsageRepository struct {
	pool *pgxpool.Pool
}

func NewCouponUsageRepository(pool *pgxpool.Pool) *CouponUsageRepository {
	return &CouponUsageRepository{pool: pool}
}

// ExistsForUser backs the one-use-per-registered-user rule. Guest
// redemptions never create a (user, promotion) pair, so guests are
// never blocked here.
func (r *CouponUsageRepository) ExistsForUser(ctx context.Context, userID, promotionID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM coupon_usages
			WHERE user_id = $1 AND promotion_id = $2
		)`, userID, promotionID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon usage", err)
	}
	return exists, nil
}

func (r *CouponUsageRepository) Insert(ctx context.Context, rec usecase.CouponUsageRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO coupon_usages (
			id, promotion_id, coupon_code, order_id, order_number, user_id,
			guest_name, guest_phone, order_subtotal, discount_amount, discount_type, used_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		uuid.New(), rec.PromotionID, rec.CouponCode, rec.OrderID, rec.OrderNumber,
		rec.UserID, rec.GuestName, rec.GuestPhone, rec.OrderSubtotal,
		rec.DiscountAmount, rec.DiscountType, rec.UsedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert coupon usage", err)
	}
	return nil
}

// DeleteForOrder releases the redemption on cancellation. The caller
// runs this inside the cancellation transaction.
func (r *CouponUsageRepository) DeleteForOrder(ctx context.Context, qx db.Queryer, orderID uuid.UUID) error {
	if qx == nil {
		qx = r.pool
	}
	_, err := qx.Exec(ctx, `DELETE FROM coupon_usages WHERE order_id = $1`, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon usage", err)
	}
	return nil
}

func (r *CouponUsageRepository) ListUsages(ctx context.Context, filter usecase.UsageFilter) ([]readmodel.CouponUsageRM, error) {
	query := `
		SELECT id, promotion_id, coupon_code, order_id, order_number, user_id,
			guest_name, guest_phone, order_subtotal, discount_amount, discount_type, used_at
		FROM coupon_usages
		WHERE true`
	args := []any{}

	if filter.CouponCode != nil {
		args = append(args, *filter.CouponCode)
		query += ` AND coupon_code = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND used_at >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND used_at < $` + strconv.Itoa(len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 25
	}
	args = append(args, limit)
	query += ` ORDER BY used_at DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon usages", err)
	}
	defer rows.Close()

	var usages []readmodel.CouponUsageRM
	for rows.Next() {
		var u readmodel.CouponUsageRM
		if err := rows.Scan(
			&u.ID, &u.PromotionID, &u.CouponCode, &u.OrderID, &u.OrderNumber,
			&u.UserID, &u.GuestName, &u.GuestPhone, &u.OrderSubtotal,
			&u.DiscountAmount, &u.DiscountType, &u.UsedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon usage", err)
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon usages", err)
	}
	return usages, nil
}

func (r *CouponUsageRepository) Totals(ctx context.Context) (int, decimal.Decimal, error) {
	var count int
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT count(*), coalesce(sum(discount_amount), 0)
		FROM coupon_usages`).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, infra.WrapRepoErr("failed to compute usage totals", err)
	}
	return count, total, nil
}

func (r *CouponUsageRepository) TopCoupons(ctx context.Context, n int) ([]readmodel.CouponStatRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT coupon_code, count(*), coalesce(sum(discount_amount), 0)
		FROM coupon_usages
		GROUP BY coupon_code
		ORDER BY count(*) DESC, coupon_code
		LIMIT $1`, n)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank coupons", err)
	}
	defer rows.Close()

	var stats []readmodel.CouponStatRM
	for rows.Next() {
		var s readmodel.CouponStatRM
		if err := rows.Scan(&s.CouponCode, &s.Redemptions, &s.TotalDiscount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon stat", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon stats", err)
	}
	return stats, nil
}
