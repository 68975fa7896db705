package repository

import (
	"context"
	"time"

	"biryani-club/internal/domain/promotion"
	"biryani-club/internal/infra"
	"biryani-club/internal/infra/db"
	"biryani-club/internal/pkg/pgconv"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

const promotionColumns = `
	id, code, description, discount_type, discount_value, min_order_amount,
	max_discount, usage_limit, times_used, free_item_category, free_item_qty,
	is_active, expires_at, created_at, updated_at`

func (r *PromotionRepository) FindByCode(ctx context.Context, code promotion.Code) (*promotion.Promotion, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE code = $1`, code.String())

	p, err := scanPromotion(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by code", err)
	}
	return p, nil
}

func (r *PromotionRepository) FindActiveOffers(ctx context.Context, limit int) ([]*readmodel.OfferRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT code, description, discount_type, discount_value, min_order_amount, expires_at
		FROM promotions
		WHERE is_active
		  AND (expires_at IS NULL OR expires_at > now())
		  AND (usage_limit IS NULL OR times_used < usage_limit)
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active offers", err)
	}
	defer rows.Close()

	var offers []*readmodel.OfferRM
	for rows.Next() {
		var o readmodel.OfferRM
		if err := rows.Scan(&o.Code, &o.Description, &o.DiscountType, &o.DiscountValue, &o.MinOrderAmount, &o.ExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		offers = append(offers, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return offers, nil
}

// IncrementUsage is the guard against overselling a usage-limited
// coupon: the counter only moves while it is under the limit, in the
// same transaction that creates the order.
func (r *PromotionRepository) IncrementUsage(ctx context.Context, qx db.Queryer, id uuid.UUID) (bool, error) {
	if qx == nil {
		qx = r.pool
	}
	tag, err := qx.Exec(ctx, `
		UPDATE promotions
		SET times_used = times_used + 1, updated_at = now()
		WHERE id = $1
		  AND (usage_limit IS NULL OR times_used < usage_limit)`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment promotion usage", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO promotions (
			id, code, description, discount_type, discount_value, min_order_amount,
			max_discount, usage_limit, times_used, free_item_category, free_item_qty,
			is_active, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID(), p.Code().String(), p.Description(), p.DiscountType().String(),
		p.DiscountValue(), p.MinOrderAmount(), pgconv.NullDecimal(p.MaxDiscount()),
		p.UsageLimit(), p.TimesUsed(), p.FreeItemCategory(), p.FreeItemQty(),
		p.IsActive(), p.ExpiresAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("promo code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

// Update rewrites the rule definition; times_used is deliberately left
// untouched.
func (r *PromotionRepository) Update(ctx context.Context, id uuid.UUID, p *promotion.Promotion) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE promotions
		SET code = $2, description = $3, discount_type = $4, discount_value = $5,
			min_order_amount = $6, max_discount = $7, usage_limit = $8,
			free_item_category = $9, free_item_qty = $10, expires_at = $11,
			updated_at = now()
		WHERE id = $1`,
		id, p.Code().String(), p.Description(), p.DiscountType().String(),
		p.DiscountValue(), p.MinOrderAmount(), pgconv.NullDecimal(p.MaxDiscount()),
		p.UsageLimit(), p.FreeItemCategory(), p.FreeItemQty(), p.ExpiresAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE promotions SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) List(ctx context.Context) ([]*readmodel.PromotionRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+promotionColumns+`
		FROM promotions
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	defer rows.Close()

	var promos []*readmodel.PromotionRM
	for rows.Next() {
		var rm readmodel.PromotionRM
		var maxDiscount decimal.NullDecimal
		var usageLimit, freeItemQty *int32
		if err := rows.Scan(
			&rm.ID, &rm.Code, &rm.Description, &rm.DiscountType, &rm.DiscountValue,
			&rm.MinOrderAmount, &maxDiscount, &usageLimit, &rm.TimesUsed,
			&rm.FreeItemCategory, &freeItemQty, &rm.IsActive, &rm.ExpiresAt,
			&rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion", err)
		}
		rm.MaxDiscount = pgconv.DecimalPtr(maxDiscount)
		rm.UsageLimit = int32PtrToIntPtr(usageLimit)
		rm.FreeItemQty = int32PtrToIntPtr(freeItemQty)
		promos = append(promos, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read promotions", err)
	}
	return promos, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPromotion(row rowScanner) (*promotion.Promotion, error) {
	var (
		id               uuid.UUID
		code             string
		description      string
		discountType     string
		discountValue    decimal.Decimal
		minOrderAmount   decimal.Decimal
		maxDiscount      decimal.NullDecimal
		usageLimit       *int32
		timesUsed        int
		freeItemCategory *string
		freeItemQty      *int32
		isActive         bool
		expiresAt        *time.Time
		createdAt        time.Time
		updatedAt        time.Time
	)
	if err := row.Scan(
		&id, &code, &description, &discountType, &discountValue, &minOrderAmount,
		&maxDiscount, &usageLimit, &timesUsed, &freeItemCategory, &freeItemQty,
		&isActive, &expiresAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return promotion.Reconstruct(
		id,
		promotion.Code(code),
		description,
		promotion.DiscountType(discountType),
		discountValue,
		minOrderAmount,
		pgconv.DecimalPtr(maxDiscount),
		int32PtrToIntPtr(usageLimit),
		timesUsed,
		freeItemCategory,
		int32PtrToIntPtr(freeItemQty),
		isActive,
		expiresAt,
		createdAt,
		updatedAt,
	), nil
}

func int32PtrToIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
