package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionRM struct {
	ID               uuid.UUID        `json:"id"`
	Code             string           `json:"code"`
	Description      string           `json:"description"`
	DiscountType     string           `json:"discount_type"`
	DiscountValue    decimal.Decimal  `json:"discount_value"`
	MinOrderAmount   decimal.Decimal  `json:"min_order_amount"`
	MaxDiscount      *decimal.Decimal `json:"max_discount,omitempty"`
	UsageLimit       *int             `json:"usage_limit,omitempty"`
	TimesUsed        int              `json:"times_used"`
	FreeItemCategory *string          `json:"free_item_category,omitempty"`
	FreeItemQty      *int             `json:"free_item_qty,omitempty"`
	IsActive         bool             `json:"is_active"`
	ExpiresAt        *time.Time       `json:"expires_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// OfferRM is the public storefront view of an active promotion.
type OfferRM struct {
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
}

// CouponValidationRM is the live-validation result. Business
// rejections come back as Valid=false with a message, never as errors.
type CouponValidationRM struct {
	Valid    bool            `json:"valid"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Discount decimal.Decimal `json:"discount"`
	NewTotal decimal.Decimal `json:"new_total"`
}

type CouponUsageRM struct {
	ID             uuid.UUID       `json:"id"`
	PromotionID    uuid.UUID       `json:"promotion_id"`
	CouponCode     string          `json:"coupon_code"`
	OrderID        uuid.UUID       `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	UserID         *uuid.UUID      `json:"user_id,omitempty"`
	GuestName      *string         `json:"guest_name,omitempty"`
	GuestPhone     *string         `json:"guest_phone,omitempty"`
	OrderSubtotal  decimal.Decimal `json:"order_subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountType   string          `json:"discount_type"`
	UsedAt         time.Time       `json:"used_at"`
}

type CouponStatRM struct {
	CouponCode    string          `json:"coupon_code"`
	Redemptions   int             `json:"redemptions"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

type UsageReportRM struct {
	TotalRedemptions int             `json:"total_redemptions"`
	TotalDiscount    decimal.Decimal `json:"total_discount"`
	TopCoupons       []CouponStatRM  `json:"top_coupons"`
	Recent           []CouponUsageRM `json:"recent"`
}
