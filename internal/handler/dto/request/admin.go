package request

import (
	"time"

	"biryani-club/internal/usecase"

	"github.com/shopspring/decimal"
)

type PromotionRequest struct {
	Code             string           `json:"code" binding:"required,min=3,max=20"`
	Description      string           `json:"description" binding:"max=300"`
	DiscountType     string           `json:"discount_type" binding:"required,oneof=percentage fixed free_item_category"`
	DiscountValue    decimal.Decimal  `json:"discount_value" binding:"required"`
	MinOrderAmount   decimal.Decimal  `json:"min_order_amount"`
	MaxDiscount      *decimal.Decimal `json:"max_discount,omitempty"`
	UsageLimit       *int             `json:"usage_limit,omitempty"`
	FreeItemCategory *string          `json:"free_item_category,omitempty"`
	FreeItemQty      *int             `json:"free_item_qty,omitempty"`
	ExpiresAt        *time.Time       `json:"expires_at,omitempty"`
}

func (r *PromotionRequest) ToParams() usecase.PromotionParams {
	return usecase.PromotionParams{
		Code:             r.Code,
		Description:      r.Description,
		DiscountType:     r.DiscountType,
		DiscountValue:    r.DiscountValue,
		MinOrderAmount:   r.MinOrderAmount,
		MaxDiscount:      r.MaxDiscount,
		UsageLimit:       r.UsageLimit,
		FreeItemCategory: r.FreeItemCategory,
		FreeItemQty:      r.FreeItemQty,
		ExpiresAt:        r.ExpiresAt,
	}
}

type MenuItemRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required,max=50"`
	Emoji       string          `json:"emoji" binding:"max=10"`
	IsVeg       bool            `json:"is_veg"`
}

func (r *MenuItemRequest) ToParams() usecase.MenuItemParams {
	return usecase.MenuItemParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Emoji:       r.Emoji,
		IsVeg:       r.IsVeg,
	}
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type SetStockRequest struct {
	InStock *bool `json:"in_stock" binding:"required"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

type StoreOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}
