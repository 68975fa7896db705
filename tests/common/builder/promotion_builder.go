//go:build unit || e2e

package builder

import (
	"time"

	dompromotion "biryani-club/internal/domain/promotion"
	reqdto "biryani-club/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionBuilder struct {
	ID               uuid.UUID
	Code             string
	Description      string
	DiscountType     dompromotion.DiscountType
	DiscountValue    string
	MinOrderAmount   string
	MaxDiscount      *string
	UsageLimit       *int
	TimesUsed        int
	FreeItemCategory *string
	FreeItemQty      *int
	IsActive         bool
	ExpiresAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now()
	return &PromotionBuilder{
		ID:             uuid.New(),
		Code:           "WELCOME50",
		Description:    "Test promotion",
		DiscountType:   dompromotion.DiscountPercentage,
		DiscountValue:  "10",
		MinOrderAmount: "0",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PromotionBuilder) BuildDomain() (*dompromotion.Promotion, error) {
	code, err := dompromotion.NewCode(p.Code)
	if err != nil {
		return nil, err
	}
	return dompromotion.NewPromotion(
		code,
		p.Description,
		p.DiscountType,
		decimal.RequireFromString(p.DiscountValue),
		decimal.RequireFromString(p.MinOrderAmount),
		p.maxDiscount(),
		p.UsageLimit,
		p.FreeItemCategory,
		p.FreeItemQty,
		p.ExpiresAt,
	)
}

// Reconstruct builds the promotion as loaded from the database,
// bypassing creation validation.
func (p *PromotionBuilder) Reconstruct() *dompromotion.Promotion {
	code, err := dompromotion.NewCode(p.Code)
	if err != nil {
		panic(err)
	}
	return dompromotion.Reconstruct(
		p.ID,
		code,
		p.Description,
		p.DiscountType,
		decimal.RequireFromString(p.DiscountValue),
		decimal.RequireFromString(p.MinOrderAmount),
		p.maxDiscount(),
		p.UsageLimit,
		p.TimesUsed,
		p.FreeItemCategory,
		p.FreeItemQty,
		p.IsActive,
		p.ExpiresAt,
		p.CreatedAt,
		p.UpdatedAt,
	)
}

func (p *PromotionBuilder) BuildRequestDTO() reqdto.PromotionRequest {
	return reqdto.PromotionRequest{
		Code:             p.Code,
		Description:      p.Description,
		DiscountType:     p.DiscountType.String(),
		DiscountValue:    decimal.RequireFromString(p.DiscountValue),
		MinOrderAmount:   decimal.RequireFromString(p.MinOrderAmount),
		MaxDiscount:      p.maxDiscount(),
		UsageLimit:       p.UsageLimit,
		FreeItemCategory: p.FreeItemCategory,
		FreeItemQty:      p.FreeItemQty,
		ExpiresAt:        p.ExpiresAt,
	}
}

func (p *PromotionBuilder) maxDiscount() *decimal.Decimal {
	if p.MaxDiscount == nil {
		return nil
	}
	v := decimal.RequireFromString(*p.MaxDiscount)
	return &v
}

// Fluent builder methods
func (p *PromotionBuilder) Percentage(value string) *PromotionBuilder {
	p.DiscountType = dompromotion.DiscountPercentage
	p.DiscountValue = value
	return p
}

func (p *PromotionBuilder) Fixed(value string) *PromotionBuilder {
	p.DiscountType = dompromotion.DiscountFixed
	p.DiscountValue = value
	return p
}

func (p *PromotionBuilder) FreeItem(category string, qty int) *PromotionBuilder {
	p.DiscountType = dompromotion.DiscountFreeItemCategory
	p.DiscountValue = "0"
	p.FreeItemCategory = &category
	p.FreeItemQty = &qty
	return p
}

func (p *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	p.Code = code
	return p
}

func (p *PromotionBuilder) WithMinOrderAmount(amount string) *PromotionBuilder {
	p.MinOrderAmount = amount
	return p
}

func (p *PromotionBuilder) WithMaxDiscount(amount string) *PromotionBuilder {
	p.MaxDiscount = &amount
	return p
}

func (p *PromotionBuilder) WithUsage(limit, used int) *PromotionBuilder {
	p.UsageLimit = &limit
	p.TimesUsed = used
	return p
}

func (p *PromotionBuilder) WithExpiresAt(expiresAt *time.Time) *PromotionBuilder {
	p.ExpiresAt = expiresAt
	return p
}

func (p *PromotionBuilder) Inactive() *PromotionBuilder {
	p.IsActive = false
	return p
}
