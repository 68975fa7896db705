package promotion

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInactive      = errors.New("promotion is inactive")
	ErrExpired       = errors.New("promotion has expired")
	ErrUsageExceeded = errors.New("promotion usage limit reached")
)

// ValidityReason reports why a promotion cannot be applied. The check
// order matters for user-facing messages: deactivation is reported
// before expiry, expiry before the usage cap.
type ValidityReason string

const (
	ReasonValid         ValidityReason = "valid"
	ReasonInactive      ValidityReason = "inactive"
	ReasonExpired       ValidityReason = "expired"
	ReasonUsageExceeded ValidityReason = "usage limit reached"
)

type Promotion struct {
	id               uuid.UUID
	code             Code
	description      string
	discountType     DiscountType
	discountValue    decimal.Decimal
	minOrderAmount   decimal.Decimal
	maxDiscount      *decimal.Decimal
	usageLimit       *int
	timesUsed        int
	freeItemCategory *string
	freeItemQty      *int
	isActive         bool
	expiresAt        *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPromotion(
	code Code,
	description string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	minOrderAmount decimal.Decimal,
	maxDiscount *decimal.Decimal,
	usageLimit *int,
	freeItemCategory *string,
	freeItemQty *int,
	expiresAt *time.Time,
) (*Promotion, error) {
	if discountValue.IsNegative() {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountPercentage && discountValue.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountFreeItemCategory {
		if freeItemCategory == nil || *freeItemCategory == "" {
			return nil, ErrInvalidDiscountType
		}
		if freeItemQty == nil || *freeItemQty <= 0 {
			return nil, ErrInvalidFreeItemQty
		}
	}

	return &Promotion{
		id:               uuid.New(),
		code:             code,
		description:      description,
		discountType:     discountType,
		discountValue:    discountValue,
		minOrderAmount:   minOrderAmount,
		maxDiscount:      maxDiscount,
		usageLimit:       usageLimit,
		freeItemCategory: freeItemCategory,
		freeItemQty:      freeItemQty,
		isActive:         true,
		expiresAt:        expiresAt,
	}, nil
}

// Reconstruct rebuilds a Promotion from persisted state without
// re-running creation validation.
func Reconstruct(
	id uuid.UUID,
	code Code,
	description string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	minOrderAmount decimal.Decimal,
	maxDiscount *decimal.Decimal,
	usageLimit *int,
	timesUsed int,
	freeItemCategory *string,
	freeItemQty *int,
	isActive bool,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:               id,
		code:             code,
		description:      description,
		discountType:     discountType,
		discountValue:    discountValue,
		minOrderAmount:   minOrderAmount,
		maxDiscount:      maxDiscount,
		usageLimit:       usageLimit,
		timesUsed:        timesUsed,
		freeItemCategory: freeItemCategory,
		freeItemQty:      freeItemQty,
		isActive:         isActive,
		expiresAt:        expiresAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Validity checks is_active, then expiry, then the usage cap, and
// returns the first failing reason.
func (p *Promotion) Validity(now time.Time) ValidityReason {
	if !p.isActive {
		return ReasonInactive
	}
	if p.expiresAt != nil && now.After(*p.expiresAt) {
		return ReasonExpired
	}
	if p.usageLimit != nil && p.timesUsed >= *p.usageLimit {
		return ReasonUsageExceeded
	}
	return ReasonValid
}

func (p *Promotion) ValidateUsage(now time.Time) error {
	switch p.Validity(now) {
	case ReasonInactive:
		return ErrInactive
	case ReasonExpired:
		return ErrExpired
	case ReasonUsageExceeded:
		return ErrUsageExceeded
	}
	return nil
}

// MeetsMinimum reports whether the subtotal qualifies, and the
// shortfall when it does not.
func (p *Promotion) MeetsMinimum(subtotal decimal.Decimal) (bool, decimal.Decimal) {
	if subtotal.GreaterThanOrEqual(p.minOrderAmount) {
		return true, decimal.Zero
	}
	return false, p.minOrderAmount.Sub(subtotal)
}

// DiscountResult carries the computed amount plus the metadata snapshot
// recorded on the usage row.
type DiscountResult struct {
	Amount   decimal.Decimal
	Type     DiscountType
	Value    decimal.Decimal
	Category string
	FreeQty  int
}

// CalculateDiscount computes the discount for the given subtotal and
// cart lines. The caller must have already enforced min_order_amount.
// The returned amount is always >= 0 and <= subtotal.
func (p *Promotion) CalculateDiscount(subtotal decimal.Decimal, lines []CartLine) DiscountResult {
	switch p.discountType {
	case DiscountPercentage:
		return p.percentageDiscount(subtotal)
	case DiscountFixed:
		return p.fixedDiscount(subtotal)
	case DiscountFreeItemCategory:
		return p.freeItemDiscount(subtotal, lines)
	default:
		return DiscountResult{Amount: decimal.Zero, Type: p.discountType}
	}
}

func (p *Promotion) percentageDiscount(subtotal decimal.Decimal) DiscountResult {
	amount := subtotal.Mul(p.discountValue).Div(decimal.NewFromInt(100))
	if p.maxDiscount != nil && amount.GreaterThan(*p.maxDiscount) {
		amount = *p.maxDiscount
	}
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	return DiscountResult{Amount: amount, Type: DiscountPercentage, Value: p.discountValue}
}

func (p *Promotion) fixedDiscount(subtotal decimal.Decimal) DiscountResult {
	amount := p.discountValue
	if p.maxDiscount != nil && amount.GreaterThan(*p.maxDiscount) {
		amount = *p.maxDiscount
	}
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	return DiscountResult{Amount: amount, Type: DiscountFixed, Value: p.discountValue}
}

// freeItemDiscount zeroes out the cheapest qualifying units first, so
// the merchant gives away as little as possible. Partial line
// quantities are allowed. A cart with no matching category items yields
// qty 0 and a zero amount; that is surfaced to the caller, not an
// error.
func (p *Promotion) freeItemDiscount(subtotal decimal.Decimal, lines []CartLine) DiscountResult {
	result := DiscountResult{
		Amount: decimal.Zero,
		Type:   DiscountFreeItemCategory,
	}
	if p.freeItemCategory == nil || p.freeItemQty == nil {
		return result
	}
	result.Category = *p.freeItemCategory

	candidates := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Category == *p.freeItemCategory && l.Quantity > 0 {
			candidates = append(candidates, l)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].UnitPrice.LessThan(candidates[j].UnitPrice)
	})

	remaining := *p.freeItemQty
	amount := decimal.Zero
	granted := 0
	for _, l := range candidates {
		if remaining == 0 {
			break
		}
		take := l.Quantity
		if take > remaining {
			take = remaining
		}
		amount = amount.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(take))))
		granted += take
		remaining -= take
	}

	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	result.Amount = amount
	result.FreeQty = granted
	return result
}

func (p *Promotion) Activate()   { p.isActive = true }
func (p *Promotion) Deactivate() { p.isActive = false }

func (p *Promotion) ID() uuid.UUID                  { return p.id }
func (p *Promotion) Code() Code                     { return p.code }
func (p *Promotion) Description() string            { return p.description }
func (p *Promotion) DiscountType() DiscountType     { return p.discountType }
func (p *Promotion) DiscountValue() decimal.Decimal { return p.discountValue }
func (p *Promotion) MinOrderAmount() decimal.Decimal {
	return p.minOrderAmount
}
func (p *Promotion) MaxDiscount() *decimal.Decimal { return p.maxDiscount }
func (p *Promotion) UsageLimit() *int              { return p.usageLimit }
func (p *Promotion) TimesUsed() int                { return p.timesUsed }
func (p *Promotion) FreeItemCategory() *string     { return p.freeItemCategory }
func (p *Promotion) FreeItemQty() *int             { return p.freeItemQty }
func (p *Promotion) IsActive() bool                { return p.isActive }
func (p *Promotion) ExpiresAt() *time.Time         { return p.expiresAt }
func (p *Promotion) CreatedAt() time.Time          { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time          { return p.updatedAt }
