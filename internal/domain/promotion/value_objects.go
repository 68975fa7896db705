package promotion

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode          = errors.New("invalid promo code format")
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
	ErrInvalidFreeItemQty   = errors.New("free item quantity must be positive")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is stored and compared upper-cased; customers may type it in
// any case.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage       DiscountType = "percentage"
	DiscountFixed            DiscountType = "fixed"
	DiscountFreeItemCategory DiscountType = "free_item_category"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed, DiscountFreeItemCategory:
		return true
	default:
		return false
	}
}

func NewDiscountType(s string) (DiscountType, error) {
	t := DiscountType(s)
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

// CartLine is the slice of an order the evaluator needs: what category
// a line belongs to, what one unit costs, and how many units there are.
type CartLine struct {
	MenuItemID uuid.UUID
	Name       string
	Category   string
	UnitPrice  decimal.Decimal
	Quantity   int
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
