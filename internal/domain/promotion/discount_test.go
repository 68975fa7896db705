//go:build unit

package promotion_test

import (
	"testing"

	"biryani-club/internal/domain/promotion"
	"biryani-club/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(category, unitPrice string, qty int) promotion.CartLine {
	return promotion.CartLine{
		MenuItemID: uuid.New(),
		Name:       category + " item",
		Category:   category,
		UnitPrice:  d(unitPrice),
		Quantity:   qty,
	}
}

func TestCalculateDiscount_Percentage(t *testing.T) {
	t.Run("no cap returns exact percentage", func(t *testing.T) {
		p := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.Percentage("20") }).
			Reconstruct()

		res := p.CalculateDiscount(d("500"), nil)
		assert.True(t, res.Amount.Equal(d("100")), "got %s", res.Amount)
		assert.Equal(t, promotion.DiscountPercentage, res.Type)
		assert.True(t, res.Value.Equal(d("20")))
	})

	t.Run("capped by max_discount", func(t *testing.T) {
		p := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.Percentage("20")
				b.WithMaxDiscount("200")
			}).
			Reconstruct()

		// raw would be 1000
		res := p.CalculateDiscount(d("5000"), nil)
		assert.True(t, res.Amount.Equal(d("200")), "got %s", res.Amount)
	})

	t.Run("fractional subtotal", func(t *testing.T) {
		p := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.Percentage("10") }).
			Reconstruct()

		res := p.CalculateDiscount(d("249.50"), nil)
		assert.True(t, res.Amount.Equal(d("24.95")), "got %s", res.Amount)
	})
}

func TestCalculateDiscount_Fixed(t *testing.T) {
	t.Run("flat amount off", func(t *testing.T) {
		p := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.Fixed("50") }).
			Reconstruct()

		res := p.CalculateDiscount(d("300"), nil)
		assert.True(t, res.Amount.Equal(d("50")))
		assert.Equal(t, promotion.DiscountFixed, res.Type)
	})

	t.Run("never exceeds subtotal", func(t *testing.T) {
		p := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.Fixed("50") }).
			Reconstruct()

		res := p.CalculateDiscount(d("30"), nil)
		assert.True(t, res.Amount.Equal(d("30")), "got %s", res.Amount)
	})
}

func TestCalculateDiscount_FreeItemCategory(t *testing.T) {
	newFreeItem := func(category string, qty int) *promotion.Promotion {
		return builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.FreeItem(category, qty) }).
			Reconstruct()
	}

	t.Run("cheapest qualifying unit is free", func(t *testing.T) {
		p := newFreeItem("Desserts", 1)
		lines := []promotion.CartLine{
			line("Desserts", "69", 1),
			line("Desserts", "49", 1),
			line("Biryani", "299", 2),
		}

		res := p.CalculateDiscount(d("716"), lines)
		assert.True(t, res.Amount.Equal(d("49")), "got %s", res.Amount)
		assert.Equal(t, 1, res.FreeQty)
		assert.Equal(t, "Desserts", res.Category)
	})

	t.Run("partial line quantities allowed", func(t *testing.T) {
		p := newFreeItem("Desserts", 3)
		lines := []promotion.CartLine{
			line("Desserts", "49", 2),
			line("Desserts", "69", 2),
		}

		// 2x49 + 1x69
		res := p.CalculateDiscount(d("236"), lines)
		assert.True(t, res.Amount.Equal(d("167")), "got %s", res.Amount)
		assert.Equal(t, 3, res.FreeQty)
	})

	t.Run("fewer matching units than quota", func(t *testing.T) {
		p := newFreeItem("Desserts", 5)
		lines := []promotion.CartLine{
			line("Desserts", "49", 2),
		}

		res := p.CalculateDiscount(d("98"), lines)
		assert.True(t, res.Amount.Equal(d("98")), "got %s", res.Amount)
		assert.Equal(t, 2, res.FreeQty)
	})

	t.Run("no matching category yields zero and qty 0", func(t *testing.T) {
		p := newFreeItem("Desserts", 1)
		lines := []promotion.CartLine{
			line("Biryani", "299", 2),
		}

		res := p.CalculateDiscount(d("598"), lines)
		assert.True(t, res.Amount.IsZero())
		assert.Equal(t, 0, res.FreeQty)
	})

	t.Run("empty cart yields zero", func(t *testing.T) {
		p := newFreeItem("Desserts", 1)

		res := p.CalculateDiscount(d("0"), nil)
		assert.True(t, res.Amount.IsZero())
		assert.Equal(t, 0, res.FreeQty)
	})
}
