//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"biryani-club/internal/domain/promotion"
	"biryani-club/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PromotionBuilder)
	errIs  error
}

func TestNewPromotion(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPromotionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, actual.IsActive())
		assert.Equal(t, 0, actual.TimesUsed())
	})

	t.Run("discount value validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "positive percentage ok",
				mutate: func(b *builder.PromotionBuilder) { b.Percentage("20") },
			},
			{
				name:   "negative value rejected",
				mutate: func(b *builder.PromotionBuilder) { b.Percentage("-5") },
				errIs:  promotion.ErrInvalidDiscountValue,
			},
			{
				name:   "percentage above 100 rejected",
				mutate: func(b *builder.PromotionBuilder) { b.Percentage("120") },
				errIs:  promotion.ErrInvalidDiscountValue,
			},
			{
				name:   "fixed value above 100 ok",
				mutate: func(b *builder.PromotionBuilder) { b.Fixed("150") },
			},
		})
	})

	t.Run("free item validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "category and qty ok",
				mutate: func(b *builder.PromotionBuilder) { b.FreeItem("Desserts", 1) },
			},
			{
				name:   "zero qty rejected",
				mutate: func(b *builder.PromotionBuilder) { b.FreeItem("Desserts", 0) },
				errIs:  promotion.ErrInvalidFreeItemQty,
			},
			{
				name:   "empty category rejected",
				mutate: func(b *builder.PromotionBuilder) { b.FreeItem("", 1) },
				errIs:  promotion.ErrInvalidDiscountType,
			},
		})
	})
}

func TestNewCode(t *testing.T) {
	t.Run("lowercase input is upper-cased", func(t *testing.T) {
		code, err := promotion.NewCode("welcome50")
		require.NoError(t, err)
		assert.Equal(t, "WELCOME50", code.String())
	})

	t.Run("too short rejected", func(t *testing.T) {
		_, err := promotion.NewCode("AB")
		require.ErrorIs(t, err, promotion.ErrInvalidCode)
	})

	t.Run("special characters rejected", func(t *testing.T) {
		_, err := promotion.NewCode("SAVE-20")
		require.ErrorIs(t, err, promotion.ErrInvalidCode)
	})
}

func TestValidity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name   string
		mutate func(*builder.PromotionBuilder)
		want   promotion.ValidityReason
	}{
		{
			name:   "active and unexpired is valid",
			mutate: func(b *builder.PromotionBuilder) { b.WithExpiresAt(&future) },
			want:   promotion.ReasonValid,
		},
		{
			name:   "no expiry means never expires",
			mutate: func(b *builder.PromotionBuilder) { b.WithExpiresAt(nil) },
			want:   promotion.ReasonValid,
		},
		{
			name:   "inactive",
			mutate: func(b *builder.PromotionBuilder) { b.Inactive() },
			want:   promotion.ReasonInactive,
		},
		{
			name:   "expired",
			mutate: func(b *builder.PromotionBuilder) { b.WithExpiresAt(&past) },
			want:   promotion.ReasonExpired,
		},
		{
			name:   "usage limit reached",
			mutate: func(b *builder.PromotionBuilder) { b.WithUsage(5, 5) },
			want:   promotion.ReasonUsageExceeded,
		},
		{
			name:   "under usage limit is valid",
			mutate: func(b *builder.PromotionBuilder) { b.WithUsage(5, 4) },
			want:   promotion.ReasonValid,
		},
		{
			name: "inactive and expired reports inactive first",
			mutate: func(b *builder.PromotionBuilder) {
				b.Inactive()
				b.WithExpiresAt(&past)
			},
			want: promotion.ReasonInactive,
		},
		{
			name: "expired and exhausted reports expired first",
			mutate: func(b *builder.PromotionBuilder) {
				b.WithExpiresAt(&past)
				b.WithUsage(1, 1)
			},
			want: promotion.ReasonExpired,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := builder.NewPromotionBuilder().With(c.mutate).Reconstruct()
			assert.Equal(t, c.want, p.Validity(now))
		})
	}
}

func TestMeetsMinimum(t *testing.T) {
	p := builder.NewPromotionBuilder().
		With(func(b *builder.PromotionBuilder) { b.WithMinOrderAmount("200") }).
		Reconstruct()

	t.Run("at threshold qualifies", func(t *testing.T) {
		ok, shortfall := p.MeetsMinimum(decimal.RequireFromString("200"))
		assert.True(t, ok)
		assert.True(t, shortfall.IsZero())
	})

	t.Run("below threshold reports shortfall", func(t *testing.T) {
		ok, shortfall := p.MeetsMinimum(decimal.RequireFromString("150"))
		assert.False(t, ok)
		assert.Equal(t, "50", shortfall.String())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPromotionBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
