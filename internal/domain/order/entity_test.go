//go:build unit

package order_test

import (
	"testing"
	"time"

	"biryani-club/internal/domain/order"
	"biryani-club/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("total identity holds", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithItem("Chicken Biryani", "299", 2).
			WithItem("Gulab Jamun", "49", 1).
			WithDeliveryCharges("30").
			WithDiscount("100").
			BuildDomain()
		require.NoError(t, err)

		// 299*2 + 49 = 647
		assert.True(t, o.Subtotal().Equal(decimal.RequireFromString("647")))
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("577")))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("discount clamped to subtotal", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithItem("Gulab Jamun", "49", 1).
			WithDeliveryCharges("30").
			WithDiscount("500").
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, o.Discount().Equal(decimal.RequireFromString("49")))
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("30")))
		assert.False(t, o.TotalAmount().IsNegative())
	})

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := builder.NewOrderBuilder().BuildDomain()
		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("negative discount rejected", func(t *testing.T) {
		_, err := builder.NewOrderBuilder().
			WithItem("Chicken Biryani", "299", 1).
			WithDiscount("-10").
			BuildDomain()
		require.ErrorIs(t, err, order.ErrNegativeAmount)
	})
}

func TestCanCancel(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 3 * time.Minute

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := builder.NewOrderBuilder().
			WithItem("Chicken Biryani", "299", 1).
			WithCreatedAt(createdAt).
			BuildDomain()
		require.NoError(t, err)
		return o
	}

	t.Run("inside the window", func(t *testing.T) {
		o := newOrder(t)
		assert.NoError(t, o.CanCancel(createdAt.Add(2*time.Minute), window))
	})

	t.Run("exactly at the window boundary", func(t *testing.T) {
		o := newOrder(t)
		assert.NoError(t, o.CanCancel(createdAt.Add(window), window))
	})

	t.Run("after the window", func(t *testing.T) {
		o := newOrder(t)
		err := o.CanCancel(createdAt.Add(window+time.Second), window)
		assert.ErrorIs(t, err, order.ErrCancellationClosed)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to order.Status
		ok       bool
	}{
		{order.StatusPending, order.StatusConfirmed, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusDelivered, false},
		{order.StatusConfirmed, order.StatusPreparing, true},
		{order.StatusConfirmed, order.StatusCancelled, true},
		{order.StatusPreparing, order.StatusOutForDelivery, true},
		{order.StatusPreparing, order.StatusCancelled, false},
		{order.StatusOutForDelivery, order.StatusDelivered, true},
		{order.StatusDelivered, order.StatusPending, false},
		{order.StatusCancelled, order.StatusConfirmed, false},
	}

	for _, c := range cases {
		t.Run(string(c.from)+"_to_"+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestGenerateNumber(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := order.GenerateNumber("BC", now)
	assert.Regexp(t, `^BC-20250601-\d{4}$`, n)
}
