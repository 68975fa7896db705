//go:build e2e

package checkout_test

import (
	"context"
	"net/http"
	"testing"

	"biryani-club/internal/handler/dto/request"
	"biryani-club/internal/handler/dto/response"
	"biryani-club/internal/usecase/readmodel"
	"biryani-club/tests/common/authtest"
	"biryani-club/tests/common/dbtest"
	"biryani-club/tests/common/httptest"
	"biryani-club/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL         = "/api/orders"
	validateCouponURL = "/api/coupons/validate"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) timesUsed(code string) int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(context.Background(),
		`SELECT times_used FROM promotions WHERE code = $1`, code).Scan(&n))
	return n
}

func (s *CheckoutSuite) placeOrderRequest(itemID uuid.UUID, qty int, coupon string) request.PlaceOrderRequest {
	req := request.PlaceOrderRequest{
		CustomerName:    "Walk-in Guest",
		CustomerPhone:   "9876543210",
		DeliveryAddress: "12 MG Road, Bengaluru",
		PaymentMethod:   "cash",
		Items: []request.OrderLineRequest{
			{MenuItemID: itemID, Quantity: qty},
		},
	}
	if coupon != "" {
		req.CouponCode = &coupon
	}
	return req
}

func (s *CheckoutSuite) TestPlaceOrder() {
	s.Run("guest checkout with a percentage coupon", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		dbtest.CreateTestPromotion(t, s.DB, "SAVE20", "percentage", "20", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 2, "SAVE20"), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.Number)
		require.True(t, created.Subtotal.Equal(decimal.RequireFromString("798")))
		// 20% of 798
		require.True(t, created.Discount.Equal(decimal.RequireFromString("159.6")), created.Discount.String())
		require.True(t, created.TotalAmount.Equal(created.Subtotal.Sub(created.Discount).Add(created.DeliveryCharges)))
		require.Equal(t, "pending", created.Status)

		// Tracking endpoint is public
		tw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+created.Number, nil, "")
		require.Equal(t, http.StatusOK, tw.Code)
	})

	s.Run("guests can reuse a coupon across orders", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		dbtest.CreateTestPromotion(t, s.DB, "SAVE20", "percentage", "20", nil)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
				s.placeOrderRequest(itemID, 1, "SAVE20"), "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
	})

	s.Run("registered user is blocked on second use of the same coupon", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		dbtest.CreateTestPromotion(t, s.DB, "ONETIME", "fixed", "50", nil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "regular@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "ONETIME"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "ONETIME"), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("cancelling the order releases the user's coupon slot", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		dbtest.CreateTestPromotion(t, s.DB, "COMEBACK", "fixed", "50", nil)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "returning@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "COMEBACK"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			ordersURL+"/"+created.Number+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, cw.Code, cw.Body.String())

		// Cancellation frees the personal slot but never refunds the
		// global counter.
		require.Equal(t, 1, s.timesUsed("COMEBACK"))

		// The coupon is usable again after cancellation
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "COMEBACK"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, 2, s.timesUsed("COMEBACK"))
	})

	s.Run("free-item coupon with no qualifying items keeps the slot free", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		dbtest.CreateTestFreeItemPromotion(t, s.DB, "SWEETTOOTH", "Desserts", 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "nodessert@example.com", "customer")

		// No dessert in the cart: the coupon applies but discounts nothing.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "SWEETTOOTH"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.True(t, created.Discount.IsZero(), created.Discount.String())

		var usages int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT count(*) FROM coupon_usages WHERE coupon_code = 'SWEETTOOTH'`).Scan(&usages))
		require.Equal(t, 0, usages)

		// The same user can still redeem it on an order that qualifies.
		dessertID := dbtest.CreateTestMenuItem(t, s.DB, "Rasmalai", "Desserts", "59")
		req := s.placeOrderRequest(itemID, 1, "SWEETTOOTH")
		req.Items = append(req.Items, request.OrderLineRequest{MenuItemID: dessertID, Quantity: 1})
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.True(t, created.Discount.Equal(decimal.RequireFromString("59")), created.Discount.String())
	})

	s.Run("usage limit is enforced across customers", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		limit := 1
		dbtest.CreateTestPromotion(t, s.DB, "LIMITED", "fixed", "50", &limit)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "LIMITED"), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, "LIMITED"), "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("subtotal below the store minimum is rejected", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Masala Chai", "Beverages", "20")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			s.placeOrderRequest(itemID, 1, ""), "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *CheckoutSuite) TestValidateCoupon() {
	s.Run("preview never consumes the coupon", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
		limit := 1
		dbtest.CreateTestPromotion(t, s.DB, "PREVIEW", "percentage", "10", &limit)

		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateCouponURL,
				request.ValidateCouponRequest{
					Code:  "PREVIEW",
					Items: []request.OrderLineRequest{{MenuItemID: itemID, Quantity: 1}},
				}, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res readmodel.CouponValidationRM
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.True(t, res.Valid)
			require.True(t, res.Discount.Equal(decimal.RequireFromString("39.9")), res.Discount.String())
		}
	})

	s.Run("unknown coupon is a polite rejection, not an error", func() {
		t := s.T()

		itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateCouponURL,
			request.ValidateCouponRequest{
				Code:  "NOPE123",
				Items: []request.OrderLineRequest{{MenuItemID: itemID, Quantity: 1}},
			}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res readmodel.CouponValidationRM
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.False(t, res.Valid)
		require.Equal(t, "Coupon not found", res.Message)
	})
}
