//go:build e2e

package delivery_test

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

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const deliveryOrdersURL = "/api/delivery/orders"

type DeliverySuite struct {
	e2e.SharedSuite
}

func (s *DeliverySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDeliverySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DeliverySuite))
}

// placeConfirmedOrder creates a guest order and confirms it the way the
// kitchen would, returning its number.
func (s *DeliverySuite) placeConfirmedOrder() string {
	t := s.T()

	itemID := dbtest.CreateTestMenuItem(t, s.DB, "Mutton Biryani", "Biryani", "399")
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders",
		request.PlaceOrderRequest{
			CustomerName:    "Walk-in Guest",
			CustomerPhone:   "9876543210",
			DeliveryAddress: "12 MG Road, Bengaluru",
			PaymentMethod:   "cash",
			Items: []request.OrderLineRequest{
				{MenuItemID: itemID, Quantity: 1},
			},
		}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	_, err := s.DB.Exec(context.Background(),
		`UPDATE orders SET status = 'confirmed' WHERE order_number = $1`, created.Number)
	require.NoError(t, err)

	return created.Number
}

func (s *DeliverySuite) orderStatus(number string) string {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+number, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rm response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rm))
	return rm.Status
}

func (s *DeliverySuite) TestClaimFlow() {
	s.Run("confirmed orders are visible and claiming starts preparation", func() {
		t := s.T()

		number := s.placeConfirmedOrder()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "rider@example.com", "delivery")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, deliveryOrdersURL+"/available", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var available []readmodel.OrderListRM
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &available))
		numbers := make([]string, 0, len(available))
		for _, o := range available {
			numbers = append(numbers, o.Number)
		}
		require.Contains(t, numbers, number)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			deliveryOrdersURL+"/"+number+"/claim", nil, token)
		require.Equal(t, http.StatusNoContent, cw.Code, cw.Body.String())
		require.Equal(t, "preparing", s.orderStatus(number))
	})

	s.Run("a claimed order cannot be claimed twice", func() {
		t := s.T()

		number := s.placeConfirmedOrder()
		first := authtest.CreateAndLogin(t, s.DB, s.Router, "rider-one@example.com", "delivery")
		second := authtest.CreateAndLogin(t, s.DB, s.Router, "rider-two@example.com", "delivery")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			deliveryOrdersURL+"/"+number+"/claim", nil, first)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			deliveryOrdersURL+"/"+number+"/claim", nil, second)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("claimed order runs pickup and handover to delivered", func() {
		t := s.T()

		number := s.placeConfirmedOrder()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "rider@example.com", "delivery")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			deliveryOrdersURL+"/"+number+"/claim", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			deliveryOrdersURL+"/"+number+"/pickup", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "out_for_delivery", s.orderStatus(number))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			deliveryOrdersURL+"/"+number+"/complete", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "delivered", s.orderStatus(number))

		// Cash is collected on handover.
		var paymentStatus string
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT payment_status FROM orders WHERE order_number = $1`, number).Scan(&paymentStatus))
		require.Equal(t, "paid", paymentStatus)
	})
}
