//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/handler/api"
	resdto "biryani-club/internal/handler/dto/response"
	"biryani-club/internal/usecase"
	"biryani-club/internal/usecase/readmodel"
	"biryani-club/tests/common/builder"
	"biryani-club/tests/common/httptest"
	"biryani-club/tests/common/testutil"
	usecasemock "biryani-club/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *usecasemock.MockCheckoutUseCase
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = usecasemock.NewMockCheckoutUseCase(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCheckout)

	s.router.POST("/orders", s.handler.PlaceOrder)
	s.router.GET("/orders/:number", s.handler.GetOrder)
	s.router.POST("/orders/:number/cancel", s.handler.CancelOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func sampleOrderRM() *readmodel.OrderRM {
	return &readmodel.OrderRM{
		ID:              uuid.New(),
		Number:          "BC-20250601-0001",
		CustomerName:    "Test Customer",
		CustomerPhone:   "9876543210",
		DeliveryAddress: "12 MG Road, Bengaluru",
		Subtotal:        decimal.RequireFromString("647"),
		DeliveryCharges: decimal.RequireFromString("0"),
		Discount:        decimal.RequireFromString("100"),
		TotalAmount:     decimal.RequireFromString("547"),
		PaymentMethod:   "cash",
		PaymentStatus:   "pending",
		Status:          "pending",
		Progress:        10,
	}
}

func (s *OrderHandlerTestSuite) TestPlaceOrder() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().
		WithItem("Chicken Biryani", "299", 2).
		BuildPlaceRequestDTO()

	s.Run("success: returns 201 Created with the order view", func() {
		s.mockCheckout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(sampleOrderRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("BC-20250601-0001", response.Number)
		s.Equal(10, response.Progress)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing customer name", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing phone", mutate: testutil.Field("customer_phone", nil), expectCode: http.StatusBadRequest},
			{name: "missing address", mutate: testutil.Field("delivery_address", nil), expectCode: http.StatusBadRequest},
			{name: "missing items", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
			{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
			{name: "bad payment method", mutate: testutil.Field("payment_method", "card"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: use case errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "store closed", err: usecase.ErrStoreClosed, expectCode: http.StatusServiceUnavailable, expectMsg: "closed"},
			{name: "below store minimum", err: &usecase.MinimumOrderError{Minimum: decimal.RequireFromString("200"), Shortfall: decimal.RequireFromString("50")}, expectCode: http.StatusUnprocessableEntity, expectMsg: "Minimum order amount"},
			{name: "item unavailable", err: usecase.ErrItemUnavailable, expectCode: http.StatusUnprocessableEntity, expectMsg: "unavailable"},
			{name: "coupon not found", err: usecase.ErrCouponNotFound, expectCode: http.StatusNotFound, expectMsg: "Coupon not found"},
			{name: "coupon inactive", err: usecase.ErrCouponInactive, expectCode: http.StatusUnprocessableEntity, expectMsg: "cannot be applied"},
			{name: "coupon expired", err: usecase.ErrCouponExpired, expectCode: http.StatusUnprocessableEntity, expectMsg: "cannot be applied"},
			{name: "coupon below minimum", err: usecase.ErrBelowMinimumOrder, expectCode: http.StatusUnprocessableEntity, expectMsg: "cannot be applied"},
			{name: "coupon already used", err: usecase.ErrCouponAlreadyUsed, expectCode: http.StatusConflict, expectMsg: "already used"},
			{name: "coupon exhausted", err: usecase.ErrCouponExhausted, expectCode: http.StatusConflict, expectMsg: "usage limit"},
			{name: "empty order", err: order.ErrEmptyOrder, expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("success: returns the tracked order", func() {
		s.mockCheckout.EXPECT().GetOrder(gomock.Any(), "BC-20250601-0001").
			Return(sampleOrderRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/BC-20250601-0001", nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 404 for unknown order number", func() {
		s.mockCheckout.EXPECT().GetOrder(gomock.Any(), "BC-20250601-9999").
			Return(nil, usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/BC-20250601-9999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	url := "/orders/BC-20250601-0001/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCheckout.EXPECT().CancelOrder(gomock.Any(), "BC-20250601-0001", nil).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: cancel failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not found", err: usecase.ErrOrderNotFound, expectCode: http.StatusNotFound},
			{name: "not owner", err: usecase.ErrNotOrderOwner, expectCode: http.StatusForbidden},
			{name: "window closed", err: order.ErrCancellationClosed, expectCode: http.StatusConflict},
			{name: "already progressed", err: order.ErrNotCancellable, expectCode: http.StatusConflict},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().CancelOrder(gomock.Any(), "BC-20250601-0001", nil).
					Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})
}
