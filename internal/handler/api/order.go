package api

import (
	"errors"
	"fmt"
	"net/http"

	"biryani-club/internal/domain/order"
	reqdto "biryani-club/internal/handler/dto/request"
	resdto "biryani-club/internal/handler/dto/response"
	"biryani-club/internal/handler/middleware"
	"biryani-club/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewOrderHandler(checkoutUseCase usecase.CheckoutUseCase) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Place order
// @Description Place an order as a guest or a logged-in customer
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	orderRM, err := h.checkoutUseCase.PlaceOrder(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		var minErr *usecase.MinimumOrderError
		switch {
		case errors.Is(err, usecase.ErrStoreClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Store is currently closed",
			})
		case errors.As(err, &minErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("Minimum order amount is ₹%s", minErr.Minimum),
			})
		case errors.Is(err, usecase.ErrItemUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "One or more items are unavailable",
			})
		case errors.Is(err, usecase.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, usecase.ErrCouponInactive),
			errors.Is(err, usecase.ErrCouponExpired),
			errors.Is(err, usecase.ErrBelowMinimumOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon cannot be applied to this order",
			})
		case errors.Is(err, usecase.ErrCouponAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You have already used this coupon",
			})
		case errors.Is(err, usecase.ErrCouponExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This coupon has reached its usage limit",
			})
		case errors.Is(err, order.ErrInvalidPaymentMethod), errors.Is(err, order.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderRM(orderRM))
}

// @Summary Track order
// @Description Get an order with its tracking progress by order number
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{number} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	number := c.Param("number")

	orderRM, err := h.checkoutUseCase.GetOrder(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(orderRM))
}

// @Summary Cancel order
// @Description Cancel an order inside the cancellation window
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{number}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	number := c.Param("number")

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	err := h.checkoutUseCase.CancelOrder(c.Request.Context(), number, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, usecase.ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order belongs to another user",
			})
		case errors.Is(err, order.ErrCancellationClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancellation window has closed",
			})
		case errors.Is(err, order.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order can no longer be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary My orders
// @Description List the current user's orders, newest first
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.OrderListRM
// @Failure 401 {object} map[string]string
// @Router /my/orders [get]
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orders, err := h.checkoutUseCase.UserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}
