package api

import (
	"context"
	"errors"
	"net/http"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/handler/middleware"
	"biryani-club/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeliveryHandler struct {
	deliveryUseCase usecase.DeliveryUseCase
}

func NewDeliveryHandler(deliveryUseCase usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUseCase: deliveryUseCase,
	}
}

// @Summary Available orders
// @Description List unassigned orders ready for pickup
// @Tags delivery
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.OrderListRM
// @Router /delivery/orders/available [get]
func (h *DeliveryHandler) AvailableOrders(c *gin.Context) {
	orders, err := h.deliveryUseCase.AvailableOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary My assigned orders
// @Tags delivery
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.OrderListRM
// @Router /delivery/orders/assigned [get]
func (h *DeliveryHandler) AssignedOrders(c *gin.Context) {
	personID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orders, err := h.deliveryUseCase.AssignedOrders(c.Request.Context(), personID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Claim order
// @Description Assign an unclaimed order to the current delivery person
// @Tags delivery
// @Security BearerAuth
// @Param number path string true "Order number"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /delivery/orders/{number}/claim [post]
func (h *DeliveryHandler) ClaimOrder(c *gin.Context) {
	h.act(c, h.deliveryUseCase.ClaimOrder)
}

// @Summary Pick up order
// @Description Mark a claimed order as out for delivery
// @Tags delivery
// @Security BearerAuth
// @Param number path string true "Order number"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /delivery/orders/{number}/pickup [post]
func (h *DeliveryHandler) PickupOrder(c *gin.Context) {
	h.act(c, h.deliveryUseCase.PickupOrder)
}

// @Summary Complete delivery
// @Description Mark an order delivered and its payment collected
// @Tags delivery
// @Security BearerAuth
// @Param number path string true "Order number"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /delivery/orders/{number}/complete [post]
func (h *DeliveryHandler) CompleteOrder(c *gin.Context) {
	h.act(c, h.deliveryUseCase.CompleteOrder)
}

func (h *DeliveryHandler) act(c *gin.Context, fn func(ctx context.Context, number string, personID uuid.UUID) error) {
	personID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	number := c.Param("number")
	if err := fn(c.Request.Context(), number, personID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, usecase.ErrOrderAlreadyClaimed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is already claimed",
			})
		case errors.Is(err, usecase.ErrNotAssignedToOrder):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order is assigned to someone else",
			})
		case errors.Is(err, order.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not in the right state",
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
