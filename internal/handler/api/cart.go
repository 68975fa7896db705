package api

import (
	"errors"
	"net/http"

	reqdto "biryani-club/internal/handler/dto/request"
	"biryani-club/internal/handler/middleware"
	"biryani-club/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartUseCase usecase.CartUseCase
}

func NewCartHandler(cartUseCase usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

// @Summary Get cart
// @Description Get the current user's cart with computed totals
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.CartRM
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cart, err := h.cartUseCase.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Add cart item
// @Description Add an item to the cart, merging quantities if already present
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} readmodel.CartRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.cartUseCase.AddItem(c.Request.Context(), userID, req.MenuItemID, req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Update cart item
// @Description Set the quantity of a cart line; zero removes it
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path string true "Menu item ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} readmodel.CartRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{itemId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	menuItemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.cartUseCase.UpdateItem(c.Request.Context(), userID, menuItemID, req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Clear cart
// @Description Remove all items from the current user's cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.cartUseCase.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found",
		})
	case errors.Is(err, usecase.ErrItemUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Menu item is out of stock",
		})
	case errors.Is(err, usecase.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quantity",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
