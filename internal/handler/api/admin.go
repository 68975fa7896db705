package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/domain/promotion"
	reqdto "biryani-club/internal/handler/dto/request"
	"biryani-club/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// @Summary Create promotion
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	var req reqdto.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	promo, err := h.adminUseCase.CreatePromotion(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writePromotionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":   promo.ID().String(),
		"code": promo.Code().String(),
	})
}

// @Summary Update promotion
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id} [put]
func (h *AdminHandler) UpdatePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	var req reqdto.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.UpdatePromotion(c.Request.Context(), id, req.ToParams()); err != nil {
		h.writePromotionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate promotion
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id}/active [patch]
func (h *AdminHandler) SetPromotionActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.SetPromotionActive(c.Request.Context(), id, *req.Active); err != nil {
		h.writePromotionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List promotions
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.PromotionRM
// @Router /admin/promotions [get]
func (h *AdminHandler) ListPromotions(c *gin.Context) {
	promos, err := h.adminUseCase.ListPromotions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, promos)
}

// @Summary Coupon usage report
// @Description Aggregate redemption stats plus a filtered usage log
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param code query string false "Coupon code filter"
// @Param from query string false "Start of window (RFC3339)"
// @Param to query string false "End of window (RFC3339)"
// @Param limit query int false "Max usage rows"
// @Success 200 {object} readmodel.UsageReportRM
// @Router /admin/coupons/usage [get]
func (h *AdminHandler) UsageReport(c *gin.Context) {
	var filter usecase.UsageFilter
	if code := c.Query("code"); code != "" {
		filter.CouponCode = &code
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from timestamp",
			})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid to timestamp",
			})
			return
		}
		filter.To = &to
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		filter.Limit = limit
	}

	report, err := h.adminUseCase.UsageReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Create menu item
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/menu [post]
func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.adminUseCase.CreateMenuItem(c.Request.Context(), req.ToParams())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item data",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": item.ID().String(),
	})
}

// @Summary Update menu item
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Menu item ID"
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/menu/{id} [put]
func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.UpdateMenuItem(c.Request.Context(), id, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMenuItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid menu item data",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set menu item stock
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Menu item ID"
// @Param request body reqdto.SetStockRequest true "Stock flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/menu/{id}/stock [patch]
func (h *AdminHandler) SetMenuItemStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	var req reqdto.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.SetMenuItemStock(c.Request.Context(), id, *req.InStock); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMenuItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
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

// @Summary List users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.AuthorizedUserRM
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUseCase.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Activate or deactivate user
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "User ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/active [patch]
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.SetUserActive(c.Request.Context(), id, *req.Active); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
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

// @Summary List orders
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} readmodel.OrderListRM
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	orders, err := h.adminUseCase.ListOrders(c.Request.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Advance order status
// @Description Move an order to the next lifecycle state
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param number path string true "Order number"
// @Param request body reqdto.AdvanceOrderRequest true "Target status"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{number}/status [patch]
func (h *AdminHandler) AdvanceOrder(c *gin.Context) {
	number := c.Param("number")

	var req reqdto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.AdvanceOrder(c.Request.Context(), number, req.Status); err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, order.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		case errors.Is(err, order.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid status transition",
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

// @Summary Open or close the store
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.StoreOpenRequest true "Open flag"
// @Success 204 "No Content"
// @Router /admin/store/open [patch]
func (h *AdminHandler) SetStoreOpen(c *gin.Context) {
	var req reqdto.StoreOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.SetStoreOpen(c.Request.Context(), *req.Open); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) writePromotionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPromotionExists):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A promotion with this code already exists",
		})
	case errors.Is(err, usecase.ErrPromotionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Promotion not found",
		})
	case errors.Is(err, promotion.ErrInvalidCode),
		errors.Is(err, promotion.ErrInvalidDiscountType),
		errors.Is(err, promotion.ErrInvalidDiscountValue),
		errors.Is(err, promotion.ErrInvalidFreeItemQty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
