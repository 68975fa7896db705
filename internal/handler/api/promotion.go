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

type PromotionHandler struct {
	promotionUseCase usecase.PromotionUseCase
	checkoutUseCase  usecase.CheckoutUseCase
}

func NewPromotionHandler(promotionUseCase usecase.PromotionUseCase, checkoutUseCase usecase.CheckoutUseCase) *PromotionHandler {
	return &PromotionHandler{
		promotionUseCase: promotionUseCase,
		checkoutUseCase:  checkoutUseCase,
	}
}

// @Summary Active offers
// @Description List currently redeemable promotions for the storefront banner
// @Tags promotions
// @Produce json
// @Success 200 {array} readmodel.OfferRM
// @Router /offers [get]
func (h *PromotionHandler) ActiveOffers(c *gin.Context) {
	offers, err := h.promotionUseCase.ActiveOffers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// @Summary Validate coupon
// @Description Preview a coupon against the current cart without redeeming it
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon and cart contents"
// @Success 200 {object} readmodel.CouponValidationRM
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/validate [post]
func (h *PromotionHandler) ValidateCoupon(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
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

	result, err := h.checkoutUseCase.PreviewCoupon(c.Request.Context(), req.Code, req.ToLineInputs(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "One or more items are unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
