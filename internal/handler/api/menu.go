package api

import (
	"net/http"
	"strconv"

	"biryani-club/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuUseCase usecase.MenuUseCase
}

func NewMenuHandler(menuUseCase usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{
		menuUseCase: menuUseCase,
	}
}

// @Summary List menu
// @Description List in-stock menu items, optionally filtered by category or veg flag
// @Tags menu
// @Produce json
// @Param category query string false "Category filter"
// @Param veg query bool false "Vegetarian only"
// @Success 200 {array} readmodel.MenuItemRM
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c *gin.Context) {
	var filter usecase.MenuFilter
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if vegStr := c.Query("veg"); vegStr != "" {
		veg, err := strconv.ParseBool(vegStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid veg filter",
			})
			return
		}
		filter.VegOnly = &veg
	}

	items, err := h.menuUseCase.ListMenu(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Popular items
// @Description List in-stock items marked popular
// @Tags menu
// @Produce json
// @Success 200 {array} readmodel.MenuItemRM
// @Router /menu/popular [get]
func (h *MenuHandler) PopularItems(c *gin.Context) {
	items, err := h.menuUseCase.PopularItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
